package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestDefaultStyles(t *testing.T) {
	styles := DefaultStyles()

	tests := []struct {
		name  string
		style lipgloss.Style
	}{
		{"App", styles.App},
		{"TabBar", styles.TabBar},
		{"TabActive", styles.TabActive},
		{"TabInactive", styles.TabInactive},
		{"ViewTitle", styles.ViewTitle},
		{"StatusBar", styles.StatusBar},
		{"StatusKey", styles.StatusKey},
		{"StatusHelp", styles.StatusHelp},
		{"TableHeader", styles.TableHeader},
		{"RowSelected", styles.RowSelected},
		{"RowNormal", styles.RowNormal},
		{"Over", styles.Over},
		{"Under", styles.Under},
		{"StatLabel", styles.StatLabel},
		{"StatValue", styles.StatValue},
		{"InputLabel", styles.InputLabel},
		{"Dialog", styles.Dialog},
		{"Error", styles.Error},
		{"Warning", styles.Warning},
		{"Success", styles.Success},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.style.Render("test"), "test") {
				t.Errorf("style %s lost its content", tt.name)
			}
		})
	}
}

func TestStyles_Deviation(t *testing.T) {
	styles := DefaultStyles()

	if got := styles.Deviation(42, "+0:42"); !strings.Contains(got, "+0:42") {
		t.Errorf("Deviation(42) = %q", got)
	}
	if got := styles.Deviation(-42, "-0:42"); !strings.Contains(got, "-0:42") {
		t.Errorf("Deviation(-42) = %q", got)
	}
}
