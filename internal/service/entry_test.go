package service

import (
	"context"
	"errors"
	"testing"

	"github.com/xolan/worklog/internal/storage"
	"github.com/xolan/worklog/internal/worktime"
)

func TestEntryService_Add(t *testing.T) {
	svc := newTestServices(t).Entry
	ctx := context.Background()

	e, err := svc.Add(ctx, AddRequest{Date: "2024-01-15", InTime: "09:00", OutTime: "17:42"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if e.TotalHours != 8.7 || e.DeviationMinutes != 0 {
		t.Errorf("Add returned hours=%v dev=%d, expected 8.7/0", e.TotalHours, e.DeviationMinutes)
	}

	stored, err := svc.Get(ctx, "2024-01-15")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.InTime != "09:00" || stored.OutTime != "17:42" || stored.TotalHours != 8.7 {
		t.Errorf("stored entry = %+v", stored)
	}
}

func TestEntryService_Add_Overnight(t *testing.T) {
	svc := newTestServices(t).Entry

	e, err := svc.Add(context.Background(), AddRequest{Date: "2024-01-16", InTime: "22:00", OutTime: "06:00"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if e.TotalHours != 8.0 || e.DeviationMinutes != -42 {
		t.Errorf("Add returned hours=%v dev=%d, expected 8.0/-42", e.TotalHours, e.DeviationMinutes)
	}
}

func TestEntryService_Add_Errors(t *testing.T) {
	svc := newTestServices(t).Entry
	ctx := context.Background()
	if _, err := svc.Add(ctx, AddRequest{Date: "2024-01-15", InTime: "09:00", OutTime: "17:00"}); err != nil {
		t.Fatalf("seed Add: %v", err)
	}

	tests := []struct {
		name     string
		req      AddRequest
		wantKind Kind
		wantMsg  string
	}{
		{"missing date", AddRequest{InTime: "09:00", OutTime: "17:00"}, KindMissingField, "Missing required fields"},
		{"missing out", AddRequest{Date: "2024-01-20", InTime: "09:00"}, KindMissingField, "Missing required fields"},
		{"bad date", AddRequest{Date: "15/01/2024", InTime: "09:00", OutTime: "17:00"}, KindInvalidFormat, "Invalid date format. Use YYYY-MM-DD"},
		{"duplicate", AddRequest{Date: "2024-01-15", InTime: "10:00", OutTime: "11:00"}, KindDuplicateKey, "Entry already exists for this date"},
		{"duplicate wins over bad time", AddRequest{Date: "2024-01-15", InTime: "0900", OutTime: "11:00"}, KindDuplicateKey, "Entry already exists for this date"},
		{"bad shape", AddRequest{Date: "2024-01-20", InTime: "0900", OutTime: "17:00"}, KindInvalidFormat, "Invalid time format. Use HH:MM"},
		{"bad value", AddRequest{Date: "2024-01-20", InTime: "ab:00", OutTime: "17:00"}, KindInvalidValue, "Invalid time values"},
		{"non-positive", AddRequest{Date: "2024-01-20", InTime: "30:00", OutTime: "01:00"}, KindNonPositiveDuration, "Out time must be after in time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(ctx, tt.req)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := KindOf(err); got != tt.wantKind {
				t.Errorf("KindOf(%v) = %q, expected %q", err, got, tt.wantKind)
			}
			if got := Message(err); got != tt.wantMsg {
				t.Errorf("Message = %q, expected %q", got, tt.wantMsg)
			}
		})
	}

	if ok, _ := svc.store.Exists(ctx, "2024-01-20"); ok {
		t.Error("failed adds must not store anything")
	}
}

func TestEntryService_Add_RejectEqualTimes(t *testing.T) {
	svc := NewEntryService(newTestStore(t), worktime.Rules{TargetMinutes: worktime.TargetMinutes, RejectEqualTimes: true})

	_, err := svc.Add(context.Background(), AddRequest{Date: "2024-01-15", InTime: "09:00", OutTime: "09:00"})
	if KindOf(err) != KindNonPositiveDuration {
		t.Errorf("expected NonPositiveDuration, got %v", err)
	}
}

func TestEntryService_Add_EqualTimesDefault(t *testing.T) {
	svc := newTestServices(t).Entry

	e, err := svc.Add(context.Background(), AddRequest{Date: "2024-01-15", InTime: "09:00", OutTime: "09:00"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if e.TotalHours != 24.0 || e.DeviationMinutes != 918 {
		t.Errorf("equal times = %v/%d, expected 24.0/918", e.TotalHours, e.DeviationMinutes)
	}
}

func TestEntryService_Update(t *testing.T) {
	svc := newTestServices(t).Entry
	ctx := context.Background()
	if _, err := svc.Add(ctx, AddRequest{Date: "2024-01-15", InTime: "09:00", OutTime: "17:00"}); err != nil {
		t.Fatalf("seed Add: %v", err)
	}

	e, err := svc.Update(ctx, "2024-01-15", UpdateRequest{InTime: "08:00", OutTime: "18:00"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if e.TotalHours != 10.0 || e.DeviationMinutes != 78 {
		t.Errorf("Update returned %v/%d, expected 10.0/78", e.TotalHours, e.DeviationMinutes)
	}

	stored, _ := svc.Get(ctx, "2024-01-15")
	if stored.InTime != "08:00" || stored.TotalHours != 10.0 || stored.DeviationMinutes != 78 {
		t.Errorf("stored entry not updated: %+v", stored)
	}
}

func TestEntryService_Update_Errors(t *testing.T) {
	svc := newTestServices(t).Entry
	ctx := context.Background()
	if _, err := svc.Add(ctx, AddRequest{Date: "2024-01-15", InTime: "09:00", OutTime: "17:00"}); err != nil {
		t.Fatalf("seed Add: %v", err)
	}

	tests := []struct {
		name     string
		date     string
		req      UpdateRequest
		wantKind Kind
	}{
		{"missing in", "2024-01-15", UpdateRequest{OutTime: "17:00"}, KindMissingField},
		{"bad shape", "2024-01-15", UpdateRequest{InTime: "09:00", OutTime: "1700"}, KindInvalidFormat},
		{"bad value", "2024-01-15", UpdateRequest{InTime: "09:00", OutTime: "17:xx"}, KindInvalidValue},
		{"missing row", "2030-01-01", UpdateRequest{InTime: "09:00", OutTime: "17:00"}, KindNotFound},
		{"unvalidated date", "not-a-date", UpdateRequest{InTime: "09:00", OutTime: "17:00"}, KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(ctx, tt.date, tt.req)
			if got := KindOf(err); got != tt.wantKind {
				t.Errorf("KindOf(%v) = %q, expected %q", err, got, tt.wantKind)
			}
		})
	}

	stored, _ := svc.Get(ctx, "2024-01-15")
	if stored.OutTime != "17:00" {
		t.Errorf("failed updates must not modify the entry: %+v", stored)
	}
}

func TestEntryService_Delete(t *testing.T) {
	svc := newTestServices(t).Entry
	ctx := context.Background()
	if _, err := svc.Add(ctx, AddRequest{Date: "2024-01-15", InTime: "09:00", OutTime: "17:00"}); err != nil {
		t.Fatalf("seed Add: %v", err)
	}

	if err := svc.Delete(ctx, "2024-01-15"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, "2024-01-15"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	if err := svc.Delete(ctx, "2024-01-15"); err != nil {
		t.Errorf("deleting a missing entry should succeed, got %v", err)
	}

	if _, err := svc.Add(ctx, AddRequest{Date: "2024-01-15", InTime: "10:00", OutTime: "11:00"}); err != nil {
		t.Errorf("re-adding a deleted date should succeed, got %v", err)
	}
}

func TestEntryService_StorageFailure(t *testing.T) {
	svc := NewEntryService(brokenStore{}, worktime.DefaultRules())
	ctx := context.Background()

	_, err := svc.Add(ctx, AddRequest{Date: "2024-01-15", InTime: "09:00", OutTime: "17:00"})
	if KindOf(err) != KindStorageFailure {
		t.Errorf("Add: expected StorageFailure, got %v", err)
	}
	if Message(err) != "disk full" {
		t.Errorf("Message = %q, expected underlying error text", Message(err))
	}

	if _, err := svc.Update(ctx, "2024-01-15", UpdateRequest{InTime: "09:00", OutTime: "17:00"}); KindOf(err) != KindStorageFailure {
		t.Errorf("Update: expected StorageFailure, got %v", err)
	}
	if err := svc.Delete(ctx, "2024-01-15"); KindOf(err) != KindStorageFailure {
		t.Errorf("Delete: expected StorageFailure, got %v", err)
	}
}

func TestEntryService_GetMissingDate(t *testing.T) {
	svc := newTestServices(t).Entry
	if _, err := svc.Get(context.Background(), ""); KindOf(err) != KindMissingField {
		t.Errorf("expected MissingField, got %v", err)
	}
	if err := svc.Delete(context.Background(), ""); KindOf(err) != KindMissingField {
		t.Errorf("expected MissingField, got %v", err)
	}
}
