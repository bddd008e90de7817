package osutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// MockPathProvider is a mock implementation for testing.
type MockPathProvider struct {
	UserConfigDirFn func() (string, error)
	MkdirAllFn      func(path string, perm os.FileMode) error
}

func (m *MockPathProvider) UserConfigDir() (string, error) {
	if m.UserConfigDirFn != nil {
		return m.UserConfigDirFn()
	}
	return "", nil
}

func (m *MockPathProvider) MkdirAll(path string, perm os.FileMode) error {
	if m.MkdirAllFn != nil {
		return m.MkdirAllFn(path, perm)
	}
	return nil
}

func TestAppDir_CreatesDirectory(t *testing.T) {
	defer ResetProvider()
	base := t.TempDir()
	SetProvider(&MockPathProvider{
		UserConfigDirFn: func() (string, error) { return base, nil },
		MkdirAllFn:      os.MkdirAll,
	})

	dir, err := AppDir("worklog")
	if err != nil {
		t.Fatalf("AppDir returned error: %v", err)
	}
	if dir != filepath.Join(base, "worklog") {
		t.Errorf("AppDir = %q", dir)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("expected directory to exist: %v", err)
	}
}

func TestAppFile(t *testing.T) {
	defer ResetProvider()
	SetProvider(&MockPathProvider{
		UserConfigDirFn: func() (string, error) { return "/cfg", nil },
	})

	path, err := AppFile("worklog", "config.toml")
	if err != nil {
		t.Fatalf("AppFile returned error: %v", err)
	}
	if path != filepath.Join("/cfg", "worklog", "config.toml") {
		t.Errorf("AppFile = %q", path)
	}
}

func TestAppDir_Errors(t *testing.T) {
	defer ResetProvider()

	SetProvider(&MockPathProvider{
		UserConfigDirFn: func() (string, error) { return "", errors.New("no home") },
	})
	if _, err := AppDir("worklog"); err == nil {
		t.Error("expected error when UserConfigDir fails")
	}

	SetProvider(&MockPathProvider{
		UserConfigDirFn: func() (string, error) { return "/cfg", nil },
		MkdirAllFn:      func(string, os.FileMode) error { return os.ErrPermission },
	})
	if _, err := AppFile("worklog", "x"); !errors.Is(err, os.ErrPermission) {
		t.Errorf("expected permission error, got %v", err)
	}
}

func TestResetProvider(t *testing.T) {
	SetProvider(&MockPathProvider{})
	ResetProvider()
	if _, ok := Provider.(DefaultPathProvider); !ok {
		t.Errorf("expected DefaultPathProvider after reset, got %T", Provider)
	}
}
