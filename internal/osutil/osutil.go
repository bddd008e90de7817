// Package osutil puts the OS calls used for locating per-user files behind a
// swappable provider so error paths can be tested.
package osutil

import (
	"os"
	"path/filepath"
)

// PathProvider resolves and creates per-user directories.
type PathProvider interface {
	UserConfigDir() (string, error)
	MkdirAll(path string, perm os.FileMode) error
}

// DefaultPathProvider uses real OS functions.
type DefaultPathProvider struct{}

func (DefaultPathProvider) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

func (DefaultPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Provider is used by AppDir. Tests may replace it with SetProvider.
var Provider PathProvider = DefaultPathProvider{}

// SetProvider sets a custom provider (for testing).
func SetProvider(p PathProvider) {
	Provider = p
}

// ResetProvider resets to the default provider.
func ResetProvider() {
	Provider = DefaultPathProvider{}
}

// AppDir returns <user config dir>/<app>, creating it if needed.
func AppDir(app string) (string, error) {
	base, err := Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(base, app)
	if err := Provider.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// AppFile returns the path of name inside AppDir(app).
func AppFile(app, name string) (string, error) {
	dir, err := AppDir(app)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
