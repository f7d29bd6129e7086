// Package filesystem holds the afero backend every package reads and writes through.
package filesystem

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// SetOsFs switches back to the operating system filesystem.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to an empty in-memory filesystem. Tests only.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// Prune removes the entries of dir last modified before cutoff and returns
// how many were removed. A zero cutoff removes everything. A missing dir is
// not an error.
func Prune(dir string, cutoff time.Time) (int, error) {
	entries, err := backend.ReadDir(dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var removed int
	for _, entry := range entries {
		if !cutoff.IsZero() && !entry.ModTime().Before(cutoff) {
			continue
		}
		if err := backend.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return removed, err
		}
		removed++
	}

	return removed, nil
}
