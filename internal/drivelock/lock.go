// Package drivelock serializes access to a CD drive across cdplay processes.
//
// A CD handle is not safe for concurrent use and SDL keeps a single error
// slot per process, so two commands driving the same drive at once produce
// interleaved results. Each drive index maps to one advisory lock file under
// the configured lock directory.
package drivelock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the drive.
var ErrLocked = errors.New("drive is in use by another cdplay process")

// Lock is a held drive lock.
type Lock struct {
	path string
	lock *flock.Flock
}

// Path returns the lock file location for drive index under dir.
func Path(dir string, index int) string {
	return filepath.Join(dir, fmt.Sprintf("drive-%d.lock", index))
}

// Acquire takes the lock for drive index without blocking.
func Acquire(dir string, index int) (*Lock, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	path := Path(dir, index)
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (drive %d, lock %s)", ErrLocked, index, path)
	}
	return &Lock{path: path, lock: fl}, nil
}

// Path returns the lock file backing l.
func (l *Lock) Path() string { return l.path }

// Release drops the lock. It is safe to call more than once.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock %s: %w", l.path, err)
	}
	l.lock = nil
	return nil
}
