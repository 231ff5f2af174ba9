package sdlcd

import (
	"fmt"
	"strings"
	"sync"
)

// Library binds the wrapper to one native implementation. The zero value is
// not usable; construct with NewLibrary or use the package-level functions,
// which go through Default.
type Library struct {
	native Native

	// errMu serializes reads of the process-wide SDL error slot so that the
	// message attached to an OpenError belongs to that open.
	errMu sync.Mutex
}

var defaultLibrary = NewLibrary(nil)

// NewLibrary returns a Library over native. A nil native selects the build's
// default (libSDL with the "sdl" tag, a driveless stub otherwise).
func NewLibrary(native Native) *Library {
	if native == nil {
		native = defaultNative()
	}
	return &Library{native: native}
}

// Default returns the process-wide Library used by the package functions.
func Default() *Library { return defaultLibrary }

// Init starts the SDL CD-ROM subsystem. It must precede NumDrives and Open
// when running against libSDL.
func (l *Library) Init() error {
	l.errMu.Lock()
	defer l.errMu.Unlock()
	if l.native.Init() != 0 {
		return fmt.Errorf("%w: %s", ErrInit, l.errorText())
	}
	return nil
}

// Quit shuts the CD-ROM subsystem down. Handles must be closed first.
func (l *Library) Quit() { l.native.Quit() }

// NumDrives returns the number of CD-ROM drives SDL can see.
func (l *Library) NumDrives() int { return l.native.NumDrives() }

// DriveName returns the system-dependent name of drive index, e.g. "/dev/cdrom".
// The index is passed through unchecked; SDL decides what an out-of-range
// index yields, and a NULL name comes back as "".
func (l *Library) DriveName(index int) string {
	name, _ := l.native.DriveName(index)
	return name
}

// Open opens drive index. On failure the returned *OpenError carries the SDL
// error text; no handle is ever returned around a NULL pointer.
func (l *Library) Open(index int) (*CD, error) {
	l.errMu.Lock()
	handle := l.native.Open(index)
	if handle == nil {
		msg := l.errorText()
		l.errMu.Unlock()
		return nil, &OpenError{Index: index, Message: msg}
	}
	l.errMu.Unlock()
	return newCD(l, index, handle), nil
}

// LastError returns the current contents of the SDL error slot.
func (l *Library) LastError() string {
	l.errMu.Lock()
	defer l.errMu.Unlock()
	return strings.TrimSpace(l.native.GetError())
}

// ClearError empties the SDL error slot.
func (l *Library) ClearError() {
	l.errMu.Lock()
	defer l.errMu.Unlock()
	l.native.ClearError()
}

// errorText reads the slot with errMu held and never returns "".
func (l *Library) errorText() string {
	msg := strings.TrimSpace(l.native.GetError())
	if msg == "" {
		return unknownError
	}
	return msg
}

// Init starts the CD-ROM subsystem of the default library.
func Init() error { return defaultLibrary.Init() }

// Quit stops the CD-ROM subsystem of the default library.
func Quit() { defaultLibrary.Quit() }

// NumDrives returns the drive count of the default library.
func NumDrives() int { return defaultLibrary.NumDrives() }

// DriveName returns the name of drive index on the default library.
func DriveName(index int) string { return defaultLibrary.DriveName(index) }

// Open opens drive index on the default library.
func Open(index int) (*CD, error) { return defaultLibrary.Open(index) }

// LastError returns the SDL error slot of the default library.
func LastError() string { return defaultLibrary.LastError() }

// ClearError empties the SDL error slot of the default library.
func ClearError() { defaultLibrary.ClearError() }
