package sdlcd

import (
	"errors"
	"fmt"
)

var (
	// ErrOpen marks a failed SDL_CDOpen. Match it with errors.Is on the
	// *OpenError returned by Open.
	ErrOpen = errors.New("cd open failed")
	// ErrClosed is returned when Close is called on a released handle.
	ErrClosed = errors.New("cd handle already closed")
	// ErrInit marks a failed CD-ROM subsystem initialisation.
	ErrInit = errors.New("sdl cdrom init failed")
)

const unknownError = "unknown SDL error"

// OpenError reports a failed Open together with the SDL error text that
// was current when the native open returned NULL.
type OpenError struct {
	Index   int
	Message string
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open cd drive %d: %s", e.Index, e.Message)
}

func (e *OpenError) Unwrap() error { return ErrOpen }
