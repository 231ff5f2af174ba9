package sdlcd

import "fmt"

// Status is the drive state reported by SDL_CDStatus.
type Status int

const (
	StatusTrayEmpty Status = CodeTrayEmpty
	StatusStopped   Status = CodeStopped
	StatusPlaying   Status = CodePlaying
	StatusPaused    Status = CodePaused
	StatusError     Status = CodeError
)

// StatusFromCode maps a native status code to a Status. Codes outside the
// five documented values map to StatusError.
func StatusFromCode(code int) Status {
	switch code {
	case CodeTrayEmpty:
		return StatusTrayEmpty
	case CodeStopped:
		return StatusStopped
	case CodePlaying:
		return StatusPlaying
	case CodePaused:
		return StatusPaused
	case CodeError:
		return StatusError
	default:
		return StatusError
	}
}

// String returns a snake_case label for the status.
func (s Status) String() string {
	switch s {
	case StatusTrayEmpty:
		return "tray_empty"
	case StatusStopped:
		return "stopped"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// InDrive reports whether a disc is present (CD_INDRIVE).
func (s Status) InDrive() bool {
	return s > 0
}
