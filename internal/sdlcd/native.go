package sdlcd

import (
	"time"
	"unsafe"
)

// Handle is an opaque pointer to a native SDL_CD record.
type Handle unsafe.Pointer

// Native status codes (CDstatus in SDL_cdrom.h).
const (
	CodeTrayEmpty = 0
	CodeStopped   = 1
	CodePlaying   = 2
	CodePaused    = 3
	CodeError     = -1
)

const (
	// MaxTracks is the capacity of the native track table (SDL_MAX_TRACKS).
	MaxTracks = 100
	// FramesPerSecond is the CD frame rate (CD_FPS).
	FramesPerSecond = 75

	trackTypeAudio = 0x00
	trackTypeData  = 0x04
)

// Track mirrors SDL_CDtrack. Length and Offset are in frames.
type Track struct {
	ID     uint8
	Type   uint8
	Length uint32
	Offset uint32
}

// IsAudio reports whether the track holds CD audio rather than data.
func (t Track) IsAudio() bool {
	return t.Type == trackTypeAudio
}

// Duration converts the track length to wall time.
func (t Track) Duration() time.Duration {
	return time.Duration(t.Length) * time.Second / FramesPerSecond
}

// Snapshot is the readable part of a native SDL_CD record: the table of
// contents and play position as of the last status query.
type Snapshot struct {
	ID           int
	StatusCode   int
	NumTracks    int
	CurrentTrack int
	CurrentFrame int
	Tracks       []Track
}

// Native lists the SDL CD-ROM entry points. Every int return except the
// status query follows SDL's 0-on-success convention.
type Native interface {
	Init() int
	Quit()
	NumDrives() int
	// DriveName copies the native name; ok is false when SDL returned NULL.
	DriveName(drive int) (name string, ok bool)
	Open(drive int) Handle
	Status(cd Handle) int
	Close(cd Handle)
	Stop(cd Handle) int
	Eject(cd Handle) int
	Resume(cd Handle) int
	Play(cd Handle, start, length int) int
	PlayTracks(cd Handle, startTrack, startFrame, ntracks, nframes int) int
	Pause(cd Handle) int
	// Snapshot reads the native record behind cd without mutating it.
	Snapshot(cd Handle) Snapshot
	GetError() string
	ClearError()
}
