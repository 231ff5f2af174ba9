package testsupport

import (
	"sync"
	"unsafe"

	"cdplay/internal/sdlcd"
)

type fakeDrive struct {
	index int
}

// FakeCD is a scripted sdlcd.Native. Set the exported fields before use;
// zero return codes mean success. Calls and closes are counted and safe to
// read while a runtime cleanup may be closing a dropped handle.
type FakeCD struct {
	Drives     []string
	OpenNil    bool
	ErrText    string
	InitCode   int
	StatusCode int

	PlayCode       int
	PlayTracksCode int
	PauseCode      int
	ResumeCode     int
	StopCode       int
	EjectCode      int
	// FailText is written to the error slot whenever a control call
	// returns non-zero.
	FailText string

	Snap sdlcd.Snapshot

	mu             sync.Mutex
	calls          map[string]int
	closes         map[sdlcd.Handle]int
	lastPlay       [2]int
	lastPlayTracks [4]int
	quit           bool
}

// NewFakeCD returns a fake with the given drive names and a stopped drive.
func NewFakeCD(drives ...string) *FakeCD {
	return &FakeCD{
		Drives:     drives,
		StatusCode: sdlcd.CodeStopped,
		calls:      map[string]int{},
		closes:     map[sdlcd.Handle]int{},
	}
}

// result stores FailText in the error slot for failing codes.
func (f *FakeCD) result(code int) int {
	if code != 0 && f.FailText != "" {
		f.ErrText = f.FailText
	}
	return code
}

func (f *FakeCD) record(name string) {
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()
}

// Calls returns how often the named entry point ran ("open", "status",
// "play", "play_tracks", "pause", "resume", "stop", "eject", "snapshot", "init").
func (f *FakeCD) Calls(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

// Closes returns the total number of native close calls.
func (f *FakeCD) Closes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.closes {
		total += n
	}
	return total
}

// LastPlay returns the arguments of the most recent Play.
func (f *FakeCD) LastPlay() (start, length int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastPlay[0], f.lastPlay[1]
}

// LastPlayTracks returns the arguments of the most recent PlayTracks.
func (f *FakeCD) LastPlayTracks() [4]int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastPlayTracks
}

// QuitCalled reports whether Quit ran.
func (f *FakeCD) QuitCalled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.quit
}

func (f *FakeCD) Init() int {
	f.record("init")
	if f.InitCode != 0 && f.ErrText == "" {
		f.ErrText = "CD-ROM subsystem unavailable"
	}
	return f.InitCode
}

func (f *FakeCD) Quit() {
	f.mu.Lock()
	f.quit = true
	f.mu.Unlock()
}

func (f *FakeCD) NumDrives() int { return len(f.Drives) }

func (f *FakeCD) DriveName(drive int) (string, bool) {
	if drive < 0 || drive >= len(f.Drives) {
		f.ErrText = "Invalid CD-ROM drive index"
		return "", false
	}
	return f.Drives[drive], true
}

func (f *FakeCD) Open(drive int) sdlcd.Handle {
	f.record("open")
	if f.OpenNil {
		return nil
	}
	return sdlcd.Handle(unsafe.Pointer(&fakeDrive{index: drive}))
}

func (f *FakeCD) Status(sdlcd.Handle) int {
	f.record("status")
	return f.StatusCode
}

func (f *FakeCD) Close(cd sdlcd.Handle) {
	f.mu.Lock()
	f.closes[cd]++
	f.mu.Unlock()
}

func (f *FakeCD) Stop(sdlcd.Handle) int {
	f.record("stop")
	return f.result(f.StopCode)
}

func (f *FakeCD) Eject(sdlcd.Handle) int {
	f.record("eject")
	return f.result(f.EjectCode)
}

func (f *FakeCD) Resume(sdlcd.Handle) int {
	f.record("resume")
	return f.result(f.ResumeCode)
}

func (f *FakeCD) Play(_ sdlcd.Handle, start, length int) int {
	f.record("play")
	f.mu.Lock()
	f.lastPlay = [2]int{start, length}
	f.mu.Unlock()
	return f.result(f.PlayCode)
}

func (f *FakeCD) PlayTracks(_ sdlcd.Handle, startTrack, startFrame, ntracks, nframes int) int {
	f.record("play_tracks")
	f.mu.Lock()
	f.lastPlayTracks = [4]int{startTrack, startFrame, ntracks, nframes}
	f.mu.Unlock()
	return f.result(f.PlayTracksCode)
}

func (f *FakeCD) Pause(sdlcd.Handle) int {
	f.record("pause")
	return f.result(f.PauseCode)
}

func (f *FakeCD) Snapshot(sdlcd.Handle) sdlcd.Snapshot {
	f.record("snapshot")
	snap := f.Snap
	snap.Tracks = append([]sdlcd.Track(nil), f.Snap.Tracks...)
	return snap
}

func (f *FakeCD) GetError() string { return f.ErrText }

func (f *FakeCD) ClearError() { f.ErrText = "" }
