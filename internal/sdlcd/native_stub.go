//go:build !cgo || !sdl

package sdlcd

// stubNative stands in for libSDL when the binding is built without the
// "sdl" tag. It behaves like a host with no CD-ROM drives.
type stubNative struct{}

const stubMessage = "SDL CD-ROM support not compiled in (rebuild with cgo and -tags sdl)"

func defaultNative() Native { return stubNative{} }

func (stubNative) Init() int                                 { return -1 }
func (stubNative) Quit()                                     {}
func (stubNative) NumDrives() int                            { return 0 }
func (stubNative) DriveName(int) (string, bool)              { return "", false }
func (stubNative) Open(int) Handle                           { return nil }
func (stubNative) Status(Handle) int                         { return CodeError }
func (stubNative) Close(Handle)                              {}
func (stubNative) Stop(Handle) int                           { return -1 }
func (stubNative) Eject(Handle) int                          { return -1 }
func (stubNative) Resume(Handle) int                         { return -1 }
func (stubNative) Play(Handle, int, int) int                 { return -1 }
func (stubNative) PlayTracks(Handle, int, int, int, int) int { return -1 }
func (stubNative) Pause(Handle) int                          { return -1 }
func (stubNative) Snapshot(Handle) Snapshot                  { return Snapshot{StatusCode: CodeError} }
func (stubNative) GetError() string                          { return stubMessage }
func (stubNative) ClearError()                               {}
