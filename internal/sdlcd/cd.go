package sdlcd

import "runtime"

// CD owns one open native drive handle. It is not safe for concurrent use.
//
// Close releases the handle. A CD that becomes unreachable without Close is
// released by a runtime cleanup instead; either way the native close runs
// exactly once. After Close every control method reports failure without
// reaching the native layer.
type CD struct {
	lib     *Library
	index   int
	handle  Handle
	cleanup runtime.Cleanup
}

// releaseArg is what the runtime cleanup needs to close a dropped handle.
// It must not point back at the CD.
type releaseArg struct {
	native Native
	handle Handle
}

func release(arg releaseArg) {
	arg.native.Close(arg.handle)
}

func newCD(lib *Library, index int, handle Handle) *CD {
	cd := &CD{lib: lib, index: index, handle: handle}
	cd.cleanup = runtime.AddCleanup(cd, release, releaseArg{native: lib.native, handle: handle})
	return cd
}

// Index returns the drive index the handle was opened with.
func (c *CD) Index() int { return c.index }

// Closed reports whether the handle has been released.
func (c *CD) Closed() bool { return c == nil || c.handle == nil }

// Close releases the native handle. Calling it again returns ErrClosed.
func (c *CD) Close() error {
	if c.Closed() {
		return ErrClosed
	}
	c.cleanup.Stop()
	handle := c.handle
	c.handle = nil
	c.lib.native.Close(handle)
	return nil
}

// Status queries the drive. It is never cached; every call reaches SDL.
func (c *CD) Status() Status {
	code, ok := c.call(func(n Native, h Handle) int { return n.Status(h) })
	if !ok {
		return StatusError
	}
	return StatusFromCode(code)
}

// Play plays length frames starting at absolute frame start.
func (c *CD) Play(start, length int) bool {
	return c.succeeded(func(n Native, h Handle) int { return n.Play(h, start, length) })
}

// PlayTracks plays ntracks tracks plus nframes frames starting at frame
// startFrame of track startTrack. Ranges are checked by SDL, not here.
func (c *CD) PlayTracks(startTrack, startFrame, ntracks, nframes int) bool {
	return c.succeeded(func(n Native, h Handle) int {
		return n.PlayTracks(h, startTrack, startFrame, ntracks, nframes)
	})
}

// Pause pauses playback.
func (c *CD) Pause() bool {
	return c.succeeded(func(n Native, h Handle) int { return n.Pause(h) })
}

// Resume resumes paused playback.
func (c *CD) Resume() bool {
	return c.succeeded(func(n Native, h Handle) int { return n.Resume(h) })
}

// Stop halts playback.
func (c *CD) Stop() bool {
	return c.succeeded(func(n Native, h Handle) int { return n.Stop(h) })
}

// Eject opens the tray.
func (c *CD) Eject() bool {
	return c.succeeded(func(n Native, h Handle) int { return n.Eject(h) })
}

// Tracks returns a copy of the table of contents as of the last Status call.
func (c *CD) Tracks() []Track {
	snap, ok := c.snapshot()
	if !ok {
		return nil
	}
	return snap.Tracks
}

// CurrentPosition returns the track and frame within that track as of the
// last Status call.
func (c *CD) CurrentPosition() (track, frame int) {
	snap, ok := c.snapshot()
	if !ok {
		return 0, 0
	}
	return snap.CurrentTrack, snap.CurrentFrame
}

func (c *CD) snapshot() (Snapshot, bool) {
	if c.Closed() {
		return Snapshot{}, false
	}
	snap := c.lib.native.Snapshot(c.handle)
	runtime.KeepAlive(c)
	return snap, true
}

func (c *CD) succeeded(fn func(Native, Handle) int) bool {
	code, ok := c.call(fn)
	return ok && code == 0
}

// call runs fn against the open handle. The KeepAlive stops the cleanup from
// closing the handle while fn is still using it.
func (c *CD) call(fn func(Native, Handle) int) (int, bool) {
	if c.Closed() {
		return 0, false
	}
	code := fn(c.lib.native, c.handle)
	runtime.KeepAlive(c)
	return code, true
}
