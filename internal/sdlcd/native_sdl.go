//go:build cgo && sdl

package sdlcd

/*
#cgo pkg-config: sdl
#include <SDL/SDL.h>
*/
import "C"

import "unsafe"

type sdlNative struct{}

func defaultNative() Native { return sdlNative{} }

func raw(cd Handle) *C.SDL_CD { return (*C.SDL_CD)(unsafe.Pointer(cd)) }

func (sdlNative) Init() int { return int(C.SDL_InitSubSystem(C.SDL_INIT_CDROM)) }

func (sdlNative) Quit() { C.SDL_QuitSubSystem(C.SDL_INIT_CDROM) }

func (sdlNative) NumDrives() int { return int(C.SDL_CDNumDrives()) }

func (sdlNative) DriveName(drive int) (string, bool) {
	name := C.SDL_CDName(C.int(drive))
	if name == nil {
		return "", false
	}
	return C.GoString(name), true
}

func (sdlNative) Open(drive int) Handle {
	return Handle(unsafe.Pointer(C.SDL_CDOpen(C.int(drive))))
}

func (sdlNative) Status(cd Handle) int { return int(C.SDL_CDStatus(raw(cd))) }

func (sdlNative) Close(cd Handle) { C.SDL_CDClose(raw(cd)) }

func (sdlNative) Stop(cd Handle) int { return int(C.SDL_CDStop(raw(cd))) }

func (sdlNative) Eject(cd Handle) int { return int(C.SDL_CDEject(raw(cd))) }

func (sdlNative) Resume(cd Handle) int { return int(C.SDL_CDResume(raw(cd))) }

func (sdlNative) Pause(cd Handle) int { return int(C.SDL_CDPause(raw(cd))) }

func (sdlNative) Play(cd Handle, start, length int) int {
	return int(C.SDL_CDPlay(raw(cd), C.int(start), C.int(length)))
}

func (sdlNative) PlayTracks(cd Handle, startTrack, startFrame, ntracks, nframes int) int {
	return int(C.SDL_CDPlayTracks(raw(cd), C.int(startTrack), C.int(startFrame), C.int(ntracks), C.int(nframes)))
}

func (sdlNative) Snapshot(cd Handle) Snapshot {
	r := raw(cd)
	snap := Snapshot{
		ID:           int(r.id),
		StatusCode:   int(r.status),
		NumTracks:    int(r.numtracks),
		CurrentTrack: int(r.cur_track),
		CurrentFrame: int(r.cur_frame),
	}
	n := snap.NumTracks
	if n < 0 {
		n = 0
	}
	if n > MaxTracks {
		n = MaxTracks
	}
	snap.Tracks = make([]Track, n)
	for i := 0; i < n; i++ {
		t := r.track[i]
		snap.Tracks[i] = Track{
			ID:     uint8(t.id),
			Type:   uint8(t._type),
			Length: uint32(t.length),
			Offset: uint32(t.offset),
		}
	}
	return snap
}

func (sdlNative) GetError() string { return C.GoString(C.SDL_GetError()) }

func (sdlNative) ClearError() { C.SDL_ClearError() }
