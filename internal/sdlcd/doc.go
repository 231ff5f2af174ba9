// Package sdlcd binds the SDL 1.2 CD-ROM audio API.
//
// The native surface (Native) mirrors the SDL_CD* entry points and status
// codes. It is compiled against libSDL only with the "sdl" build tag and cgo
// enabled; other builds get a stub that reports no drives. On top of it, CD
// owns exactly one native drive handle and releases it exactly once, either
// through Close or through a runtime cleanup when the handle is dropped.
//
// Control methods collapse native failure to false. The reason lives in the
// process-wide SDL error slot: read it with LastError straight after the
// failing call, before issuing another one.
package sdlcd
