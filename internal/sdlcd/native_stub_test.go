//go:build !cgo || !sdl

package sdlcd

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultLibraryWithoutSDL(t *testing.T) {
	if NumDrives() != 0 {
		t.Fatal("stub should report no drives")
	}
	if got := DriveName(0); got != "" {
		t.Fatalf("DriveName on stub = %q", got)
	}
	cd, err := Open(0)
	if cd != nil {
		t.Fatal("stub must not hand out handles")
	}
	if !errors.Is(err, ErrOpen) || !strings.Contains(err.Error(), "not compiled in") {
		t.Fatalf("Open on stub = %v", err)
	}
	if err := Init(); !errors.Is(err, ErrInit) {
		t.Fatalf("Init on stub = %v", err)
	}
}
