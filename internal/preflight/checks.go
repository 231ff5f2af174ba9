package preflight

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"cdplay/internal/sdlcd"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckDevice verifies that the configured block device exists and can be
// opened for reading, which SDL needs to issue CD-ROM ioctls.
func CheckDevice(path string) Result {
	const name = "Optical device"

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not readable: %v; is the user in the cdrom group?)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read ok)", path)}
}

// CheckDrive verifies that SDL sees the configured drive index and can open it.
func CheckDrive(ctx context.Context, lib *sdlcd.Library, index int) Result {
	const name = "SDL drive"

	if err := ctx.Err(); err != nil {
		return Result{Name: name, Detail: err.Error()}
	}

	count := lib.NumDrives()
	if count == 0 {
		detail := "no CD-ROM drives detected"
		if msg := lib.LastError(); msg != "" {
			detail = fmt.Sprintf("%s (%s)", detail, msg)
		}
		return Result{Name: name, Detail: detail}
	}
	if index >= count {
		return Result{Name: name, Detail: fmt.Sprintf("drive %d out of range (%d detected)", index, count)}
	}

	cd, err := lib.Open(index)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	defer cd.Close()

	return Result{
		Name:   name,
		Passed: true,
		Detail: fmt.Sprintf("drive %d %s (%s)", index, lib.DriveName(index), cd.Status()),
	}
}
