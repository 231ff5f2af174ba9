package main

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"cdplay/internal/sdlcd"
)

func TestDrivesCommand(t *testing.T) {
	env := setupCLITestEnv(t, "/dev/cdrom", "/dev/sr1")

	out, _, err := runCLI(t, env, "drives")
	if err != nil {
		t.Fatalf("drives: %v", err)
	}
	requireContains(t, out, "/dev/cdrom")
	requireContains(t, out, "/dev/sr1")
	if !env.native.QuitCalled() {
		t.Fatal("expected CD-ROM subsystem to be shut down after the command")
	}

	out, _, err = runCLI(t, env, "--json", "--drive", "1", "drives")
	if err != nil {
		t.Fatalf("drives --json: %v", err)
	}
	var drives []driveJSON
	if err := json.Unmarshal([]byte(out), &drives); err != nil {
		t.Fatalf("decode drives json: %v\n%s", err, out)
	}
	if len(drives) != 2 || drives[1].Name != "/dev/sr1" || !drives[1].Selected || drives[0].Selected {
		t.Fatalf("unexpected drives: %+v", drives)
	}
}

func TestDrivesCommandWithStatus(t *testing.T) {
	env := setupCLITestEnv(t, "/dev/cdrom")
	env.native.StatusCode = sdlcd.CodePlaying

	out, _, err := runCLI(t, env, "drives", "--status")
	if err != nil {
		t.Fatalf("drives --status: %v", err)
	}
	requireContains(t, out, "Playing")
	if env.native.Closes() != 1 {
		t.Fatalf("probe should close its handle, closes=%d", env.native.Closes())
	}
}

func TestDrivesCommandNoDrives(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, env, "drives")
	if err != nil {
		t.Fatalf("drives: %v", err)
	}
	requireContains(t, out, "No CD-ROM drives found")
}

func TestStatusCommand(t *testing.T) {
	env := setupCLITestEnv(t, "/dev/cdrom")
	env.native.StatusCode = sdlcd.CodePlaying
	env.native.Snap = sampleDisc()

	out, _, err := runCLI(t, env, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "Drive 0 (/dev/cdrom)")
	requireContains(t, out, "[Playing] track 2 at 01:21")

	out, _, err = runCLI(t, env, "--json", "status")
	if err != nil {
		t.Fatalf("status --json: %v", err)
	}
	var report statusJSON
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode status json: %v", err)
	}
	if report.Status != "playing" || !report.InDrive || report.Track != 2 || report.Tracks != 3 {
		t.Fatalf("unexpected status report: %+v", report)
	}
	if env.native.Closes() != 2 {
		t.Fatalf("each command closes its handle once, closes=%d", env.native.Closes())
	}
}

func TestStatusCommandTrayEmpty(t *testing.T) {
	env := setupCLITestEnv(t, "/dev/cdrom")
	env.native.StatusCode = sdlcd.CodeTrayEmpty

	out, _, err := runCLI(t, env, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "[Tray Empty]")
}

func TestStatusCommandOpenFailure(t *testing.T) {
	env := setupCLITestEnv(t, "/dev/cdrom")
	env.native.OpenNil = true
	env.native.ErrText = "Permission denied"

	_, _, err := runCLI(t, env, "status")
	if err == nil {
		t.Fatal("expected open failure")
	}
	if !errors.Is(err, sdlcd.ErrOpen) {
		t.Fatalf("expected ErrOpen, got %v", err)
	}
	requireContains(t, err.Error(), "Permission denied")
}

func TestTracksCommand(t *testing.T) {
	env := setupCLITestEnv(t, "/dev/cdrom")
	env.native.Snap = sampleDisc()

	out, _, err := runCLI(t, env, "tracks")
	if err != nil {
		t.Fatalf("tracks: %v", err)
	}
	requireContains(t, out, "00:02:00")
	requireContains(t, out, "data")
	requireContains(t, out, "3 tracks")
	requireContains(t, out, "06:00")
	if env.native.Calls("status") == 0 {
		t.Fatal("tracks must query status to refresh the table of contents")
	}

	out, _, err = runCLI(t, env, "--json", "tracks")
	if err != nil {
		t.Fatalf("tracks --json: %v", err)
	}
	var tracks []trackJSON
	if err := json.Unmarshal([]byte(out), &tracks); err != nil {
		t.Fatalf("decode tracks json: %v", err)
	}
	if len(tracks) != 3 || !tracks[0].Audio || tracks[2].Audio || tracks[0].Duration != 180 {
		t.Fatalf("unexpected tracks: %+v", tracks)
	}
}

func TestTracksCommandNoDisc(t *testing.T) {
	env := setupCLITestEnv(t, "/dev/cdrom")
	env.native.StatusCode = sdlcd.CodeTrayEmpty

	_, _, err := runCLI(t, env, "tracks")
	if err == nil || !strings.Contains(err.Error(), "no disc") {
		t.Fatalf("expected no disc error, got %v", err)
	}
}
