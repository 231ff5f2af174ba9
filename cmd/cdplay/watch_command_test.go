package main

import (
	"bufio"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"cdplay/internal/logging"
	"cdplay/internal/mediawatch"
	"cdplay/internal/sdlcd"
	"cdplay/internal/testsupport"
)

func openFakeDrive(t *testing.T, native *testsupport.FakeCD) *sdlcd.CD {
	t.Helper()
	cd, err := sdlcd.NewLibrary(native).Open(0)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = cd.Close() })
	return cd
}

func TestStatusWatcherReportsTransitions(t *testing.T) {
	native := testsupport.NewFakeCD("/dev/cdrom")
	native.Snap = sampleDisc()
	cd := openFakeDrive(t, native)

	var changes []statusChange
	w := newStatusWatcher(cd, logging.NewNop(), func(c statusChange) error {
		changes = append(changes, c)
		return nil
	})

	steps := []struct {
		code    int
		track   int
		changed bool
	}{
		{sdlcd.CodeStopped, 0, true},
		{sdlcd.CodeStopped, 0, false},
		{sdlcd.CodePlaying, 0, true},
		{sdlcd.CodePlaying, 0, false},
		{sdlcd.CodePlaying, 1, true},
		{sdlcd.CodePaused, 1, true},
		{sdlcd.CodeTrayEmpty, 1, true},
		{42, 1, true},
	}
	for i, step := range steps {
		native.StatusCode = step.code
		native.Snap.CurrentTrack = step.track
		changed, err := w.check("poll")
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if changed != step.changed {
			t.Fatalf("step %d: changed = %v, want %v", i, changed, step.changed)
		}
	}

	if len(changes) != 6 {
		t.Fatalf("expected 6 changes, got %d: %+v", len(changes), changes)
	}
	if changes[0].Previous != "" || changes[0].Status != "stopped" {
		t.Fatalf("unexpected first change: %+v", changes[0])
	}
	if changes[2].Track != 2 || changes[2].Previous != "playing" {
		t.Fatalf("track change not reported: %+v", changes[2])
	}
	if last := changes[len(changes)-1]; last.Status != "error" || last.Previous != "tray_empty" {
		t.Fatalf("unknown code should surface as error: %+v", last)
	}
}

func TestStatusWatcherRunReactsToMediaEvents(t *testing.T) {
	native := testsupport.NewFakeCD("/dev/cdrom")
	cd := openFakeDrive(t, native)

	reasons := make(chan string, 4)
	w := newStatusWatcher(cd, logging.NewNop(), func(c statusChange) error {
		reasons <- c.Reason
		return nil
	})

	media := make(chan mediawatch.Event, 1)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.run(ctx, time.Hour, media) }()

	if got := <-reasons; got != "initial" {
		t.Fatalf("first report reason = %q", got)
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestWatchCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t, "/dev/cdrom")
	env.native.StatusCode = sdlcd.CodePaused
	env.native.Snap = sampleDisc()

	out, _, err := runCLI(t, env, "--json", "watch", "--interval", "5ms", "--for", "50ms")
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	scanner := bufio.NewScanner(strings.NewReader(out))
	var lines []statusChange
	for scanner.Scan() {
		var c statusChange
		if err := json.Unmarshal(scanner.Bytes(), &c); err != nil {
			t.Fatalf("decode %q: %v", scanner.Text(), err)
		}
		lines = append(lines, c)
	}
	if len(lines) != 1 {
		t.Fatalf("steady drive should report once, got %d lines:\n%s", len(lines), out)
	}
	if lines[0].Status != "paused" || lines[0].Track != 2 || lines[0].Reason != "initial" {
		t.Fatalf("unexpected change: %+v", lines[0])
	}
	if env.native.Calls("status") < 2 {
		t.Fatalf("expected repeated polling, status calls = %d", env.native.Calls("status"))
	}
	if env.native.Closes() != 1 {
		t.Fatalf("closes = %d, want 1", env.native.Closes())
	}
}

func TestWatchCommandText(t *testing.T) {
	env := setupCLITestEnv(t, "/dev/cdrom")

	out, _, err := runCLI(t, env, "watch", "--interval", "5ms", "--for", "20ms")
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	requireContains(t, out, "drive 0")
	requireContains(t, out, "[Stopped]")
}
