package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewFanoutHandlerCollapses(t *testing.T) {
	if _, ok := newFanoutHandler(nil, nil).(NoopHandler); !ok {
		t.Fatal("expected NoopHandler when every handler is nil")
	}

	var buf bytes.Buffer
	inner := slog.NewJSONHandler(&buf, nil)
	if h := newFanoutHandler(nil, inner); h != inner {
		t.Fatal("a single handler should be returned unwrapped")
	}
}

func TestFanoutHandlerSplitsByLevel(t *testing.T) {
	var console, file bytes.Buffer
	consoleLevel := new(slog.LevelVar)
	consoleLevel.Set(slog.LevelWarn)
	fileLevel := new(slog.LevelVar)
	fileLevel.Set(slog.LevelDebug)

	h := newFanoutHandler(
		newPrettyHandler(&console, consoleLevel, false, false),
		newJSONHandler(&file, fileLevel, false),
	)
	if h.Enabled(context.Background(), slog.LevelDebug-1) {
		t.Fatal("no handler accepts levels below debug")
	}

	logger := slog.New(h).With(slog.String(FieldComponent, "watch"))
	logger.Debug("status polled", slog.Int(FieldDrive, 0))
	logger.Warn("netlink unavailable")

	if strings.Contains(console.String(), "status polled") {
		t.Fatalf("console got a debug record: %q", console.String())
	}
	if !strings.Contains(console.String(), "watch: netlink unavailable") {
		t.Fatalf("console missing warning: %q", console.String())
	}
	for _, want := range []string{`"msg":"status polled"`, `"drive":0`, `"msg":"netlink unavailable"`, `"component":"watch"`} {
		if !strings.Contains(file.String(), want) {
			t.Fatalf("file output missing %s: %q", want, file.String())
		}
	}
}

func TestFanoutHandlerWithGroup(t *testing.T) {
	var a, b bytes.Buffer
	h := newFanoutHandler(slog.NewJSONHandler(&a, nil), slog.NewJSONHandler(&b, nil)).WithGroup("track")
	slog.New(h).Info("toc", slog.Int("number", 3))

	for _, buf := range []*bytes.Buffer{&a, &b} {
		if !strings.Contains(buf.String(), `"track":{"number":3}`) {
			t.Fatalf("expected grouped attr, got %q", buf.String())
		}
	}
}
