package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cdplay/internal/sdlcd"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 20
	statusIndent     = "  "
)

var titleCaser = cases.Title(language.Und)

// statusLabel turns "tray_empty" into "Tray Empty".
func statusLabel(status sdlcd.Status) string {
	return titleCaser.String(strings.ReplaceAll(status.String(), "_", " "))
}

func statusKindFor(status sdlcd.Status) statusKind {
	switch status {
	case sdlcd.StatusPlaying:
		return statusOK
	case sdlcd.StatusTrayEmpty:
		return statusWarn
	case sdlcd.StatusError:
		return statusError
	default:
		return statusInfo
	}
}

// renderStatusLine renders "  label:   [STATE] message". state defaults to
// the kind's label when empty.
func renderStatusLine(label string, kind statusKind, state, message string, colorize bool) string {
	if state == "" {
		state = statusKindLabel(kind)
	}
	statusText := fmt.Sprintf("[%s]", state)
	if message != "" {
		statusText = fmt.Sprintf("%s %s", statusText, message)
	}
	base := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", statusText)
	if colorize {
		if color := statusKindColor(kind); color != "" {
			return color + base + ansiReset
		}
	}
	return base
}

func statusKindLabel(kind statusKind) string {
	switch kind {
	case statusOK:
		return "OK"
	case statusWarn:
		return "WARN"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	case statusInfo:
		return ansiBlue
	default:
		return ""
	}
}

// positionText describes the play position, e.g. "track 3 at 01:23".
// track is the zero-based SDL track index.
func positionText(status sdlcd.Status, track, frame int) string {
	if status != sdlcd.StatusPlaying && status != sdlcd.StatusPaused {
		return ""
	}
	return fmt.Sprintf("track %d at %s", track+1, formatClock(frame))
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
