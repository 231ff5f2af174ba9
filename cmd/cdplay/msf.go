package main

import (
	"fmt"
	"strconv"
	"strings"

	"cdplay/internal/sdlcd"
)

// parsePosition accepts a raw frame count ("4500") or a clock position
// ("1:00", "1:00:37" where the last field is frames).
func parsePosition(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty position")
	}
	if !strings.Contains(value, ":") {
		frames, err := strconv.Atoi(value)
		if err != nil || frames < 0 {
			return 0, fmt.Errorf("invalid position %q: want frames or mm:ss[:ff]", value)
		}
		return frames, nil
	}

	parts := strings.Split(value, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid position %q: want frames or mm:ss[:ff]", value)
	}
	fields := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid position %q: want frames or mm:ss[:ff]", value)
		}
		fields[i] = n
	}
	if fields[1] >= 60 || fields[2] >= sdlcd.FramesPerSecond {
		return 0, fmt.Errorf("invalid position %q: seconds must be < 60 and frames < %d", value, sdlcd.FramesPerSecond)
	}
	return sdlcd.MSFToFrames(fields[0], fields[1], fields[2]), nil
}

// formatMSF renders frames as mm:ss:ff.
func formatMSF(frames int) string {
	m, s, f := sdlcd.FramesToMSF(frames)
	return fmt.Sprintf("%02d:%02d:%02d", m, s, f)
}

// formatClock renders frames as mm:ss, dropping the frame remainder.
func formatClock(frames int) string {
	m, s, _ := sdlcd.FramesToMSF(frames)
	return fmt.Sprintf("%02d:%02d", m, s)
}
