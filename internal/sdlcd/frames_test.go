package sdlcd

import (
	"testing"
	"time"
)

func TestFramesToMSF(t *testing.T) {
	tests := []struct {
		frames          int
		min, sec, frame int
	}{
		{0, 0, 0, 0},
		{74, 0, 0, 74},
		{75, 0, 1, 0},
		{4500, 1, 0, 0},
		{MSFToFrames(3, 25, 40), 3, 25, 40},
	}
	for _, tt := range tests {
		m, s, f := FramesToMSF(tt.frames)
		if m != tt.min || s != tt.sec || f != tt.frame {
			t.Errorf("FramesToMSF(%d) = %d:%d:%d, want %d:%d:%d", tt.frames, m, s, f, tt.min, tt.sec, tt.frame)
		}
	}
}

func TestTrackHelpers(t *testing.T) {
	audio := Track{ID: 1, Type: trackTypeAudio, Length: 75 * 90}
	if !audio.IsAudio() {
		t.Fatal("expected audio track")
	}
	if got := audio.Duration(); got != 90*time.Second {
		t.Fatalf("Duration = %s, want 1m30s", got)
	}
	data := Track{ID: 2, Type: trackTypeData}
	if data.IsAudio() {
		t.Fatal("expected data track")
	}
}
