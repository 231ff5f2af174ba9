package sdlcd

// FramesToMSF splits a frame count into minutes, seconds and frames
// (FRAMES_TO_MSF).
func FramesToMSF(frames int) (minutes, seconds, rest int) {
	rest = frames % FramesPerSecond
	frames /= FramesPerSecond
	seconds = frames % 60
	minutes = frames / 60
	return minutes, seconds, rest
}

// MSFToFrames is the inverse of FramesToMSF (MSF_TO_FRAMES).
func MSFToFrames(minutes, seconds, frames int) int {
	return minutes*60*FramesPerSecond + seconds*FramesPerSecond + frames
}
