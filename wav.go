package bufwav

import "time"

// FramesForDuration returns the number of whole frames that fit in dur at
// the given sample rate.
func FramesForDuration(dur time.Duration, sampleRate int) int {
	if sampleRate <= 0 || dur <= 0 {
		return 0
	}

	return int(int64(dur) * int64(sampleRate) / int64(time.Second))
}

func framesDuration(frames, sampleRate int) time.Duration {
	if sampleRate <= 0 {
		return 0
	}

	return time.Duration(int64(frames) * int64(time.Second) / int64(sampleRate))
}
