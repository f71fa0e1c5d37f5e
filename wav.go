package dwav

import (
	"math"
	"time"
)

func sampleDuration(sampleRate int) time.Duration {
	if sampleRate == 0 {
		return 0
	}

	return time.Second / time.Duration(math.Abs(float64(sampleRate)))
}

func bytesPerSample(bitDepth int) int {
	return (bitDepth-1)/8 + 1
}
