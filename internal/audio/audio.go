package audio

import (
	"time"

	"github.com/faiface/beep"
)

const (
	DefaultSampleRate = beep.SampleRate(44100)
	Channels          = 1
	BitDepth          = 16

	DefaultEchoDelay = 100 * time.Millisecond
	DefaultEchoDecay = 0.3
)

// Segment is a mono audio buffer. Samples are in [-1, 1]; every operation
// that mixes or amplifies saturates to that range. Segments are values:
// operations return new segments and never modify their receiver.
type Segment struct {
	Rate    beep.SampleRate
	Samples []float64
}

// Format describes the segment for encoders.
func (s Segment) Format() beep.Format {
	return beep.Format{
		SampleRate:  s.Rate,
		NumChannels: Channels,
		Precision:   BitDepth / 8,
	}
}

// Len returns the number of sample frames.
func (s Segment) Len() int {
	return len(s.Samples)
}

// Duration returns the playing time of the segment.
func (s Segment) Duration() time.Duration {
	return s.Rate.D(len(s.Samples))
}
