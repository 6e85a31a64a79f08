package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Waveform selects the oscillator shape of a tone.
type Waveform int

const (
	Sine Waveform = iota
	Square
)

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Square:
		return "square"
	}
	return "unknown"
}

// Tone renders a full-scale oscillator at freq Hz for d. Square waves use a
// 50% duty cycle.
func Tone(w Waveform, freq float64, d time.Duration, rate beep.SampleRate) Segment {
	samples := make([]float64, rate.N(d))
	for i := range samples {
		t := float64(i) / float64(rate)
		switch w {
		case Square:
			if math.Mod(freq*t, 1) < 0.5 {
				samples[i] = 1
			} else {
				samples[i] = -1
			}
		default:
			samples[i] = math.Sin(2 * math.Pi * freq * t)
		}
	}
	return Segment{Rate: rate, Samples: samples}
}
