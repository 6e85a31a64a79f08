package audio

import (
	"encoding/binary"
	"math"

	"github.com/faiface/beep"
)

// Int16 quantizes the segment to 16-bit PCM.
func (s Segment) Int16() []int16 {
	pcm := make([]int16, len(s.Samples))
	for i, v := range s.Samples {
		pcm[i] = int16(math.Round(clip(v) * math.MaxInt16))
	}
	return pcm
}

// FromInt16 builds a segment from 16-bit PCM samples.
func FromInt16(rate beep.SampleRate, pcm []int16) Segment {
	samples := make([]float64, len(pcm))
	for i, v := range pcm {
		samples[i] = clip(float64(v) / math.MaxInt16)
	}
	return Segment{Rate: rate, Samples: samples}
}

// SamplesToBytes converts int16 samples to little-endian bytes.
func SamplesToBytes(samples []int16) []byte {
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(s))
	}
	return buf
}

// Peak returns the largest absolute sample value.
func (s Segment) Peak() float64 {
	var peak float64
	for _, v := range s.Samples {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}

// clip saturates v to full scale.
func clip(v float64) float64 {
	if v > 1 {
		return 1
	} else if v < -1 {
		return -1
	}
	return v
}
