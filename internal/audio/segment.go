package audio

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
)

// resampleQuality is the interpolation window used when changing speed or rate.
const resampleQuality = 4

// Silence returns d worth of zero samples.
func Silence(rate beep.SampleRate, d time.Duration) Segment {
	return Segment{Rate: rate, Samples: make([]float64, rate.N(d))}
}

// Append returns s followed by o. o is assumed to share the rate of s.
func (s Segment) Append(o Segment) Segment {
	out := make([]float64, 0, len(s.Samples)+len(o.Samples))
	out = append(out, s.Samples...)
	out = append(out, o.Samples...)
	return Segment{Rate: s.Rate, Samples: out}
}

// Overlay adds o onto s starting at offset at. The result keeps the length
// of s; whatever part of o falls past the end is dropped.
func (s Segment) Overlay(o Segment, at time.Duration) Segment {
	out := make([]float64, len(s.Samples))
	copy(out, s.Samples)
	off := s.Rate.N(at)
	for i, v := range o.Samples {
		j := off + i
		if j >= len(out) {
			break
		}
		out[j] = clip(out[j] + v)
	}
	return Segment{Rate: s.Rate, Samples: out}
}

// Gain scales the segment by db decibels.
func (s Segment) Gain(db float64) Segment {
	return FromStreamer(s.Rate, &effects.Volume{
		Streamer: s.Streamer(),
		Base:     10,
		Volume:   db / 20,
	})
}

// SpeedUp plays the segment ratio times faster by resampling. Pitch rises
// with the speed.
func (s Segment) SpeedUp(ratio float64) Segment {
	if ratio <= 0 {
		panic(fmt.Sprintf("audio: invalid speed ratio %v", ratio))
	}
	if ratio == 1 {
		return s.Append(Segment{})
	}
	return FromStreamer(s.Rate, beep.ResampleRatio(resampleQuality, ratio, s.Streamer()))
}

// Resample converts the segment to another sample rate, keeping its duration.
func (s Segment) Resample(rate beep.SampleRate) Segment {
	if rate == s.Rate {
		return s.Append(Segment{})
	}
	return FromStreamer(rate, beep.Resample(resampleQuality, s.Rate, rate, s.Streamer()))
}

// Mix sums segments sample by sample without normalization. The result is
// as long as the longest input and saturates at full scale.
func Mix(segs ...Segment) Segment {
	if len(segs) == 0 {
		return Segment{Rate: DefaultSampleRate}
	}
	streamers := make([]beep.Streamer, len(segs))
	for i, seg := range segs {
		streamers[i] = seg.Streamer()
	}
	return FromStreamer(segs[0].Rate, beep.Mix(streamers...))
}

// Streamer exposes the segment as a beep stream with both channels equal.
func (s Segment) Streamer() beep.StreamSeeker {
	return &segmentStreamer{samples: s.Samples}
}

// FromStreamer drains st into a segment, averaging the two channels.
func FromStreamer(rate beep.SampleRate, st beep.Streamer) Segment {
	var out []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := st.Stream(buf)
		for _, frame := range buf[:n] {
			out = append(out, clip((frame[0]+frame[1])/2))
		}
		if !ok {
			break
		}
	}
	return Segment{Rate: rate, Samples: out}
}

type segmentStreamer struct {
	samples []float64
	pos     int
}

func (s *segmentStreamer) Stream(buf [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	for n < len(buf) && s.pos < len(s.samples) {
		v := s.samples[s.pos]
		buf[n] = [2]float64{v, v}
		n++
		s.pos++
	}
	return n, true
}

func (s *segmentStreamer) Err() error { return nil }

func (s *segmentStreamer) Len() int { return len(s.samples) }

func (s *segmentStreamer) Position() int { return s.pos }

func (s *segmentStreamer) Seek(p int) error {
	if p < 0 || p > len(s.samples) {
		return fmt.Errorf("seek %d out of range [0, %d]", p, len(s.samples))
	}
	s.pos = p
	return nil
}
