package audio

import "time"

// echoRepeats is the number of delayed copies laid over the original.
const echoRepeats = 2

// Echo pads seg with delay of silence and overlays echoRepeats copies of the
// original, each 5*decay dB quieter. The first copy starts at delay; each
// following delay grows by decay of the previous one, truncated to whole
// milliseconds. Copies never extend the padded buffer, so the result is
// always exactly len(seg)+delay long.
func Echo(seg Segment, delay time.Duration, decay float64) Segment {
	out := seg.Append(Silence(seg.Rate, delay))
	quieter := seg.Gain(-5 * decay)
	for range echoRepeats {
		out = out.Overlay(quieter, delay)
		ms := int64(delay / time.Millisecond)
		delay += time.Duration(int64(float64(ms)*decay)) * time.Millisecond
	}
	return out
}
