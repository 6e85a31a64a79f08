package audio

import (
	"math"
	"testing"
	"time"
)

// --- Constants ---

func TestConstants(t *testing.T) {
	f := Segment{Rate: DefaultSampleRate}.Format()
	if f.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", f.SampleRate)
	}
	if f.NumChannels != Channels {
		t.Errorf("NumChannels = %d, want %d", f.NumChannels, Channels)
	}
	if f.Precision != 2 {
		t.Errorf("Precision = %d, want 2 bytes", f.Precision)
	}
}

// --- Tones ---

func TestToneLength(t *testing.T) {
	for _, w := range []Waveform{Sine, Square} {
		seg := Tone(w, 440, 600*time.Millisecond, DefaultSampleRate)
		if seg.Len() != 26460 {
			t.Errorf("%s tone length = %d, want 26460", w, seg.Len())
		}
		if seg.Duration() != 600*time.Millisecond {
			t.Errorf("%s tone duration = %v, want 600ms", w, seg.Duration())
		}
	}
}

func TestSineShape(t *testing.T) {
	// 1 Hz at 4 Hz sample rate hits 0, 1, 0, -1
	seg := Tone(Sine, 1, time.Second, 4)
	want := []float64{0, 1, 0, -1}
	for i, w := range want {
		if math.Abs(seg.Samples[i]-w) > 1e-9 {
			t.Errorf("sine sample[%d] = %v, want %v", i, seg.Samples[i], w)
		}
	}
}

func TestSquareShape(t *testing.T) {
	seg := Tone(Square, 1, time.Second, 4)
	want := []float64{1, 1, -1, -1}
	for i, w := range want {
		if seg.Samples[i] != w {
			t.Errorf("square sample[%d] = %v, want %v", i, seg.Samples[i], w)
		}
	}
}

func TestWaveformString(t *testing.T) {
	if Sine.String() != "sine" || Square.String() != "square" || Waveform(9).String() != "unknown" {
		t.Error("unexpected Waveform names")
	}
}

// --- Buffer operations ---

func TestAppendConcatenates(t *testing.T) {
	a := Segment{Rate: 10, Samples: []float64{0.1, 0.2}}
	b := Segment{Rate: 10, Samples: []float64{0.3}}
	got := a.Append(b)
	if got.Len() != 3 || got.Samples[2] != 0.3 {
		t.Errorf("Append = %v, want [0.1 0.2 0.3]", got.Samples)
	}
	if a.Len() != 2 {
		t.Error("Append modified its receiver")
	}
}

func TestSilence(t *testing.T) {
	seg := Silence(DefaultSampleRate, 100*time.Millisecond)
	if seg.Len() != 4410 {
		t.Errorf("Silence length = %d, want 4410", seg.Len())
	}
	if seg.Peak() != 0 {
		t.Errorf("Silence peak = %v, want 0", seg.Peak())
	}
}

func TestOverlayKeepsBaseLength(t *testing.T) {
	base := Segment{Rate: 1000, Samples: make([]float64, 10)}
	over := Segment{Rate: 1000, Samples: []float64{0.5, 0.5, 0.5, 0.5, 0.5}}
	got := base.Overlay(over, 8*time.Millisecond)
	if got.Len() != 10 {
		t.Fatalf("Overlay length = %d, want 10", got.Len())
	}
	for i, v := range got.Samples {
		want := 0.0
		if i >= 8 {
			want = 0.5
		}
		if v != want {
			t.Errorf("Overlay sample[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestOverlaySaturates(t *testing.T) {
	base := Segment{Rate: 1000, Samples: []float64{0.8, -0.8}}
	got := base.Overlay(base, 0)
	if got.Samples[0] != 1 || got.Samples[1] != -1 {
		t.Errorf("Overlay should clip: got %v", got.Samples)
	}
}

func TestGainDecibels(t *testing.T) {
	seg := Segment{Rate: 1000, Samples: []float64{0.5, -0.5}}
	got := seg.Gain(-6)
	want := 0.5 * math.Pow(10, -6.0/20)
	if math.Abs(got.Samples[0]-want) > 1e-9 || math.Abs(got.Samples[1]+want) > 1e-9 {
		t.Errorf("Gain(-6) = %v, want ±%v", got.Samples, want)
	}
	loud := Segment{Rate: 1000, Samples: []float64{1}}.Gain(1)
	if loud.Samples[0] != 1 {
		t.Errorf("Gain(+1) on full scale = %v, want clipped 1", loud.Samples[0])
	}
}

func TestMixSumsAndClips(t *testing.T) {
	a := Segment{Rate: 1000, Samples: []float64{0.2, 0.5, -0.7}}
	b := Segment{Rate: 1000, Samples: []float64{0.1, 0.6, -0.7}}
	got := Mix(a, b)
	want := []float64{0.3, 1, -1}
	if got.Len() != len(want) {
		t.Fatalf("Mix length = %d, want %d", got.Len(), len(want))
	}
	for i, w := range want {
		if math.Abs(got.Samples[i]-w) > 1e-9 {
			t.Errorf("Mix sample[%d] = %v, want %v", i, got.Samples[i], w)
		}
	}
}

func TestSpeedUpShortens(t *testing.T) {
	seg := Tone(Sine, 220, time.Second, DefaultSampleRate)
	for _, ratio := range []float64{1.4, 1.8, 2.2} {
		got := seg.SpeedUp(ratio)
		want := float64(seg.Len()) / ratio
		if math.Abs(float64(got.Len())-want) > 64 {
			t.Errorf("SpeedUp(%v) length = %d, want about %.0f", ratio, got.Len(), want)
		}
	}
}

func TestSpeedUpInvalidRatioPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SpeedUp(0) should panic")
		}
	}()
	Segment{Rate: 1000}.SpeedUp(0)
}

func TestResampleKeepsDuration(t *testing.T) {
	seg := Tone(Sine, 440, 500*time.Millisecond, DefaultSampleRate)
	got := seg.Resample(48000)
	if got.Rate != 48000 {
		t.Fatalf("Rate = %d, want 48000", got.Rate)
	}
	if diff := got.Duration() - seg.Duration(); diff > 2*time.Millisecond || diff < -2*time.Millisecond {
		t.Errorf("Resample duration = %v, want about %v", got.Duration(), seg.Duration())
	}
}

func TestStreamerSeek(t *testing.T) {
	st := Segment{Rate: 10, Samples: []float64{1, 2, 3}}.Streamer()
	if err := st.Seek(2); err != nil {
		t.Fatalf("Seek(2): %v", err)
	}
	buf := make([][2]float64, 4)
	n, ok := st.Stream(buf)
	if n != 1 || !ok || buf[0][0] != 3 {
		t.Errorf("Stream after seek = (%d, %v, %v), want one sample of 3", n, ok, buf[0])
	}
	if _, ok := st.Stream(buf); ok {
		t.Error("Stream past end should report drained")
	}
	if err := st.Seek(4); err == nil {
		t.Error("Seek past end should fail")
	}
}

// --- PCM ---

func TestInt16Clipping(t *testing.T) {
	seg := Segment{Rate: 10, Samples: []float64{0, 1, -1, 2, -2, 0.5}}
	got := seg.Int16()
	want := []int16{0, 32767, -32767, 32767, -32767, 16384}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("Int16 sample[%d] = %d, want %d", i, got[i], w)
		}
	}
}

func TestSamplesToBytes(t *testing.T) {
	samples := []int16{0, 1, -1, 32767, -32768, 256}
	buf := SamplesToBytes(samples)
	if len(buf) != len(samples)*2 {
		t.Fatalf("SamplesToBytes length = %d, want %d", len(buf), len(samples)*2)
	}

	// 256 = 0x0100 -> bytes [0x00, 0x01]
	idx := 5 * 2
	if buf[idx] != 0x00 || buf[idx+1] != 0x01 {
		t.Errorf("Sample 256 encoded as [%02x, %02x], want [00, 01]", buf[idx], buf[idx+1])
	}
}

func TestInt16RoundTrip(t *testing.T) {
	original := []int16{0, 1, -1, 32767, -32767, 12345, -6789}
	got := FromInt16(44100, original).Int16()
	for i, v := range original {
		if got[i] != v {
			t.Errorf("Round-trip sample[%d]: got %d, want %d", i, got[i], v)
		}
	}
}
