// Package compose turns a scale and a tempo into a short random melody.
package compose

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/faiface/beep"
	"github.com/satindergrewal/tonecast/internal/audio"
	"github.com/satindergrewal/tonecast/internal/scale"
)

const (
	NoteDuration = 600 * time.Millisecond

	MinChords = 3
	MaxChords = 5
	MinNotes  = 15
	MaxNotes  = 25

	chordSize = 3
	maxGainDB = 1.0
)

// Note is one extra tone after the chords.
type Note struct {
	Pitch  float64
	Wave   audio.Waveform
	GainDB float64
}

// Composition is the random plan for one clip.
type Composition struct {
	Scale  scale.Scale
	Tempo  Tempo
	Seed   float64 // opening sine pitch
	Chords [][chordSize]float64
	Notes  []Note
}

// Tones counts the 600ms slots before the tempo change.
func (c Composition) Tones() int {
	return 1 + len(c.Chords) + len(c.Notes)
}

// Synthesizer draws compositions from an injected random source and renders
// them at a fixed sample rate. Not safe for concurrent use.
type Synthesizer struct {
	rng  *rand.Rand
	rate beep.SampleRate
}

// NewSynthesizer creates a synthesizer. A zero rate uses audio.DefaultSampleRate.
func NewSynthesizer(rng *rand.Rand, rate beep.SampleRate) *Synthesizer {
	if rate <= 0 {
		rate = audio.DefaultSampleRate
	}
	return &Synthesizer{rng: rng, rate: rate}
}

// Synthesize plans and renders one clip.
func (s *Synthesizer) Synthesize(sc scale.Scale, tempo Tempo) (audio.Segment, Composition) {
	c := s.Plan(sc, tempo)
	return s.Render(c), c
}

// Plan makes every random choice for a clip without rendering audio.
func (s *Synthesizer) Plan(sc scale.Scale, tempo Tempo) Composition {
	c := Composition{
		Scale: sc,
		Tempo: tempo,
		Seed:  s.pitch(sc),
	}

	numChords := MinChords + s.rng.IntN(MaxChords-MinChords+1)
	c.Chords = make([][chordSize]float64, numChords)
	for i := range c.Chords {
		for j := range c.Chords[i] {
			c.Chords[i][j] = s.pitch(sc)
		}
	}

	numNotes := MinNotes + s.rng.IntN(MaxNotes-MinNotes+1)
	c.Notes = make([]Note, numNotes)
	for i := range c.Notes {
		c.Notes[i] = Note{
			Pitch:  s.pitch(sc),
			Wave:   audio.Waveform(s.rng.IntN(2)),
			GainDB: (s.rng.Float64()*2 - 1) * maxGainDB,
		}
	}

	log.Printf("Composed %s clip in %s: %d chords, %d notes", tempo, sc.Name, numChords, numNotes)
	return c
}

// Render builds the composite and applies the tempo speed-up.
func (s *Synthesizer) Render(c Composition) audio.Segment {
	return s.arrange(c).SpeedUp(c.Tempo.Multiplier())
}

// arrange concatenates the seed, chords and notes at their nominal length.
func (s *Synthesizer) arrange(c Composition) audio.Segment {
	seg := audio.Tone(audio.Sine, c.Seed, NoteDuration, s.rate)

	for _, chord := range c.Chords {
		voices := make([]audio.Segment, len(chord))
		for i, p := range chord {
			voices[i] = audio.Tone(audio.Sine, p, NoteDuration, s.rate)
		}
		seg = seg.Append(audio.Mix(voices...))
	}

	for _, n := range c.Notes {
		seg = seg.Append(audio.Tone(n.Wave, n.Pitch, NoteDuration, s.rate).Gain(n.GainDB))
	}
	return seg
}

func (s *Synthesizer) pitch(sc scale.Scale) float64 {
	return sc.Pitches[s.rng.IntN(len(sc.Pitches))]
}
