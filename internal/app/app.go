// Package app drives one generation run: scale, tempo, synthesis, echo,
// export and playback.
package app

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/satindergrewal/tonecast/internal/audio"
	"github.com/satindergrewal/tonecast/internal/compose"
	"github.com/satindergrewal/tonecast/internal/scale"
)

// DefaultOutput is the file written when no path is configured.
const DefaultOutput = "generated_music.wav"

// Exporter writes a finished clip to a file.
type Exporter interface {
	Export(path string, seg audio.Segment) error
}

// Player plays a file and returns when it is done.
type Player interface {
	Play(path string) error
}

// Result describes a completed run.
type Result struct {
	RunID       string
	Scale       scale.Scale
	KnownLabel  bool
	Tempo       compose.Tempo
	Composition compose.Composition
	Path        string
	Duration    time.Duration
}

// Runner wires the stages together. Not safe for concurrent use.
type Runner struct {
	synth    *compose.Synthesizer
	exporter Exporter
	player   Player
	out      io.Writer
	path     string
}

// NewRunner creates a runner writing to path (DefaultOutput if empty) and
// printing its confirmation line to out.
func NewRunner(synth *compose.Synthesizer, exporter Exporter, player Player, out io.Writer, path string) *Runner {
	if path == "" {
		path = DefaultOutput
	}
	return &Runner{
		synth:    synth,
		exporter: exporter,
		player:   player,
		out:      out,
		path:     path,
	}
}

// ParseAge reads an age typed by the user.
func ParseAge(s string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAge, s)
	}
	if age < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrInvalidAge, age)
	}
	return age, nil
}

// RunInput parses the typed age and runs. An unparsable age aborts before
// anything is synthesized or written.
func (r *Runner) RunInput(label, ageText string) (Result, error) {
	age, err := ParseAge(ageText)
	if err != nil {
		return Result{}, err
	}
	return r.Run(label, age)
}

// Run generates, saves and plays one clip. Failures are returned as is with
// their kind attached; nothing is retried or cleaned up.
func (r *Runner) Run(label string, age int) (Result, error) {
	if age < 0 {
		return Result{}, fmt.Errorf("%w: %d is negative", ErrInvalidAge, age)
	}

	res := Result{RunID: uuid.NewString(), Path: r.path}

	res.Scale, res.KnownLabel = scale.Lookup(label)
	if !res.KnownLabel {
		log.Printf("Unknown type %q, using %s", label, res.Scale.Name)
	}
	res.Tempo = compose.TempoForAge(age)
	log.Printf("Run %s: type=%q scale=%s tempo=%s (x%.2f)", res.RunID, label, res.Scale.Name, res.Tempo, res.Tempo.Multiplier())

	seg, comp := r.synth.Synthesize(res.Scale, res.Tempo)
	res.Composition = comp

	seg = audio.Echo(seg, audio.DefaultEchoDelay, audio.DefaultEchoDecay)
	res.Duration = seg.Duration()

	if err := r.exporter.Export(r.path, seg); err != nil {
		return res, fmt.Errorf("%w: %w", ErrExport, err)
	}
	fmt.Fprintf(r.out, "Music generated and saved as %s\n", r.path)

	if err := r.player.Play(r.path); err != nil {
		return res, fmt.Errorf("%w: %w", ErrPlayback, err)
	}
	return res, nil
}
