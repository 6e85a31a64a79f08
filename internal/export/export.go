// Package export writes segments to audio files and reads them back.
package export

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/faiface/beep/wav"
	"github.com/satindergrewal/tonecast/internal/audio"
)

// Format is an output container.
type Format string

const (
	WAV  Format = "wav"
	Opus Format = "opus"
)

// ErrUnknownContainer is returned by Load for files that are neither RIFF/WAVE
// nor Ogg.
var ErrUnknownContainer = errors.New("unrecognized audio container")

// ParseFormat accepts "wav" or "opus" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case WAV, Opus:
		return f, nil
	}
	return "", fmt.Errorf("unsupported format %q (want wav or opus)", s)
}

// Exporter writes a segment in a fixed format.
type Exporter struct {
	Format  Format
	Bitrate int // opus only, bits per second
}

// Export writes seg to path, replacing any existing file.
func (e Exporter) Export(path string, seg audio.Segment) error {
	var err error
	switch e.Format {
	case WAV, "":
		err = WriteWAV(path, seg)
	case Opus:
		err = WriteOpus(path, seg, e.Bitrate)
	default:
		return fmt.Errorf("unsupported format %q", e.Format)
	}
	if err != nil {
		return err
	}
	log.Printf("Exported %s (%s, %.2fs)", path, e.formatName(), seg.Duration().Seconds())
	return nil
}

func (e Exporter) formatName() Format {
	if e.Format == "" {
		return WAV
	}
	return e.Format
}

// WriteWAV encodes seg as 16-bit mono PCM WAV at the segment's rate.
func WriteWAV(path string, seg audio.Segment) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := wav.Encode(f, seg.Streamer(), seg.Format()); err != nil {
		f.Close()
		return fmt.Errorf("encode wav %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// Load decodes a WAV or Ogg Opus file into a segment.
func Load(path string) (audio.Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return audio.Segment{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	magic := make([]byte, 4)
	if _, err := io.ReadFull(f, magic); err != nil {
		return audio.Segment{}, fmt.Errorf("read header %s: %w", path, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return audio.Segment{}, fmt.Errorf("rewind %s: %w", path, err)
	}

	switch string(magic) {
	case "RIFF":
		return loadWAV(path, f)
	case "OggS":
		return loadOpus(path, f)
	}
	return audio.Segment{}, fmt.Errorf("%s: %w", path, ErrUnknownContainer)
}

func loadWAV(path string, r io.Reader) (audio.Segment, error) {
	st, format, err := wav.Decode(r)
	if err != nil {
		return audio.Segment{}, fmt.Errorf("decode wav %s: %w", path, err)
	}
	seg := audio.FromStreamer(format.SampleRate, st)
	if err := st.Err(); err != nil {
		return audio.Segment{}, fmt.Errorf("decode wav %s: %w", path, err)
	}
	return seg, nil
}
