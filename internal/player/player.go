// Package player plays exported audio files on the system output device.
package player

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/oto/v2"
	"github.com/satindergrewal/tonecast/internal/audio"
	"github.com/satindergrewal/tonecast/internal/export"
)

// PollInterval is how often Play checks whether the device is still busy.
const PollInterval = 100 * time.Millisecond

// Voice is a single playing stream on a device.
type Voice interface {
	Play()
	IsPlaying() bool
	Err() error
	Close() error
}

// Device produces voices for 16-bit little-endian PCM readers.
type Device interface {
	NewVoice(r io.Reader) Voice
}

// OpenFunc acquires an output device for the given format.
type OpenFunc func(sampleRate, channels int) (Device, error)

// Player loads files and plays them to completion. The device is opened on
// first use and kept for the life of the process.
type Player struct {
	open     OpenFunc
	interval time.Duration

	device     Device
	deviceRate int
}

// New creates a player backed by the system audio device.
func New() *Player {
	return NewWithDevice(OpenOto, PollInterval)
}

// NewWithDevice creates a player with a custom device and poll interval.
func NewWithDevice(open OpenFunc, interval time.Duration) *Player {
	if interval <= 0 {
		interval = PollInterval
	}
	return &Player{open: open, interval: interval}
}

// Play decodes the file at path and blocks until playback finishes.
func (p *Player) Play(path string) error {
	seg, err := export.Load(path)
	if err != nil {
		return err
	}

	dev, err := p.acquire(int(seg.Rate))
	if err != nil {
		return err
	}

	pcm := audio.SamplesToBytes(seg.Int16())
	v := dev.NewVoice(bytes.NewReader(pcm))
	defer v.Close()

	log.Printf("Playing %s (%.2fs)", path, seg.Duration().Seconds())
	v.Play()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for v.IsPlaying() {
		<-ticker.C
	}

	if err := v.Err(); err != nil {
		return fmt.Errorf("playback %s: %w", path, err)
	}
	return nil
}

func (p *Player) acquire(rate int) (Device, error) {
	if p.device != nil {
		if rate != p.deviceRate {
			return nil, fmt.Errorf("audio device already open at %d Hz, file is %d Hz", p.deviceRate, rate)
		}
		return p.device, nil
	}
	dev, err := p.open(rate, audio.Channels)
	if err != nil {
		return nil, err
	}
	p.device = dev
	p.deviceRate = rate
	return dev, nil
}

// OpenOto opens the system output through oto. Only one oto context can
// exist per process.
func OpenOto(sampleRate, channels int) (Device, error) {
	ctx, ready, err := oto.NewContext(sampleRate, channels, oto.FormatSignedInt16LE)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready
	return otoDevice{ctx: ctx}, nil
}

type otoDevice struct {
	ctx *oto.Context
}

func (d otoDevice) NewVoice(r io.Reader) Voice {
	return d.ctx.NewPlayer(r)
}
