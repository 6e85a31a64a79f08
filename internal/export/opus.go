package export

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/pion/rtp"
	"github.com/pion/webrtc/v4/pkg/media/oggwriter"
	"github.com/satindergrewal/tonecast/internal/audio"
	"gopkg.in/hraban/opus.v2"
)

const (
	OpusSampleRate     = 48000
	OpusFrameSize      = 960 // samples per 20ms frame
	DefaultOpusBitrate = 64000

	opusPayloadType = 111
	maxOpusPacket   = 4000
)

// WriteOpus resamples seg to 48kHz, encodes it in 20ms Opus frames and
// stores the packets in an Ogg container.
func WriteOpus(path string, seg audio.Segment, bitrate int) error {
	if bitrate <= 0 {
		bitrate = DefaultOpusBitrate
	}

	enc, err := opus.NewEncoder(OpusSampleRate, audio.Channels, opus.AppAudio)
	if err != nil {
		return fmt.Errorf("opus encoder: %w", err)
	}
	if err := enc.SetBitrate(bitrate); err != nil {
		return fmt.Errorf("opus bitrate %d: %w", bitrate, err)
	}

	w, err := oggwriter.New(path, OpusSampleRate, audio.Channels)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	pcm := seg.Resample(OpusSampleRate).Int16()
	frame := make([]int16, OpusFrameSize*audio.Channels)
	buf := make([]byte, maxOpusPacket)

	pkt := &rtp.Packet{
		Header: rtp.Header{
			Version:     2,
			PayloadType: opusPayloadType,
			SSRC:        rand.Uint32(),
		},
	}

	for off := 0; off < len(pcm); off += len(frame) {
		n := copy(frame, pcm[off:])
		clear(frame[n:])

		size, err := enc.Encode(frame, buf)
		if err != nil {
			w.Close()
			return fmt.Errorf("opus encode frame %d: %w", pkt.SequenceNumber, err)
		}
		pkt.Payload = buf[:size]
		if err := w.WriteRTP(pkt); err != nil {
			w.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		pkt.SequenceNumber++
		pkt.Timestamp += OpusFrameSize
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func loadOpus(path string, r io.Reader) (audio.Segment, error) {
	s, err := opus.NewStream(r)
	if err != nil {
		return audio.Segment{}, fmt.Errorf("decode opus %s: %w", path, err)
	}
	defer s.Close()

	var pcm []int16
	buf := make([]int16, OpusFrameSize*audio.Channels*6)
	for {
		n, err := s.Read(buf)
		pcm = append(pcm, buf[:n*audio.Channels]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return audio.Segment{}, fmt.Errorf("decode opus %s: %w", path, err)
		}
	}
	return audio.FromInt16(OpusSampleRate, pcm), nil
}
