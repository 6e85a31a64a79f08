package config

import (
	"os"
	"strconv"
)

// Config holds all runtime configuration, loaded from environment variables.
type Config struct {
	// Output
	OutputPath  string // file written on every run, overwritten if present
	Format      string // wav or opus
	OpusBitrate int    // bits per second, opus only

	// Synthesis
	SampleRate int    // Hz
	Seed       uint64 // 0 picks a fresh seed per run
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	return Config{
		OutputPath:  envStr("TONECAST_OUTPUT", "generated_music.wav"),
		Format:      envStr("TONECAST_FORMAT", "wav"),
		OpusBitrate: envInt("TONECAST_OPUS_BITRATE", 64000),

		SampleRate: envInt("TONECAST_SAMPLE_RATE", 44100),
		Seed:       envUint64("TONECAST_SEED", 0),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envUint64(key string, fallback uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
