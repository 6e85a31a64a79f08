package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Clear any env vars that might interfere
	envVars := []string{
		"TONECAST_OUTPUT", "TONECAST_FORMAT", "TONECAST_OPUS_BITRATE",
		"TONECAST_SAMPLE_RATE", "TONECAST_SEED",
	}
	for _, k := range envVars {
		os.Unsetenv(k)
	}

	cfg := Load()

	if cfg.OutputPath != "generated_music.wav" {
		t.Errorf("OutputPath = %q, want 'generated_music.wav'", cfg.OutputPath)
	}
	if cfg.Format != "wav" {
		t.Errorf("Format = %q, want 'wav'", cfg.Format)
	}
	if cfg.OpusBitrate != 64000 {
		t.Errorf("OpusBitrate = %d, want 64000", cfg.OpusBitrate)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", cfg.SampleRate)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TONECAST_OUTPUT", "/tmp/out.opus")
	t.Setenv("TONECAST_FORMAT", "opus")
	t.Setenv("TONECAST_OPUS_BITRATE", "96000")
	t.Setenv("TONECAST_SAMPLE_RATE", "48000")
	t.Setenv("TONECAST_SEED", "18446744073709551615")

	cfg := Load()

	if cfg.OutputPath != "/tmp/out.opus" {
		t.Errorf("OutputPath = %q, want env override", cfg.OutputPath)
	}
	if cfg.Format != "opus" {
		t.Errorf("Format = %q, want 'opus'", cfg.Format)
	}
	if cfg.OpusBitrate != 96000 {
		t.Errorf("OpusBitrate = %d, want 96000", cfg.OpusBitrate)
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("SampleRate = %d, want 48000", cfg.SampleRate)
	}
	if cfg.Seed != 18446744073709551615 {
		t.Errorf("Seed = %d, want max uint64", cfg.Seed)
	}
}

func TestEnvIntInvalidFallsBack(t *testing.T) {
	t.Setenv("TONECAST_SAMPLE_RATE", "not-a-number")
	cfg := Load()
	if cfg.SampleRate != 44100 {
		t.Errorf("Invalid int env should fallback to default: got %d, want 44100", cfg.SampleRate)
	}
}

func TestEnvUint64RejectsNegative(t *testing.T) {
	t.Setenv("TONECAST_SEED", "-5")
	cfg := Load()
	if cfg.Seed != 0 {
		t.Errorf("Negative seed should fallback to default: got %d, want 0", cfg.Seed)
	}
}

func TestEnvStrEmpty(t *testing.T) {
	// Empty string should use fallback
	t.Setenv("TONECAST_OUTPUT", "")
	cfg := Load()
	if cfg.OutputPath != "generated_music.wav" {
		t.Errorf("Empty env should use fallback: got %q", cfg.OutputPath)
	}
}
