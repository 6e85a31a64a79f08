package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/faiface/beep"
	"github.com/joho/godotenv"

	"github.com/satindergrewal/tonecast/internal/app"
	"github.com/satindergrewal/tonecast/internal/compose"
	"github.com/satindergrewal/tonecast/internal/config"
	"github.com/satindergrewal/tonecast/internal/export"
	"github.com/satindergrewal/tonecast/internal/player"
	"github.com/satindergrewal/tonecast/internal/scale"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Ignoring .env: %v", err)
	}
	cfg := config.Load()

	format, err := export.ParseFormat(cfg.Format)
	if err != nil {
		log.Fatalf("Config: %v", err)
	}

	label, ageText, err := prompt()
	if err != nil {
		log.Fatalf("Input: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Printf("Seed %d (set TONECAST_SEED to repeat this run)", seed)

	synth := compose.NewSynthesizer(rand.New(rand.NewPCG(seed, seed)), beep.SampleRate(cfg.SampleRate))
	exporter := export.Exporter{Format: format, Bitrate: cfg.OpusBitrate}
	runner := app.NewRunner(synth, exporter, player.New(), os.Stdout, cfg.OutputPath)

	if _, err := runner.RunInput(label, ageText); err != nil {
		log.Fatalf("Run failed: %v", err)
	}
}

// prompt asks for the personality type and the age.
func prompt() (label, age string, err error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "Enter MBTI type (e.g., INTJ, ENFP): ",
		AutoComplete: readline.NewPrefixCompleter(
			labelItems()...,
		),
	})
	if err != nil {
		return "", "", fmt.Errorf("init readline: %w", err)
	}
	defer rl.Close()

	label, err = readLine(rl)
	if err != nil {
		return "", "", err
	}

	rl.SetPrompt("Enter age: ")
	age, err = readLine(rl)
	if err != nil {
		return "", "", err
	}
	return strings.TrimSpace(label), age, nil
}

func readLine(rl *readline.Instance) (string, error) {
	line, err := rl.Readline()
	if err == readline.ErrInterrupt || err == io.EOF {
		return "", errors.New("input cancelled")
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return line, nil
}

func labelItems() []readline.PrefixCompleterInterface {
	labels := scale.Labels()
	items := make([]readline.PrefixCompleterInterface, len(labels))
	for i, l := range labels {
		items[i] = readline.PcItem(l)
	}
	return items
}
