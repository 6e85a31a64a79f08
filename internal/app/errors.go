package app

import "errors"

var (
	// ErrInvalidAge means the age was not a non-negative integer.
	ErrInvalidAge = errors.New("invalid age")

	// ErrExport means the clip could not be written to disk.
	ErrExport = errors.New("export failed")

	// ErrPlayback means the written clip could not be played.
	ErrPlayback = errors.New("playback failed")
)
