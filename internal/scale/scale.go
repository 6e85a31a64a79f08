// Package scale holds the fixed personality-type to musical-scale table.
package scale

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Scale is an ordered set of seven pitches in Hz.
type Scale struct {
	Name    string
	Pitches [7]float64
}

var (
	CMajor = Scale{Name: "C major", Pitches: [7]float64{261.63, 293.66, 329.63, 349.23, 392.00, 440.00, 493.88}} // C4..B4
	EMajor = Scale{Name: "E major", Pitches: [7]float64{329.63, 392.00, 440.00, 493.88, 554.37, 587.33, 659.25}}
	GMajor = Scale{Name: "G major", Pitches: [7]float64{392.00, 440.00, 493.88, 523.25, 587.33, 659.25, 698.46}}
	AMajor = Scale{Name: "A major", Pitches: [7]float64{440.00, 493.88, 554.37, 587.33, 659.25, 698.46, 783.99}}
)

// Default is used for any label not in the table.
var Default = CMajor

// byLabel maps each MBTI code to its scale. Read-only after init.
var byLabel = map[string]Scale{
	"INTJ": CMajor,
	"INTP": CMajor,
	"ENTJ": GMajor,
	"ENTP": GMajor,
	"INFJ": EMajor,
	"INFP": EMajor,
	"ENFJ": AMajor,
	"ENFP": AMajor,
	"ISTJ": CMajor,
	"ISFJ": CMajor,
	"ESTJ": GMajor,
	"ESFJ": GMajor,
	"ISTP": EMajor,
	"ISFP": EMajor,
	"ESTP": AMajor,
	"ESFP": AMajor,
}

// For returns the scale for label, or Default when the label is unknown.
func For(label string) Scale {
	s, _ := Lookup(label)
	return s
}

// Lookup matches label case-insensitively and reports whether it was known.
// Unknown labels still return Default.
func Lookup(label string) (Scale, bool) {
	key := cases.Upper(language.Und).String(strings.TrimSpace(label))
	if s, ok := byLabel[key]; ok {
		return s, true
	}
	return Default, false
}

// Labels returns the known labels in sorted order.
func Labels() []string {
	names := make([]string, 0, len(byLabel))
	for name := range byLabel {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

