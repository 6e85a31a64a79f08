package compose

// Tempo is the age-derived speed bucket.
type Tempo int

const (
	Fast Tempo = iota
	Moderate
	Slow
)

// TempoForAge buckets an age: under 20 is Fast, under 40 Moderate, else Slow.
func TempoForAge(age int) Tempo {
	switch {
	case age < 20:
		return Fast
	case age < 40:
		return Moderate
	default:
		return Slow
	}
}

// BPM returns the nominal tempo value of the bucket.
func (t Tempo) BPM() int {
	switch t {
	case Fast:
		return 220
	case Moderate:
		return 180
	default:
		return 140
	}
}

// Multiplier is the playback speed applied to the composite, BPM/100.
func (t Tempo) Multiplier() float64 {
	return float64(t.BPM()) / 100
}

func (t Tempo) String() string {
	switch t {
	case Fast:
		return "fast"
	case Moderate:
		return "moderate"
	case Slow:
		return "slow"
	}
	return "unknown"
}
