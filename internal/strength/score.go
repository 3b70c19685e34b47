package strength

import "fmt"

// Category is a coarse ordinal classification of a score.
type Category int

const (
	Weak Category = iota
	Moderate
	Strong
)

const (
	maxScore = 100

	moderateThreshold = 40
	strongThreshold   = 75

	lengthPointsPerChar  = 2
	lengthPointsCap      = 20
	classPoints          = 5
	commonPatternPenalty = 15
	repeatRunPenalty     = 10
	shortLengthPenalty   = 20
	shortLength          = 8
)

func (c Category) String() string {
	switch c {
	case Weak:
		return "Weak"
	case Moderate:
		return "Moderate"
	case Strong:
		return "Strong"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// MarshalText encodes the category by name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Result is the outcome of scoring a feature record.
type Result struct {
	Score    int
	Category Category
}

// Score applies the fixed heuristic weights to f. It is not an entropy model
// and makes no cryptographic guarantee.
func Score(f Features) Result {
	score := min(f.Length*lengthPointsPerChar, lengthPointsCap)
	score += classPoints * f.ClassCount()

	if f.HasCommonPattern {
		score -= commonPatternPenalty
	}
	if f.HasRepeatRun {
		score -= repeatRunPenalty
	}
	if f.Length < shortLength {
		score -= shortLengthPenalty
	}

	score = max(0, min(score, maxScore))
	return Result{Score: score, Category: Classify(score)}
}

// Classify maps a clamped score to its category. 40 is Moderate, 75 is Strong.
func Classify(score int) Category {
	switch {
	case score < moderateThreshold:
		return Weak
	case score < strongThreshold:
		return Moderate
	default:
		return Strong
	}
}
