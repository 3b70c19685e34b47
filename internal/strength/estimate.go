package strength

import (
	"math"

	zxcvbn "github.com/ccojocar/zxcvbn-go"
)

// maxEstimatedLen bounds the input handed to zxcvbn, whose matching cost
// grows quickly with length.
const maxEstimatedLen = 50

var bandLabels = [...]string{"Very Weak", "Weak", "Fair", "Strong", "Very Strong"}

// Estimate is a population-based guess-count signal. It is reported next to
// the heuristic Result and never feeds into Score.
type Estimate struct {
	EntropyBits  float64
	GuessesLog10 float64
	// Band is the zxcvbn score:
	// 0 guesses < 10^3, 1 < 10^6, 2 < 10^8, 3 < 10^10, 4 otherwise.
	Band      int
	Label     string
	CrackTime string
}

// EstimateGuesses runs zxcvbn over the first maxEstimatedLen characters of
// password. The empty string yields band 0 without consulting the estimator.
func EstimateGuesses(password string) Estimate {
	if password == "" {
		return Estimate{Label: bandLabels[0], CrackTime: "instant"}
	}
	if runeLen(password) > maxEstimatedLen {
		password = string([]rune(password)[:maxEstimatedLen])
	}

	match := zxcvbn.PasswordStrength(password, nil)
	band := min(max(match.Score, 0), len(bandLabels)-1)

	return Estimate{
		EntropyBits:  match.Entropy,
		GuessesLog10: match.Entropy * math.Log10(2),
		Band:         band,
		Label:        bandLabels[band],
		CrackTime:    match.CrackTimeDisplay,
	}
}
