package model

import "github.com/securepass/securepass-go/internal/strength"

// EvaluateRequest carries the credential to analyze. It is never stored or logged.
type EvaluateRequest struct {
	Password string `json:"password"`
}

// EvaluateResponse is the full analysis of one credential.
type EvaluateResponse struct {
	Score          int               `json:"score"`
	Category       strength.Category `json:"category"`
	Suggestions    []string          `json:"suggestions"`
	Features       FeaturesResponse  `json:"features"`
	Predictability string            `json:"predictability"`
	Estimate       *EstimateResponse `json:"estimate,omitempty"`
}

// FeaturesResponse exposes the extracted feature record.
type FeaturesResponse struct {
	Length           int  `json:"length"`
	HasUpper         bool `json:"has_upper"`
	HasLower         bool `json:"has_lower"`
	HasDigit         bool `json:"has_digit"`
	HasSpecial       bool `json:"has_special"`
	HasCommonPattern bool `json:"has_common_pattern"`
	HasRepeatRun     bool `json:"has_repeat_run"`
	ClassCount       int  `json:"class_count"`
}

// EstimateResponse is the zxcvbn guess-count signal.
type EstimateResponse struct {
	EntropyBits  float64 `json:"entropy_bits"`
	GuessesLog10 float64 `json:"guesses_log10"`
	Band         int     `json:"band"`
	Label        string  `json:"label"`
	CrackTime    string  `json:"crack_time"`
}
