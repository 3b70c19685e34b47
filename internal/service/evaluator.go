package service

import (
	"github.com/securepass/securepass-go/internal/model"
	"github.com/securepass/securepass-go/internal/strength"
)

// EvaluatorService runs the strength engine over a single credential.
// It holds no state between calls.
type EvaluatorService struct {
	estimate bool
}

// NewEvaluatorService creates a new EvaluatorService. When withEstimate is
// set, responses also carry the zxcvbn guess-count estimate.
func NewEvaluatorService(withEstimate bool) *EvaluatorService {
	return &EvaluatorService{estimate: withEstimate}
}

// Evaluate extracts features once and fans them into the scorer and the
// suggestion engine.
func (s *EvaluatorService) Evaluate(req model.EvaluateRequest) model.EvaluateResponse {
	f := strength.Extract(req.Password)
	result := strength.Score(f)

	resp := model.EvaluateResponse{
		Score:          result.Score,
		Category:       result.Category,
		Suggestions:    strength.Suggest(f),
		Features:       featuresToResponse(f),
		Predictability: predictability(f),
	}

	if s.estimate {
		e := strength.EstimateGuesses(req.Password)
		resp.Estimate = &model.EstimateResponse{
			EntropyBits:  e.EntropyBits,
			GuessesLog10: e.GuessesLog10,
			Band:         e.Band,
			Label:        e.Label,
			CrackTime:    e.CrackTime,
		}
	}

	return resp
}

func featuresToResponse(f strength.Features) model.FeaturesResponse {
	return model.FeaturesResponse{
		Length:           f.Length,
		HasUpper:         f.HasUpper,
		HasLower:         f.HasLower,
		HasDigit:         f.HasDigit,
		HasSpecial:       f.HasSpecial,
		HasCommonPattern: f.HasCommonPattern,
		HasRepeatRun:     f.HasRepeatRun,
		ClassCount:       f.ClassCount(),
	}
}

func predictability(f strength.Features) string {
	if f.HasCommonPattern {
		return "High"
	}
	return "Low"
}
