package service

import (
	"errors"
	"fmt"

	"github.com/securepass/securepass-go/internal/crypto"
	"github.com/securepass/securepass-go/internal/model"
)

var (
	ErrLengthTooShort = errors.New("password length is below the allowed minimum")
	ErrLengthTooLong  = errors.New("password length is above the allowed maximum")
)

// LengthRange bounds generated password lengths. The generator itself accepts
// any positive length; the range is enforced here.
type LengthRange struct {
	Min     int
	Max     int
	Default int
}

// DefaultLengthRange matches the 8–24 slider of the interactive generator.
func DefaultLengthRange() LengthRange {
	return LengthRange{Min: 8, Max: 24, Default: 16}
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	lengths LengthRange
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(lengths LengthRange) *GeneratorService {
	return &GeneratorService{lengths: lengths}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	var classes crypto.ClassSet
	if boolOrDefault(req.Uppercase, true) {
		classes |= crypto.Uppercase
	}
	if boolOrDefault(req.Lowercase, true) {
		classes |= crypto.Lowercase
	}
	if boolOrDefault(req.Digits, true) {
		classes |= crypto.Digit
	}
	if boolOrDefault(req.Special, true) {
		classes |= crypto.Special
	}
	// Same precedence as crypto.Generate: an empty class set wins over length.
	if classes == 0 {
		return model.GenerateResponse{}, crypto.ErrNoCharacterClassSelected
	}

	length := req.Length
	if length == 0 {
		length = s.lengths.Default
	}
	if length < s.lengths.Min {
		return model.GenerateResponse{}, fmt.Errorf("%w (%d)", ErrLengthTooShort, s.lengths.Min)
	}
	if length > s.lengths.Max {
		return model.GenerateResponse{}, fmt.Errorf("%w (%d)", ErrLengthTooLong, s.lengths.Max)
	}

	password, err := crypto.Generate(crypto.Request{Length: length, Classes: classes})
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
