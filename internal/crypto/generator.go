package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	specialChars   = "!@#$%^&*()_+-="
)

var (
	ErrNoCharacterClassSelected = errors.New("at least one character class must be selected")
	ErrInvalidLength            = errors.New("password length must be at least 1")
)

// ClassSet is a set of character classes usable in generation.
type ClassSet uint8

const (
	Uppercase ClassSet = 1 << iota
	Lowercase
	Digit
	Special

	AllClasses = Uppercase | Lowercase | Digit | Special
)

// classOrder fixes the order in which class alphabets are concatenated.
var classOrder = []struct {
	class ClassSet
	chars string
}{
	{Uppercase, uppercaseChars},
	{Lowercase, lowercaseChars},
	{Digit, digitChars},
	{Special, specialChars},
}

// Has reports whether every class in c is present in s.
func (s ClassSet) Has(c ClassSet) bool {
	return s&c == c
}

// Request configures a single generation.
type Request struct {
	Length  int
	Classes ClassSet
}

// Alphabet returns the characters drawn from for the given classes.
func Alphabet(classes ClassSet) string {
	var sb strings.Builder
	for _, c := range classOrder {
		if classes.Has(c.class) {
			sb.WriteString(c.chars)
		}
	}
	return sb.String()
}

// Generate creates a cryptographically secure random password using crypto/rand.
//
// Each character is drawn independently and uniformly from the union of the
// selected classes, so a given output may contain no character from some
// selected class.
func Generate(req Request) (string, error) {
	return GenerateFrom(rand.Reader, req)
}

// GenerateFrom is Generate with an explicit random source, which must be a
// CSPRNG safe for concurrent use if shared.
func GenerateFrom(src io.Reader, req Request) (string, error) {
	pool := Alphabet(req.Classes)
	if pool == "" {
		return "", ErrNoCharacterClassSelected
	}
	if req.Length < 1 {
		return "", ErrInvalidLength
	}

	result := make([]byte, req.Length)
	for i := range result {
		ch, err := randChar(src, pool)
		if err != nil {
			return "", fmt.Errorf("reading random source: %w", err)
		}
		result[i] = ch
	}

	return string(result), nil
}

// randChar picks a uniformly random byte from charset.
func randChar(src io.Reader, charset string) (byte, error) {
	n, err := rand.Int(src, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}
