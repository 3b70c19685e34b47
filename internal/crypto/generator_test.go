package crypto

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name: "all classes",
			req:  Request{Length: 16, Classes: AllClasses},
		},
		{
			name: "uppercase only",
			req:  Request{Length: 16, Classes: Uppercase},
		},
		{
			name: "digits and special",
			req:  Request{Length: 24, Classes: Digit | Special},
		},
		{
			name: "single character",
			req:  Request{Length: 1, Classes: Lowercase},
		},
		{
			name: "no upper bound",
			req:  Request{Length: 4096, Classes: AllClasses},
		},
		{
			name:    "no character classes",
			req:     Request{Length: 16},
			wantErr: ErrNoCharacterClassSelected,
		},
		{
			name:    "no classes takes precedence over length",
			req:     Request{Length: 0},
			wantErr: ErrNoCharacterClassSelected,
		},
		{
			name:    "zero length",
			req:     Request{Length: 0, Classes: AllClasses},
			wantErr: ErrInvalidLength,
		},
		{
			name:    "negative length",
			req:     Request{Length: -3, Classes: Digit},
			wantErr: ErrInvalidLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Generate(tt.req)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
				}
				if result != "" {
					t.Error("Generate() should return empty string on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if len(result) != tt.req.Length {
				t.Errorf("Generate() length = %d, want %d", len(result), tt.req.Length)
			}
		})
	}
}

func TestGenerateStaysInAlphabet(t *testing.T) {
	tests := []struct {
		name    string
		classes ClassSet
		charset string
	}{
		{"uppercase only", Uppercase, uppercaseChars},
		{"lowercase only", Lowercase, lowercaseChars},
		{"digits only", Digit, digitChars},
		{"special only", Special, specialChars},
		{"letters", Uppercase | Lowercase, uppercaseChars + lowercaseChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := Generate(Request{Length: 64, Classes: tt.classes})
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			for _, ch := range password {
				if !strings.ContainsRune(tt.charset, ch) {
					t.Errorf("password contains unexpected character %q (not in %q)", string(ch), tt.charset)
				}
			}
		})
	}
}

func TestGenerateCoversAllClassesAcrossSamples(t *testing.T) {
	req := Request{Length: 16, Classes: AllClasses}
	var sample strings.Builder

	for i := 0; i < 1000; i++ {
		password, err := Generate(req)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if len(password) != req.Length {
			t.Fatalf("Generate() length = %d, want %d", len(password), req.Length)
		}
		sample.WriteString(password)
	}

	all := sample.String()
	for name, charset := range map[string]string{
		"uppercase": uppercaseChars,
		"lowercase": lowercaseChars,
		"digit":     digitChars,
		"special":   specialChars,
	} {
		if !strings.ContainsAny(all, charset) {
			t.Errorf("no %s character across 1000 samples", name)
		}
	}
}

func TestGenerateProducesUniquePasswords(t *testing.T) {
	req := Request{Length: 16, Classes: AllClasses}
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password, err := Generate(req)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if seen[password] {
			t.Errorf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}

type failingReader struct{}

var errSourceDown = errors.New("entropy source unavailable")

func (failingReader) Read([]byte) (int, error) { return 0, errSourceDown }

func TestGenerateFromReaderFailure(t *testing.T) {
	_, err := GenerateFrom(failingReader{}, Request{Length: 8, Classes: AllClasses})
	if !errors.Is(err, errSourceDown) {
		t.Errorf("GenerateFrom() error = %v, want wrapped %v", err, errSourceDown)
	}
}

func TestAlphabet(t *testing.T) {
	tests := []struct {
		classes ClassSet
		want    string
	}{
		{0, ""},
		{Special | Uppercase, uppercaseChars + specialChars},
		{Digit | Lowercase, lowercaseChars + digitChars},
		{AllClasses, uppercaseChars + lowercaseChars + digitChars + specialChars},
	}

	for _, tt := range tests {
		if got := Alphabet(tt.classes); got != tt.want {
			t.Errorf("Alphabet(%04b) = %q, want %q", tt.classes, got, tt.want)
		}
	}
}
