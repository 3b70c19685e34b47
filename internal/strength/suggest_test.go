package strength

import (
	"slices"
	"testing"
)

func TestSuggest(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     []string
	}{
		{
			name:     "empty",
			password: "",
			want:     []string{SuggestLength, SuggestUpper, SuggestLower, SuggestDigit, SuggestSpecial},
		},
		{
			name:     "common pattern only",
			password: "Password123!",
			want:     []string{SuggestCommonPattern},
		},
		{
			name:     "repeat run only",
			password: "aaaAAA111!!!",
			want:     []string{SuggestRepeatRun},
		},
		{
			name:     "length and passphrase fire together",
			password: "Xy7!Kq9#Lm",
			want:     []string{SuggestLength, SuggestPassphrase},
		},
		{
			name:     "short length gets no passphrase hint",
			password: "Xy7!",
			want:     []string{SuggestLength},
		},
		{
			name:     "passes every rule",
			password: "Tr0ub4dor&Zebr@Kite",
			want:     []string{SuggestLooksStrong},
		},
		{
			name:     "lowercase digits",
			password: "kite4horse7lamp",
			want:     []string{SuggestUpper, SuggestSpecial},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(Extract(tt.password))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Suggest(%q) = %q, want %q", tt.password, got, tt.want)
			}
		})
	}
}

func TestSuggestSentinelExclusive(t *testing.T) {
	for length := 0; length <= 16; length++ {
		for mask := 0; mask < 1<<6; mask++ {
			f := Features{
				Length:           length,
				HasUpper:         mask&1 != 0,
				HasLower:         mask&2 != 0,
				HasDigit:         mask&4 != 0,
				HasSpecial:       mask&8 != 0,
				HasCommonPattern: mask&16 != 0,
				HasRepeatRun:     mask&32 != 0,
			}
			got := Suggest(f)
			if len(got) == 0 {
				t.Fatalf("Suggest(%+v) returned no messages", f)
			}

			clean := length >= 12 && f.ClassCount() == 4 && !f.HasCommonPattern && !f.HasRepeatRun
			hasSentinel := slices.Contains(got, SuggestLooksStrong)
			if hasSentinel != clean {
				t.Fatalf("Suggest(%+v) = %q, sentinel present = %v, want %v", f, got, hasSentinel, clean)
			}
			if hasSentinel && len(got) != 1 {
				t.Fatalf("Suggest(%+v) = %q, sentinel must stand alone", f, got)
			}
		}
	}
}
