package strength

// Remediation messages, in the order Suggest emits them.
const (
	SuggestLength        = "increase length to at least 12 characters."
	SuggestUpper         = "add uppercase letters."
	SuggestLower         = "add lowercase letters."
	SuggestDigit         = "include numbers."
	SuggestSpecial       = "add special characters."
	SuggestCommonPattern = "avoid common patterns and dictionary words."
	SuggestRepeatRun     = "reduce repeating characters."
	SuggestPassphrase    = "consider a passphrase instead of random characters."
	SuggestLooksStrong   = "password looks strong; consider a password manager."
)

const recommendedLength = 12

// Suggest returns remediation messages for f in a fixed checklist order.
// The result is never empty: if no rule fires it holds only SuggestLooksStrong.
func Suggest(f Features) []string {
	var out []string

	if f.Length < recommendedLength {
		out = append(out, SuggestLength)
	}
	if !f.HasUpper {
		out = append(out, SuggestUpper)
	}
	if !f.HasLower {
		out = append(out, SuggestLower)
	}
	if !f.HasDigit {
		out = append(out, SuggestDigit)
	}
	if !f.HasSpecial {
		out = append(out, SuggestSpecial)
	}
	if f.HasCommonPattern {
		out = append(out, SuggestCommonPattern)
	}
	if f.HasRepeatRun {
		out = append(out, SuggestRepeatRun)
	}
	// Fires alongside the length rule.
	if f.Length >= shortLength && f.Length < recommendedLength {
		out = append(out, SuggestPassphrase)
	}

	if len(out) == 0 {
		out = append(out, SuggestLooksStrong)
	}
	return out
}
