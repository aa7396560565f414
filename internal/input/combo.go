package input

// ValidateCombo reports whether every button of required is held.
// Supersets pass; callers needing an exact match additionally compare
// held == required.
func ValidateCombo(held, required uint32) bool {
	return held&required == required
}
