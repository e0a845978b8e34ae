package exercise

import "strings"

// CheckAnswer reports whether a learner's answer matches the correct
// one. Both sides are trimmed and lower-cased before an exact equality
// check; there is no partial credit or fuzzy matching at this layer.
func CheckAnswer(given, correct string) bool {
	return normalizeAnswer(given) == normalizeAnswer(correct)
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
