package course

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// Slug returns the lowercase, dash-separated form of a display label,
// e.g. "Oil & Gas" -> "oil-gas".
func Slug(label string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(label) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	return b.String()
}

// parseOption resolves value against a closed domain. Both the display label
// (case-insensitive) and its slug are accepted.
func parseOption[T ~string](dimension, value string, all []T) (T, error) {
	v := strings.TrimSpace(value)
	for _, opt := range all {
		if strings.EqualFold(string(opt), v) || (v != "" && Slug(string(opt)) == Slug(v)) {
			return opt, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %q", ErrUnknownKey, dimension, value)
}

// checkOption rejects a typed value outside its domain. Typed enums can still
// be constructed from arbitrary strings, so evaluators check explicitly.
func checkOption[T ~string](dimension string, value T, all []T) error {
	if !slices.Contains(all, value) {
		return fmt.Errorf("%w: %s %q", ErrUnknownKey, dimension, string(value))
	}
	return nil
}

// labels converts a typed domain to its display labels.
func labels[T ~string](all []T) []string {
	out := make([]string, len(all))
	for i, v := range all {
		out[i] = string(v)
	}
	return out
}
