package schema

import (
	"strings"
	"unicode"
)

// cleanParts cleans a slice of name parts by trimming non-alphanumeric punctuation from ends,
// and additionally trims trailing periods for looser handling.
func cleanParts(parts []string) []string {
	var cleaned []string
	for _, p := range parts {
		cp := strings.TrimFunc(p, func(r rune) bool {
			if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || r == '\'' || r == '.' {
				return false
			}
			return true
		})
		cp = strings.TrimSuffix(cp, ".")
		if cp != "" {
			cleaned = append(cleaned, cp)
		}
	}
	return cleaned
}

// getInitial extracts the initial from a name part, using the first rune for Unicode safety.
func getInitial(part string) string {
	rr := []rune(part)
	if len(rr) > 0 {
		return string(rr[0])
	}
	return ""
}

// nameSuffixes are generational suffixes kept with the surname.
var nameSuffixes = map[string]struct{}{
	"Jr": {}, "Sr": {}, "II": {}, "III": {}, "IV": {},
}

// AbbreviateName formats "Aaron Judge" to "A. Judge" for narrow name columns.
// Generational suffixes stay attached ("Vladimir Guerrero Jr." -> "V. Guerrero Jr").
// Single-word names are returned unchanged.
func AbbreviateName(name string) string {
	trimmedName := strings.TrimSpace(name)
	trimmedName = strings.Trim(trimmedName, "()\"'`")

	cleaned := cleanParts(strings.Fields(trimmedName))
	if len(cleaned) < 2 {
		if len(cleaned) == 1 {
			return cleaned[0]
		}
		return trimmedName
	}

	lastIdx := len(cleaned) - 1
	suffix := ""
	if _, ok := nameSuffixes[cleaned[lastIdx]]; ok && lastIdx > 1 {
		suffix = " " + cleaned[lastIdx]
		lastIdx--
	}
	initial := getInitial(cleaned[0])
	return initial + ". " + strings.Join(cleaned[1:lastIdx+1], " ") + suffix
}

// FitName returns the display name, abbreviated when it is wider than maxWidth.
func FitName(name string, maxWidth int) string {
	if maxWidth <= 0 || len([]rune(name)) <= maxWidth {
		return name
	}
	short := AbbreviateName(name)
	runes := []rune(short)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return short
}
