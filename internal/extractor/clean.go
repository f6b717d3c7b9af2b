package extractor

import (
	"regexp"
	"strings"
	"unicode"
)

var spaceRun = regexp.MustCompile(`[ \t]+`)

// CleanText repairs common PDF extraction artifacts while preserving
// line structure (heading detection downstream works on lines).
func CleanText(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = fixDoubledWords(line)
		line = spaceRun.ReplaceAllString(line, " ")
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// fixDoubledWords collapses words where every character is doubled, an
// artifact of overlapping glyph runs in some textbook PDFs
// ("PPeeooppllee aass RReessoouurrccee" extracts that way).
func fixDoubledWords(line string) string {
	words := strings.Fields(line)
	changed := false
	for i, w := range words {
		if fixed, ok := undouble(w); ok {
			words[i] = fixed
			changed = true
		}
	}
	if !changed {
		return line
	}
	return strings.Join(words, " ")
}

func undouble(word string) (string, bool) {
	runes := []rune(word)
	if len(runes) < 4 || len(runes)%2 != 0 {
		return word, false
	}
	out := make([]rune, 0, len(runes)/2)
	for i := 0; i < len(runes); i += 2 {
		a, b := runes[i], runes[i+1]
		if a != b || !unicode.IsLetter(a) {
			return word, false
		}
		out = append(out, a)
	}
	// "aabb" style only counts when the halved word still has a vowel,
	// which filters out legitimate all-consonant doublings like "LLBB".
	candidate := string(out)
	if !strings.ContainsAny(strings.ToLower(candidate), "aeiouy") {
		return word, false
	}
	return candidate, true
}
