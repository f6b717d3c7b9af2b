package topics

import (
	"strings"
	"unicode"
)

// Heading is a detected heading line with its hierarchy level.
type Heading struct {
	Title string
	Level int // 1 = main topic, 2 = subtopic
}

var headingExclusions = []string{
	"page", "chapter", "source:", "reprint", "fig.", "figure", "table",
}

// DetectHeading reports whether a line looks like a topic heading and at
// what level. It is a pure function over the line text: textbook PDFs
// lose font metadata in extraction, so the heuristic works from length,
// capitalization and exclusion prefixes. All-caps lines are main topics;
// short title-case lines are subtopics.
func DetectHeading(line string) (Heading, bool) {
	line = strings.TrimSpace(line)
	if len(line) < 4 || len(line) > 100 {
		return Heading{}, false
	}
	if isDigits(line) {
		return Heading{}, false
	}
	lower := strings.ToLower(line)
	for _, prefix := range headingExclusions {
		if strings.HasPrefix(lower, prefix) {
			return Heading{}, false
		}
	}
	// Sentences end with punctuation; headings don't.
	if strings.ContainsAny(string(line[len(line)-1]), ".,:;?!") {
		return Heading{}, false
	}

	first := []rune(line)[0]
	if !unicode.IsUpper(first) {
		return Heading{}, false
	}

	words := strings.Fields(line)
	if isAllCaps(line) {
		return Heading{Title: titleCase(line), Level: 1}, true
	}
	if len(words) <= 8 && isTitleCase(words) {
		return Heading{Title: line, Level: MaxDepth}, true
	}
	return Heading{}, false
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && !unicode.IsSpace(r) && r != '.' {
			return false
		}
	}
	return true
}

func isAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// isTitleCase requires every significant word to start uppercase; short
// connectives (of, the, and...) are allowed lowercase.
func isTitleCase(words []string) bool {
	minor := map[string]bool{
		"a": true, "an": true, "and": true, "as": true, "in": true,
		"of": true, "on": true, "or": true, "the": true, "to": true,
	}
	upper := 0
	for i, w := range words {
		r := []rune(w)[0]
		if unicode.IsUpper(r) {
			upper++
			continue
		}
		if i > 0 && minor[strings.ToLower(w)] {
			continue
		}
		return false
	}
	return upper >= 1
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
