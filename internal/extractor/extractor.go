package extractor

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Document identifies a source PDF discovered in the input directory.
type Document struct {
	Path      string
	Name      string // base filename without extension
	PageCount int
}

// Page is one extracted page, read-only downstream of extraction.
type Page struct {
	Index  int // 0-based, source order
	Text   string
	Images []ImageRef
}

// ImageRef points at an embedded image without carrying its bytes.
type ImageRef struct {
	Name string
	MIME string
}

// ExtractionError marks a document that could not be read. It is fatal
// for that document only.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// SubjectInfo is display metadata derived from the source filename.
type SubjectInfo struct {
	Title  string // e.g. "Geography - Rivers"
	Folder string // grouping folder, e.g. "Class 9" (empty if ungrouped)
	Icon   string
}

// Subject derives title, grouping folder and icon from a PDF path.
// Filenames of the form "Class 9 - Geography - Rivers.pdf" group under
// the part before the first " - " separator.
func Subject(path string) SubjectInfo {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	info := SubjectInfo{Title: strings.TrimSpace(base), Icon: "📖"}
	if folder, rest, ok := strings.Cut(base, " - "); ok && strings.TrimSpace(rest) != "" {
		info.Folder = strings.TrimSpace(folder)
		info.Title = strings.TrimSpace(rest)
	}
	info.Icon = iconFor(info.Title)
	return info
}

var subjectIcons = []struct {
	keyword string
	icon    string
}{
	{"math", "🔢"},
	{"science", "🔬"},
	{"physics", "⚛️"},
	{"chemistry", "🧪"},
	{"biology", "🧬"},
	{"geography", "🌍"},
	{"history", "🏛️"},
	{"economics", "📊"},
	{"english", "📚"},
	{"civics", "⚖️"},
}

func iconFor(title string) string {
	lower := strings.ToLower(title)
	for _, s := range subjectIcons {
		if strings.Contains(lower, s.keyword) {
			return s.icon
		}
	}
	return "📖"
}

var (
	slugBad  = regexp.MustCompile(`[^a-z0-9-]`)
	slugDash = regexp.MustCompile(`-+`)
)

// Slug converts a document name to a URL/path-safe slug. Output is a
// deterministic function of the input so reruns locate prior artifacts.
func Slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugBad.ReplaceAllString(s, "-")
	s = slugDash.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > 80 {
		s = strings.Trim(s[:80], "-")
	}
	if s == "" {
		s = "document"
	}
	return s
}
