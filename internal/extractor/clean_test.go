package extractor

import "testing"

func TestCleanText_DoubledCharacters(t *testing.T) {
	got := CleanText("PPeeooppllee aass RReessoouurrccee")
	want := "People as Resource"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestCleanText_LeavesNormalTextAlone(t *testing.T) {
	in := "The Himalayan Rivers flow throughout the year."
	if got := CleanText(in); got != in {
		t.Errorf("expected unchanged text, got %q", got)
	}
}

func TestCleanText_PreservesLines(t *testing.T) {
	in := "DRAINAGE\nThe term drainage describes the river system."
	got := CleanText(in)
	if got != in {
		t.Errorf("expected line structure preserved, got %q", got)
	}
}

func TestCleanText_CollapsesSpaceRuns(t *testing.T) {
	got := CleanText("The   Indus    River\tSystem")
	want := "The Indus River System"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestUndouble_RejectsLegitimateDoubles(t *testing.T) {
	// Real words with doubled letters must not be halved.
	for _, w := range []string{"book", "keep", "ll", "soon"} {
		if fixed, ok := undouble(w); ok {
			t.Errorf("undouble(%q) = %q, expected no change", w, fixed)
		}
	}
}

func TestSlug_Deterministic(t *testing.T) {
	a := Slug("Geography - Rivers of India")
	b := Slug("Geography - Rivers of India")
	if a != b {
		t.Fatalf("expected stable slug, got %q and %q", a, b)
	}
	if a != "geography-rivers-of-india" {
		t.Errorf("unexpected slug %q", a)
	}
}

func TestSlug_EmptyFallsBack(t *testing.T) {
	if got := Slug("!!!"); got != "document" {
		t.Errorf("expected fallback slug, got %q", got)
	}
}

func TestSubject_FolderSplit(t *testing.T) {
	info := Subject("pdfs/Class 9 - Geography - Drainage.pdf")
	if info.Folder != "Class 9" {
		t.Errorf("expected folder %q, got %q", "Class 9", info.Folder)
	}
	if info.Title != "Geography - Drainage" {
		t.Errorf("expected title %q, got %q", "Geography - Drainage", info.Title)
	}
	if info.Icon != "🌍" {
		t.Errorf("expected geography icon, got %q", info.Icon)
	}
}

func TestSubject_NoSeparator(t *testing.T) {
	info := Subject("chapter2.pdf")
	if info.Folder != "" {
		t.Errorf("expected no folder, got %q", info.Folder)
	}
	if info.Title != "chapter2" {
		t.Errorf("expected title %q, got %q", "chapter2", info.Title)
	}
	if info.Icon != "📖" {
		t.Errorf("expected default icon, got %q", info.Icon)
	}
}
