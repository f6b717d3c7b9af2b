package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadManifestMissing(t *testing.T) {
	m, err := LoadManifest(t.TempDir())
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if len(m.Entries) != 0 {
		t.Fatalf("expected empty manifest, got %d entries", len(m.Entries))
	}
}

func TestManifestMergeReplaces(t *testing.T) {
	m := &Manifest{}
	m.Merge(Entry{Slug: "physics", Title: "Physics", Stats: Stats{Concepts: 2}})
	m.Merge(Entry{Slug: "biology", Title: "Biology"})
	m.Merge(Entry{Slug: "physics", Title: "Physics", Stats: Stats{Concepts: 5}})

	if len(m.Entries) != 2 {
		t.Fatalf("reprocessing must replace, not duplicate: got %d entries", len(m.Entries))
	}
	e, ok := m.Lookup("physics")
	if !ok || e.Stats.Concepts != 5 {
		t.Fatalf("Lookup(physics) = %+v, %v; want updated stats", e, ok)
	}
	if m.Entries[0].Slug != "biology" || m.Entries[1].Slug != "physics" {
		t.Fatalf("entries not sorted by slug: %+v", m.Entries)
	}
}

func TestManifestWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	m := &Manifest{}
	m.Merge(Entry{
		Slug: "history", Title: "History", Icon: "🏛️",
		File: "history.html", SourcePDF: "History.pdf",
		Stats:       Stats{Concepts: 3, MCQs: 6, Subjective: 4},
		ProcessedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	})
	if err := m.Write(dir); err != nil {
		t.Fatalf("Write: %v", err)
	}

	loaded, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	e, ok := loaded.Lookup("history")
	if !ok || e.Stats.MCQs != 6 || !e.ProcessedAt.Equal(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("round-trip entry = %+v, %v", e, ok)
	}

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("read index.html: %v", err)
	}
	for _, want := range []string{"History", "history.html", "6 MCQs", "1 chapters"} {
		if !strings.Contains(string(index), want) {
			t.Fatalf("index.html missing %q", want)
		}
	}
}

func TestManifestWriteStable(t *testing.T) {
	dir := t.TempDir()
	m := &Manifest{}
	m.Merge(Entry{Slug: "a", Title: "A"})
	m.Merge(Entry{Slug: "b", Title: "B"})
	if err := m.Write(dir); err != nil {
		t.Fatalf("first write: %v", err)
	}
	first, _ := os.ReadFile(filepath.Join(dir, manifestName))
	if err := m.Write(dir); err != nil {
		t.Fatalf("second write: %v", err)
	}
	second, _ := os.ReadFile(filepath.Join(dir, manifestName))
	if string(first) != string(second) {
		t.Fatal("manifest must serialize identically across reruns")
	}
}
