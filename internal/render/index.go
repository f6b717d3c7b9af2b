package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const manifestName = "manifest.json"

// Entry records one processed document in the site manifest.
type Entry struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Icon        string    `json:"icon"`
	File        string    `json:"file"`
	SourcePDF   string    `json:"source_pdf"`
	Stats       Stats     `json:"stats"`
	ProcessedAt time.Time `json:"processed_at"`
}

// Manifest is the persisted record of everything under the output
// directory. Entries stay sorted by slug so serialization is stable.
type Manifest struct {
	Entries []Entry `json:"entries"`
}

// LoadManifest reads the manifest from dir. A missing file yields an
// empty manifest, not an error.
func LoadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestName))
	if errors.Is(err, fs.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// Merge inserts or replaces the entry with the same slug.
func (m *Manifest) Merge(e Entry) {
	for i := range m.Entries {
		if m.Entries[i].Slug == e.Slug {
			m.Entries[i] = e
			return
		}
	}
	m.Entries = append(m.Entries, e)
	sort.Slice(m.Entries, func(i, j int) bool {
		return m.Entries[i].Slug < m.Entries[j].Slug
	})
}

// Lookup returns the entry for slug if present.
func (m *Manifest) Lookup(slug string) (Entry, bool) {
	for _, e := range m.Entries {
		if e.Slug == slug {
			return e, true
		}
	}
	return Entry{}, false
}

// Write persists the manifest and regenerates index.html under dir.
// Both writes are atomic so a crash never leaves a torn index.
func (m *Manifest) Write(dir string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := WriteAtomic(filepath.Join(dir, manifestName), append(data, '\n')); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, m); err != nil {
		return fmt.Errorf("render index: %w", err)
	}
	return WriteAtomic(filepath.Join(dir, "index.html"), buf.Bytes())
}
