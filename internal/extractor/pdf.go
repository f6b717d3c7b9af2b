package extractor

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// Extractor reads PDFs into ordered page sequences. It tries the Go
// library first, then falls back to pdftotext if available.
type Extractor struct {
	FallbackPdftotext bool
}

// Extract opens the PDF at path and returns its pages in source order.
// Encrypted or malformed files yield an *ExtractionError.
func (e *Extractor) Extract(path string) (*Document, []Page, error) {
	pages, err := extractPages(path)
	if err != nil && e.FallbackPdftotext {
		pages, err = extractPdftotext(path)
	}
	if err != nil {
		return nil, nil, &ExtractionError{Path: path, Err: err}
	}

	out := make([]Page, 0, len(pages))
	for i, text := range pages {
		text = CleanText(text)
		if strings.TrimSpace(text) == "" {
			continue
		}
		out = append(out, Page{Index: i, Text: text})
	}
	if len(out) == 0 {
		return nil, nil, &ExtractionError{Path: path, Err: fmt.Errorf("no extractable text")}
	}

	doc := &Document{
		Path:      path,
		Name:      strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		PageCount: len(pages),
	}
	return doc, out, nil
}

func extractPages(path string) ([]string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}

func extractPdftotext(path string) ([]string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}
	// pdftotext separates pages with form feeds.
	return strings.Split(string(out), "\f"), nil
}
