// Package render turns an enriched topic tree into static HTML pages
// and maintains the aggregate index for everything processed so far.
package render

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/naveenpatil1/learning/internal/enrich"
	"github.com/naveenpatil1/learning/internal/extractor"
	"github.com/naveenpatil1/learning/internal/topics"
)

// Stats counts the generated study material for one document.
type Stats struct {
	Concepts   int `json:"concepts"`
	MCQs       int `json:"mcqs"`
	Subjective int `json:"subjective"`
}

// Page is the template model for a single chapter page.
type Page struct {
	Title     string
	Icon      string
	SourcePDF string
	IndexHref string
	Stats     Stats
	Topics    []*topicView
}

type topicView struct {
	Title      string
	Anchor     string
	Depth      int
	Failed     bool
	FailReason string
	Concepts   []enrich.Concept
	MCQs       []enrich.MCQItem
	QA         []enrich.QAItem
	Children   []*topicView
}

// Renderer writes chapter pages under OutDir. Pages for documents with a
// subject folder go into that subdirectory.
type Renderer struct {
	OutDir string
}

// OutputPath reports where the page for doc would be written. The name is
// derived only from the document, so reruns hit the same file.
func (r *Renderer) OutputPath(doc *extractor.Document) string {
	info := extractor.Subject(doc.Path)
	name := extractor.Slug(doc.Name) + ".html"
	if info.Folder != "" {
		return filepath.Join(r.OutDir, extractor.Slug(info.Folder), name)
	}
	return filepath.Join(r.OutDir, name)
}

// WriteDocument renders the page for doc and writes it atomically.
// It returns the path written and the aggregate stats for the index.
func (r *Renderer) WriteDocument(doc *extractor.Document, root *topics.Node) (string, Stats, error) {
	page, err := buildPage(doc, root)
	if err != nil {
		return "", Stats{}, &RenderError{Doc: doc.Name, Err: err}
	}
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, page); err != nil {
		return "", Stats{}, &RenderError{Doc: doc.Name, Err: err}
	}
	path := r.OutputPath(doc)
	if err := WriteAtomic(path, buf.Bytes()); err != nil {
		return "", Stats{}, &RenderError{Doc: doc.Name, Err: err}
	}
	return path, page.Stats, nil
}

func buildPage(doc *extractor.Document, root *topics.Node) (*Page, error) {
	if root == nil {
		return nil, fmt.Errorf("no topic tree for %s", doc.Name)
	}
	info := extractor.Subject(doc.Path)
	page := &Page{
		Title:     info.Title,
		Icon:      info.Icon,
		SourcePDF: filepath.Base(doc.Path),
		IndexHref: "index.html",
	}
	if info.Folder != "" {
		page.IndexHref = "../index.html"
	}
	seen := map[string]int{}
	for _, child := range root.Children {
		page.Topics = append(page.Topics, buildTopicView(child, seen, &page.Stats))
	}
	// A document with no detected headings enriches the root itself.
	if len(root.Children) == 0 || root.Enrichment != nil {
		page.Topics = append([]*topicView{buildTopicView(root, seen, &page.Stats)}, page.Topics...)
	}
	return page, nil
}

func buildTopicView(n *topics.Node, seen map[string]int, total *Stats) *topicView {
	v := &topicView{
		Title:  n.Title,
		Anchor: anchorFor(n.Title, seen),
		Depth:  n.Depth,
	}
	if n.Depth == 0 {
		v.Depth = 1
		if v.Title == "" {
			v.Title = "Overview"
		}
	}
	switch res := n.Enrichment; {
	case res == nil:
		// Container topic, nothing generated for it directly.
	case res.Failed:
		v.Failed = true
		v.FailReason = res.Reason
	default:
		v.Concepts = res.Concepts
		v.MCQs = res.MCQs
		v.QA = res.QA
		total.Concepts += len(res.Concepts)
		total.MCQs += len(res.MCQs)
		total.Subjective += len(res.QA)
	}
	for _, c := range n.Children {
		v.Children = append(v.Children, buildTopicView(c, seen, total))
	}
	return v
}

// anchorFor keeps in-page anchors unique when two topics share a title.
func anchorFor(title string, seen map[string]int) string {
	base := extractor.Slug(title)
	seen[base]++
	if n := seen[base]; n > 1 {
		return fmt.Sprintf("%s-%d", base, n)
	}
	return base
}
