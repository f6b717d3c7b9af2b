package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/naveenpatil1/learning/internal/enrich"
	"github.com/naveenpatil1/learning/internal/extractor"
	"github.com/naveenpatil1/learning/internal/topics"
)

func enrichedNode(title string, depth int) *topics.Node {
	return &topics.Node{
		Title: title,
		Depth: depth,
		Enrichment: &enrich.Result{
			Concepts: []enrich.Concept{{Title: "Gravity", Description: "Mass attracts mass."}},
			MCQs: []enrich.MCQItem{{
				ID:       1,
				Question: "What pulls objects down?",
				Options:  []string{"Gravity", "Wind", "Light", "Sound"},
				Correct:  0,
			}},
			QA: []enrich.QAItem{{
				ID: 1, Question: "Explain gravity.", Answer: "It is a force.",
				Marks: "3 Marks", Importance: enrich.ImportanceHigh,
			}},
		},
	}
}

func renderToFile(t *testing.T, doc *extractor.Document, root *topics.Node) (string, Stats) {
	t.Helper()
	r := &Renderer{OutDir: t.TempDir()}
	path, stats, err := r.WriteDocument(doc, root)
	if err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}
	return path, stats
}

func parseFile(t *testing.T, path string) *html.Node {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read rendered page: %v", err)
	}
	doc, err := html.Parse(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("parse rendered page: %v", err)
	}
	return doc
}

func findAll(n *html.Node, class string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == "class" && strings.Contains(a.Val, class) {
					out = append(out, n)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func TestWriteDocumentStructure(t *testing.T) {
	doc := &extractor.Document{Path: "in/physics.pdf", Name: "physics", PageCount: 2}
	root := &topics.Node{Title: "physics"}
	main := enrichedNode("Motion", 1)
	sub := enrichedNode("Uniform Motion", 2)
	main.Children = []*topics.Node{sub}
	root.Children = []*topics.Node{main}

	path, stats, err := (&Renderer{OutDir: t.TempDir()}).WriteDocument(doc, root)
	if err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}
	if stats.Concepts != 2 || stats.MCQs != 2 || stats.Subjective != 2 {
		t.Fatalf("stats = %+v, want 2 of each", stats)
	}
	page := parseFile(t, path)
	sections := findAll(page, "topic-section")
	if len(sections) != 2 {
		t.Fatalf("got %d topic sections, want 2", len(sections))
	}
	options := findAll(page, "mcq-option")
	if len(options) != 8 {
		t.Fatalf("got %d mcq options, want 8", len(options))
	}
	if got := findAll(page, "importance high"); len(got) != 2 {
		t.Fatalf("got %d high importance tags, want 2", len(got))
	}
}

func TestWriteDocumentFailedTopicPlaceholder(t *testing.T) {
	doc := &extractor.Document{Path: "in/history.pdf", Name: "history"}
	root := &topics.Node{Title: "history"}
	good := enrichedNode("The Revolt", 1)
	failed := enrich.Failure("schema validation: mcq 1: missing options")
	bad := &topics.Node{Title: "Aftermath", Depth: 1, Enrichment: &failed}
	root.Children = []*topics.Node{good, bad}

	path, stats := renderToFile(t, doc, root)
	if stats.Concepts != 1 {
		t.Fatalf("failed topic should not contribute stats, got %+v", stats)
	}
	page := parseFile(t, path)
	sections := findAll(page, "topic-section")
	if len(sections) != 2 {
		t.Fatalf("failed topic must keep its section, got %d", len(sections))
	}
	placeholders := findAll(page, "placeholder")
	if len(placeholders) != 1 {
		t.Fatalf("got %d placeholders, want 1", len(placeholders))
	}
	if text := textContent(placeholders[0]); !strings.Contains(text, "schema validation") {
		t.Fatalf("placeholder should carry the failure reason, got %q", text)
	}
}

func TestWriteDocumentNoHeadings(t *testing.T) {
	doc := &extractor.Document{Path: "in/notes.pdf", Name: "notes"}
	root := enrichedNode("notes", 0)

	path, _ := renderToFile(t, doc, root)
	page := parseFile(t, path)
	if got := findAll(page, "topic-section"); len(got) != 1 {
		t.Fatalf("document without headings should render one section, got %d", len(got))
	}
}

func TestOutputPathDeterministic(t *testing.T) {
	r := &Renderer{OutDir: "site"}
	doc := &extractor.Document{Path: "in/Class 9 - Science.pdf", Name: "Class 9 - Science"}
	first := r.OutputPath(doc)
	if first != r.OutputPath(doc) {
		t.Fatal("OutputPath must be stable across calls")
	}
	if dir := filepath.Dir(first); filepath.Base(dir) != "class-9" {
		t.Fatalf("subject documents belong in their folder, got %s", first)
	}
}

func TestWriteDocumentRerunIdentical(t *testing.T) {
	doc := &extractor.Document{Path: "in/civics.pdf", Name: "civics"}
	root := &topics.Node{Title: "civics", Children: []*topics.Node{enrichedNode("Democracy", 1)}}
	r := &Renderer{OutDir: t.TempDir()}

	path, _, err := r.WriteDocument(doc, root)
	if err != nil {
		t.Fatalf("first write: %v", err)
	}
	first, _ := os.ReadFile(path)
	if _, _, err := r.WriteDocument(doc, root); err != nil {
		t.Fatalf("second write: %v", err)
	}
	second, _ := os.ReadFile(path)
	if string(first) != string(second) {
		t.Fatal("rerun should produce byte-identical output")
	}
}

func TestWriteAtomicCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "page.html")
	if err := WriteAtomic(path, []byte("hello")); err != nil {
		t.Fatalf("WriteAtomic: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "hello" {
		t.Fatalf("read back = %q, %v", data, err)
	}
	entries, _ := os.ReadDir(filepath.Join(dir, "a", "b"))
	if len(entries) != 1 {
		t.Fatalf("temp file left behind: %d entries", len(entries))
	}
}
