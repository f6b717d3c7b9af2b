package topics

import (
	"strings"

	"github.com/naveenpatil1/learning/internal/extractor"
)

// Assemble builds the topic tree for a document from its pages. Detected
// headings open nodes at their level; pages between headings attach to
// the most recently opened node. Pages before any heading, and all pages
// of a document with no detected headings, attach to the synthetic root.
func Assemble(doc *extractor.Document, pages []extractor.Page) *Node {
	root := &Node{Title: doc.Name, Depth: 0}

	type stackEntry struct {
		node  *Node
		level int
	}
	stack := []stackEntry{{node: root, level: 0}}

	current := root
	for _, page := range pages {
		openedInPage := false
		for _, line := range strings.Split(page.Text, "\n") {
			h, ok := DetectHeading(line)
			if !ok {
				continue
			}
			node := &Node{Title: h.Title, Depth: h.Level}

			// Pop until the top of the stack can parent this heading. A
			// subtopic arriving with no open main topic nests under root.
			for len(stack) > 1 && stack[len(stack)-1].level >= h.Level {
				stack = stack[:len(stack)-1]
			}
			parent := stack[len(stack)-1].node
			parent.Children = append(parent.Children, node)
			stack = append(stack, stackEntry{node: node, level: h.Level})

			node.Pages = appendPage(node.Pages, page.Index)
			current = node
			openedInPage = true
		}
		if !openedInPage {
			current.Pages = appendPage(current.Pages, page.Index)
		}
	}
	return root
}

// TopicText concatenates the text of a node's pages (and, for a main
// topic, the pages of its subtopics) as enrichment input.
func TopicText(n *Node, pages []extractor.Page) string {
	byIndex := make(map[int]string, len(pages))
	for _, p := range pages {
		byIndex[p.Index] = p.Text
	}

	seen := make(map[int]bool)
	var sb strings.Builder
	n.Walk(func(node *Node) {
		for _, idx := range node.Pages {
			if seen[idx] {
				continue
			}
			seen[idx] = true
			if text, ok := byIndex[idx]; ok {
				if sb.Len() > 0 {
					sb.WriteString("\n\n")
				}
				sb.WriteString(text)
			}
		}
	})
	return sb.String()
}

func appendPage(pages []int, idx int) []int {
	if len(pages) > 0 && pages[len(pages)-1] == idx {
		return pages
	}
	return append(pages, idx)
}
