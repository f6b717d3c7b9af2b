package topics

import "github.com/naveenpatil1/learning/internal/enrich"

// MaxDepth bounds the topic hierarchy: 1 = main topic, 2 = subtopic.
// Heading heuristics alone cannot support deeper nesting reliably, so
// anything detected below level 2 is clamped.
const MaxDepth = 2

// Node is one topic in the document hierarchy. The tree is acyclic,
// every non-root node has exactly one parent, and sibling order follows
// source page order.
type Node struct {
	Title    string
	Depth    int // 0 for the synthetic root
	Pages    []int
	Children []*Node

	// Enrichment is attached after the AI call; nil until then.
	Enrichment *enrich.Result
}

// Walk visits the node and its descendants in document order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// TopicCount returns the number of non-root nodes in the tree.
func (n *Node) TopicCount() int {
	count := 0
	n.Walk(func(node *Node) {
		if node.Depth > 0 {
			count++
		}
	})
	return count
}
