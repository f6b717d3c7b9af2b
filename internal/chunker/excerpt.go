// Package chunker bounds topic text to the model's context budget.
// Topic text from a textbook section can exceed what one enrichment
// request should carry, so callers clip it to an excerpt before building
// the prompt.
package chunker

import "strings"

// DefaultMaxTokens is the per-request excerpt budget.
const DefaultMaxTokens = 1500

// EstimateTokens gives a rough token count using a words-based heuristic.
// Exact tokenization is not required for budgeting.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	words := len(strings.Fields(text))
	// Roughly 1.33 tokens per English word.
	tokens := int(float64(words) * 1.33)
	if tokens < 1 {
		tokens = 1
	}
	return tokens
}

// BuildExcerpt clips text to at most maxTokens, preferring paragraph
// boundaries and falling back to sentence boundaries inside an oversized
// paragraph. The head of the text is kept: textbook sections front-load
// their definitions.
func BuildExcerpt(text string, maxTokens int) string {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	if EstimateTokens(text) <= maxTokens {
		return strings.TrimSpace(text)
	}

	var out strings.Builder
	used := 0
	for _, para := range splitParagraphs(text) {
		paraTokens := EstimateTokens(para)
		if used+paraTokens <= maxTokens {
			appendBlock(&out, para)
			used += paraTokens
			continue
		}
		// Partial paragraph: take leading sentences that still fit.
		for _, sent := range splitSentences(para) {
			sentTokens := EstimateTokens(sent)
			if used+sentTokens > maxTokens {
				return out.String()
			}
			appendSentence(&out, sent)
			used += sentTokens
		}
		return out.String()
	}
	return out.String()
}

func appendBlock(out *strings.Builder, block string) {
	if out.Len() > 0 {
		out.WriteString("\n\n")
	}
	out.WriteString(block)
}

func appendSentence(out *strings.Builder, sent string) {
	if out.Len() > 0 {
		out.WriteString(" ")
	}
	out.WriteString(sent)
}

func splitParagraphs(text string) []string {
	parts := strings.Split(text, "\n\n")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for i, r := range text {
		current.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') && i+1 < len(text) && text[i+1] == ' ' {
			sentences = append(sentences, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}
