package enrich

import (
	"fmt"
	"strings"
)

const enrichmentInstructions = `You are preparing study material from a school textbook section. Generate learning content for the topic below and return ONE JSON object with exactly these fields:

{
  "concepts": [
    {"title": "Concept name", "description": "Direct factual explanation from the text"}
  ],
  "mcqs": [
    {"id": 1, "question": "Question text?", "options": ["A", "B", "C", "D"], "correct_answer": 0, "explanation": "Why the answer is correct"}
  ],
  "subjective": [
    {"id": 1, "question": "Question text?", "answer": "Comprehensive answer with key points", "marks": "3 Marks", "important": false}
  ]
}

Rules:
- Extract DIRECT FACTS from the section text: dates, numbers, names, definitions
- Every MCQ must have exactly 4 options and one correct answer index (0-based)
- Distractors must be plausible but clearly wrong given the text
- Subjective questions mix 3, 4 and 5 mark depth; answers must be complete
- Mark at most 1-2 subjective questions as "important": true, and only for core concepts
- Do not invent information that is not in the section text
- Respond with ONLY the JSON object, no code fences, no commentary`

// BuildEnrichmentPrompt assembles the per-topic request: instructions,
// content minimums, the topic title, and the clipped section excerpt.
func BuildEnrichmentPrompt(topic, excerpt string, minConcepts, minMCQs, minQA int) string {
	var sb strings.Builder
	sb.WriteString(enrichmentInstructions)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Generate at least %d concepts, %d MCQs and %d subjective questions.\n",
		minConcepts, minMCQs, minQA)
	sb.WriteString("\n---\n")
	fmt.Fprintf(&sb, "Topic: %q\n", topic)
	sb.WriteString("---\n")
	sb.WriteString(excerpt)
	return sb.String()
}
