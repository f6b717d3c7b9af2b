package enrich

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Importance grades a subjective question for exam preparation.
type Importance string

const (
	ImportanceLow    Importance = "low"
	ImportanceMedium Importance = "medium"
	ImportanceHigh   Importance = "high"
)

// Concept is one AI-generated key fact for a topic.
type Concept struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// MCQItem is a four-option multiple choice question.
type MCQItem struct {
	ID          int      `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct_answer"`
	Explanation string   `json:"explanation,omitempty"`
}

// QAItem is a subjective question with a model answer.
type QAItem struct {
	ID         int        `json:"id"`
	Question   string     `json:"question"`
	Answer     string     `json:"answer"`
	Marks      string     `json:"marks"`
	Importance Importance `json:"importance"`
}

// Result is the outcome of enriching one topic: either the generated
// payload or a failure reason. A failed topic renders as a placeholder;
// it never aborts the document.
type Result struct {
	Concepts []Concept `json:"concepts,omitempty"`
	MCQs     []MCQItem `json:"mcqs,omitempty"`
	QA       []QAItem  `json:"subjective,omitempty"`

	Failed bool   `json:"failed,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// Failure builds a failed Result.
func Failure(reason string) Result {
	return Result{Failed: true, Reason: reason}
}

// OK reports whether the enrichment succeeded.
func (r Result) OK() bool { return !r.Failed }

// SchemaError marks a model response that does not match the expected
// payload schema. Treated as an enrichment failure, never a crash.
type SchemaError struct {
	Detail string
}

func (e *SchemaError) Error() string {
	return "schema validation: " + e.Detail
}

// Wire shapes for the model's JSON. Options use RawMessage so a missing
// field is distinguishable from an empty list.
type mcqPayload struct {
	Question    string           `json:"question"`
	Options     *json.RawMessage `json:"options"`
	Correct     *int             `json:"correct_answer"`
	Explanation string           `json:"explanation"`
}

type qaPayload struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Marks     string `json:"marks"`
	Important bool   `json:"important"`
}

type enrichmentPayload struct {
	Concepts   []Concept    `json:"concepts"`
	MCQs       []mcqPayload `json:"mcqs"`
	Subjective []qaPayload  `json:"subjective"`
}

// ParseResponse validates a raw model response into a Result. Any
// malformed structure yields a *SchemaError.
func ParseResponse(raw string) (Result, error) {
	text := stripCodeBlock(raw)

	var payload enrichmentPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		obj := firstJSONObject(text)
		if obj == "" {
			return Result{}, &SchemaError{Detail: "no JSON object in response"}
		}
		if err := json.Unmarshal([]byte(obj), &payload); err != nil {
			return Result{}, &SchemaError{Detail: err.Error()}
		}
	}

	var res Result
	for i, c := range payload.Concepts {
		if strings.TrimSpace(c.Title) == "" || strings.TrimSpace(c.Description) == "" {
			return Result{}, &SchemaError{Detail: fmt.Sprintf("concept %d missing title or description", i)}
		}
		res.Concepts = append(res.Concepts, c)
	}
	for i, m := range payload.MCQs {
		item, err := validateMCQ(i, m)
		if err != nil {
			return Result{}, err
		}
		item.ID = i + 1
		res.MCQs = append(res.MCQs, item)
	}
	for i, q := range payload.Subjective {
		item, err := validateQA(i, q)
		if err != nil {
			return Result{}, err
		}
		item.ID = i + 1
		res.QA = append(res.QA, item)
	}

	if len(res.Concepts) == 0 && len(res.MCQs) == 0 && len(res.QA) == 0 {
		return Result{}, &SchemaError{Detail: "response carries no content"}
	}
	return res, nil
}

func validateMCQ(i int, m mcqPayload) (MCQItem, error) {
	if strings.TrimSpace(m.Question) == "" {
		return MCQItem{}, &SchemaError{Detail: fmt.Sprintf("mcq %d missing question", i)}
	}
	if m.Options == nil {
		return MCQItem{}, &SchemaError{Detail: fmt.Sprintf("mcq %d missing options", i)}
	}
	var options []string
	if err := json.Unmarshal(*m.Options, &options); err != nil {
		return MCQItem{}, &SchemaError{Detail: fmt.Sprintf("mcq %d options malformed: %v", i, err)}
	}
	if len(options) != 4 {
		return MCQItem{}, &SchemaError{Detail: fmt.Sprintf("mcq %d has %d options, want 4", i, len(options))}
	}
	if m.Correct == nil {
		return MCQItem{}, &SchemaError{Detail: fmt.Sprintf("mcq %d missing correct_answer", i)}
	}
	if *m.Correct < 0 || *m.Correct >= len(options) {
		return MCQItem{}, &SchemaError{Detail: fmt.Sprintf("mcq %d correct_answer %d out of range", i, *m.Correct)}
	}
	return MCQItem{
		Question:    strings.TrimSpace(m.Question),
		Options:     options,
		Correct:     *m.Correct,
		Explanation: strings.TrimSpace(m.Explanation),
	}, nil
}

func validateQA(i int, q qaPayload) (QAItem, error) {
	if strings.TrimSpace(q.Question) == "" || strings.TrimSpace(q.Answer) == "" {
		return QAItem{}, &SchemaError{Detail: fmt.Sprintf("subjective %d missing question or answer", i)}
	}
	marks := strings.TrimSpace(q.Marks)
	if marks == "" {
		marks = "3 Marks"
	}
	return QAItem{
		Question:   strings.TrimSpace(q.Question),
		Answer:     strings.TrimSpace(q.Answer),
		Marks:      marks,
		Importance: gradeImportance(q.Important, marks),
	}, nil
}

// gradeImportance maps the model's important flag and mark weight onto
// the three-level scale.
func gradeImportance(important bool, marks string) Importance {
	if important {
		return ImportanceHigh
	}
	if strings.HasPrefix(marks, "5") {
		return ImportanceMedium
	}
	return ImportanceLow
}
