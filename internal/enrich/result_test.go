package enrich

import (
	"errors"
	"strings"
	"testing"
)

func TestParseResponse_Valid(t *testing.T) {
	res, err := ParseResponse(validPayload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Concepts) != 1 {
		t.Errorf("expected 1 concept, got %d", len(res.Concepts))
	}
	if res.MCQs[0].Correct != 0 || len(res.MCQs[0].Options) != 4 {
		t.Errorf("unexpected mcq: %+v", res.MCQs[0])
	}
	if res.QA[0].Importance != ImportanceHigh {
		t.Errorf("expected high importance for important question, got %s", res.QA[0].Importance)
	}
}

func TestParseResponse_CorrectIndexOutOfRange(t *testing.T) {
	raw := `{"mcqs": [{"question": "Q?", "options": ["a","b","c","d"], "correct_answer": 4}]}`
	_, err := ParseResponse(raw)
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if !strings.Contains(err.Error(), "out of range") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestParseResponse_NegativeCorrectIndex(t *testing.T) {
	raw := `{"mcqs": [{"question": "Q?", "options": ["a","b","c","d"], "correct_answer": -1}]}`
	if _, err := ParseResponse(raw); err == nil {
		t.Fatal("expected error for negative correct index")
	}
}

func TestParseResponse_WrongOptionCount(t *testing.T) {
	raw := `{"mcqs": [{"question": "Q?", "options": ["a","b"], "correct_answer": 0}]}`
	_, err := ParseResponse(raw)
	if err == nil || !strings.Contains(err.Error(), "want 4") {
		t.Fatalf("expected option count error, got %v", err)
	}
}

func TestParseResponse_MissingOptions(t *testing.T) {
	raw := `{"mcqs": [{"question": "Q?", "correct_answer": 0}]}`
	_, err := ParseResponse(raw)
	if err == nil || !strings.HasPrefix(err.Error(), "schema validation") {
		t.Fatalf("expected schema validation error, got %v", err)
	}
}

func TestParseResponse_NotJSON(t *testing.T) {
	_, err := ParseResponse("I could not generate content for this topic.")
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
}

func TestParseResponse_JSONEmbeddedInProse(t *testing.T) {
	raw := "Here is the content you asked for:\n" + validPayload + "\nLet me know if you need more."
	res, err := ParseResponse(raw)
	if err != nil {
		t.Fatalf("expected embedded JSON to parse, got %v", err)
	}
	if len(res.MCQs) != 1 {
		t.Errorf("expected 1 mcq, got %d", len(res.MCQs))
	}
}

func TestParseResponse_EmptyContent(t *testing.T) {
	_, err := ParseResponse(`{"concepts": [], "mcqs": [], "subjective": []}`)
	if err == nil {
		t.Fatal("expected error for contentless response")
	}
}

func TestParseResponse_AssignsSequentialIDs(t *testing.T) {
	raw := `{"mcqs": [
		{"question": "Q1?", "options": ["a","b","c","d"], "correct_answer": 1},
		{"question": "Q2?", "options": ["a","b","c","d"], "correct_answer": 2}
	]}`
	res, err := ParseResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.MCQs[0].ID != 1 || res.MCQs[1].ID != 2 {
		t.Errorf("expected sequential ids, got %d and %d", res.MCQs[0].ID, res.MCQs[1].ID)
	}
}

func TestGradeImportance(t *testing.T) {
	cases := []struct {
		important bool
		marks     string
		want      Importance
	}{
		{true, "3 Marks", ImportanceHigh},
		{false, "5 Marks", ImportanceMedium},
		{false, "3 Marks", ImportanceLow},
		{false, "", ImportanceLow},
	}
	for _, tc := range cases {
		if got := gradeImportance(tc.important, tc.marks); got != tc.want {
			t.Errorf("gradeImportance(%v, %q) = %s, want %s", tc.important, tc.marks, got, tc.want)
		}
	}
}

func TestFailure(t *testing.T) {
	res := Failure("model unavailable")
	if res.OK() {
		t.Error("expected failed result")
	}
	if res.Reason != "model unavailable" {
		t.Errorf("unexpected reason %q", res.Reason)
	}
}
