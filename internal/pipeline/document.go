package pipeline

import (
	"sync"
	"time"
)

// Status represents the processing state of one source PDF.
type Status string

const (
	StatusDiscovered Status = "discovered"
	StatusExtracted  Status = "extracted"
	StatusAssembled  Status = "assembled"
	StatusEnriching  Status = "enriching"
	StatusRendered   Status = "rendered"
	StatusFailed     Status = "failed"
	StatusSkipped    Status = "skipped"
)

// Document tracks the state of a single PDF through the pipeline.
// Extraction, assembly and render failures are fatal for the document;
// enrichment failures are recorded per topic and processing continues.
type Document struct {
	mu sync.Mutex

	Path string `json:"path"`
	Name string `json:"name"`

	Status Status   `json:"status"`
	Phase  string   `json:"phase"`
	Pages  int      `json:"pages"`
	Topics Progress `json:"topics"`

	StartedAt time.Time `json:"started_at"`
	UpdatedAt time.Time `json:"updated_at"`

	errors []string
}

// Progress counts topic-level enrichment outcomes.
type Progress struct {
	Total    int      `json:"total"`
	Enriched int      `json:"enriched"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors"`
}

func NewDocument(path, name string) *Document {
	now := time.Now()
	return &Document{
		Path:      path,
		Name:      name,
		Status:    StatusDiscovered,
		Phase:     "discovered",
		StartedAt: now,
		UpdatedAt: now,
	}
}

// SetStatus updates document status atomically.
func (d *Document) SetStatus(status Status, phase string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Status = status
	d.Phase = phase
	d.UpdatedAt = time.Now()
}

// AddError records an error without changing status.
func (d *Document) AddError(err string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.errors = append(d.errors, err)
	d.Topics.Errors = d.errors
	d.UpdatedAt = time.Now()
}

// SetPages records the extracted page count.
func (d *Document) SetPages(n int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Pages = n
	d.UpdatedAt = time.Now()
}

// SetTotalTopics records how many topics enrichment will visit.
func (d *Document) SetTotalTopics(n int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Topics.Total = n
	d.UpdatedAt = time.Now()
}

// IncrTopic tallies one finished topic enrichment.
func (d *Document) IncrTopic(ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if ok {
		d.Topics.Enriched++
	} else {
		d.Topics.Failed++
	}
	d.UpdatedAt = time.Now()
}

// Snapshot is a read-only, JSON-safe copy of document state.
type Snapshot struct {
	Path   string   `json:"path"`
	Name   string   `json:"name"`
	Status Status   `json:"status"`
	Phase  string   `json:"phase"`
	Pages  int      `json:"pages"`
	Topics Progress `json:"topics"`
}

func (d *Document) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	errs := d.Topics.Errors
	if errs == nil {
		errs = []string{}
	}
	return Snapshot{
		Path:   d.Path,
		Name:   d.Name,
		Status: d.Status,
		Phase:  d.Phase,
		Pages:  d.Pages,
		Topics: Progress{
			Total:    d.Topics.Total,
			Enriched: d.Topics.Enriched,
			Failed:   d.Topics.Failed,
			Errors:   errs,
		},
	}
}
