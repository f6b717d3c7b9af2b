package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/naveenpatil1/learning/internal/chunker"
	"github.com/naveenpatil1/learning/internal/enrich"
	"github.com/naveenpatil1/learning/internal/extractor"
	"github.com/naveenpatil1/learning/internal/render"
	"github.com/naveenpatil1/learning/internal/topics"
)

// PageExtractor reads a PDF into pages.
type PageExtractor interface {
	Extract(path string) (*extractor.Document, []extractor.Page, error)
}

// Enricher generates study content for one topic.
type Enricher interface {
	Enrich(ctx context.Context, topic, excerpt string) enrich.Result
}

// Options tunes a pipeline run.
type Options struct {
	Workers         int
	DocumentTimeout time.Duration
	MaxTopicTokens  int

	// Force reprocesses documents whose output already exists.
	Force bool
}

// Summary aggregates the outcome of one run.
type Summary struct {
	Discovered int
	Processed  int
	Skipped    int
	Failed     int
	Topics     int
	Concepts   int
	MCQs       int
	Subjective int
}

// Driver runs the extract, assemble, enrich, render pipeline over every
// PDF in the input directory with bounded concurrency.
type Driver struct {
	opts      Options
	extractor PageExtractor
	enricher  Enricher
	renderer  *render.Renderer
	log       *slog.Logger

	// indexMu serializes manifest merges and index rewrites.
	indexMu sync.Mutex

	sumMu   sync.Mutex
	summary Summary
}

func NewDriver(opts Options, ext PageExtractor, enr Enricher, r *render.Renderer, log *slog.Logger) *Driver {
	if opts.Workers <= 0 {
		opts.Workers = 3
	}
	if opts.DocumentTimeout <= 0 {
		opts.DocumentTimeout = 10 * time.Minute
	}
	if opts.MaxTopicTokens <= 0 {
		opts.MaxTopicTokens = chunker.DefaultMaxTokens
	}
	return &Driver{
		opts:      opts,
		extractor: ext,
		enricher:  enr,
		renderer:  r,
		log:       log,
	}
}

// Run processes every *.pdf under inputDir. A failed document never
// aborts the run; the error returned covers run-level problems only.
func (d *Driver) Run(ctx context.Context, inputDir string) (Summary, error) {
	paths, err := discover(inputDir)
	if err != nil {
		return Summary{}, err
	}
	d.summary = Summary{Discovered: len(paths)}
	if len(paths) == 0 {
		d.log.Info("no PDFs found", "dir", inputDir)
		return d.summary, nil
	}

	manifest, err := render.LoadManifest(d.renderer.OutDir)
	if err != nil {
		return d.summary, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.opts.Workers)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			d.processOne(gctx, path, manifest)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return d.summary, err
	}
	return d.summary, ctx.Err()
}

// discover lists PDFs in source order, sorted for a stable run order.
func discover(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

func (d *Driver) processOne(ctx context.Context, path string, manifest *render.Manifest) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	state := NewDocument(path, name)
	log := d.log.With("document", name)

	slug := extractor.Slug(name)
	outPath := d.renderer.OutputPath(&extractor.Document{Path: path, Name: name})
	if !d.opts.Force {
		if _, err := os.Stat(outPath); err == nil {
			d.indexMu.Lock()
			_, indexed := manifest.Lookup(slug)
			d.indexMu.Unlock()
			if indexed {
				log.Info("output exists, skipping", "path", outPath)
				state.SetStatus(StatusSkipped, "idempotent")
				d.tally(func(s *Summary) { s.Skipped++ })
				return
			}
			// A crash between the page write and the index write leaves
			// an orphaned page; reprocess so the index picks it up.
			log.Warn("output exists but index entry is missing, reprocessing", "path", outPath)
		}
	}

	runCtx := ctx
	ctx, cancel := context.WithTimeout(ctx, d.opts.DocumentTimeout)
	defer cancel()

	doc, pages, err := d.extractor.Extract(path)
	if err != nil {
		log.Error("extraction failed", "error", err)
		state.AddError(err.Error())
		state.SetStatus(StatusFailed, "extracting")
		d.tally(func(s *Summary) { s.Failed++ })
		return
	}
	state.SetPages(len(pages))
	state.SetStatus(StatusExtracted, "extracted")

	root := topics.Assemble(doc, pages)
	state.SetTotalTopics(max(root.TopicCount(), 1))
	state.SetStatus(StatusAssembled, "assembled")
	log.Info("assembled topics", "topics", root.TopicCount(), "pages", len(pages))

	state.SetStatus(StatusEnriching, "enriching")
	d.enrichTree(ctx, root, pages, state, log)
	if runCtx.Err() != nil {
		log.Error("run cancelled", "error", runCtx.Err())
		state.AddError(runCtx.Err().Error())
		state.SetStatus(StatusFailed, "enriching")
		d.tally(func(s *Summary) { s.Failed++ })
		return
	}
	if ctx.Err() != nil {
		// The document deadline fired. Remaining topics carry failure
		// placeholders, so the page still renders with partial results.
		log.Warn("document timed out, rendering partial results", "error", ctx.Err())
		state.AddError(ctx.Err().Error())
	}

	written, docStats, err := d.renderer.WriteDocument(doc, root)
	if err != nil {
		log.Error("render failed", "error", err)
		state.AddError(err.Error())
		state.SetStatus(StatusFailed, "rendering")
		d.tally(func(s *Summary) { s.Failed++ })
		return
	}
	state.SetStatus(StatusRendered, "done")

	info := extractor.Subject(doc.Path)
	rel, relErr := filepath.Rel(d.renderer.OutDir, written)
	if relErr != nil {
		rel = filepath.Base(written)
	}
	entry := render.Entry{
		Slug:        slug,
		Title:       info.Title,
		Icon:        info.Icon,
		File:        filepath.ToSlash(rel),
		SourcePDF:   filepath.Base(doc.Path),
		Stats:       docStats,
		ProcessedAt: time.Now().UTC(),
	}

	d.indexMu.Lock()
	manifest.Merge(entry)
	writeErr := manifest.Write(d.renderer.OutDir)
	d.indexMu.Unlock()
	if writeErr != nil {
		log.Error("index write failed", "error", writeErr)
	}

	snap := state.Snapshot()
	log.Info("document rendered",
		"file", entry.File,
		"topics_enriched", snap.Topics.Enriched,
		"topics_failed", snap.Topics.Failed,
		"concepts", docStats.Concepts,
		"mcqs", docStats.MCQs,
		"subjective", docStats.Subjective)

	d.tally(func(s *Summary) {
		s.Processed++
		s.Topics += snap.Topics.Total
		s.Concepts += docStats.Concepts
		s.MCQs += docStats.MCQs
		s.Subjective += docStats.Subjective
	})
}

// enrichTree enriches every topic with its own page text. A topic
// failure is recorded on the node and processing moves on; once the
// document deadline passes, the remaining topics are marked failed so
// the page can still render.
func (d *Driver) enrichTree(ctx context.Context, root *topics.Node, pages []extractor.Page, state *Document, log *slog.Logger) {
	root.Walk(func(n *topics.Node) {
		if n.Depth == 0 && len(n.Children) > 0 {
			// Front matter before the first heading stays unenriched.
			return
		}
		title := n.Title
		if n.Depth == 0 {
			title = extractor.Subject(state.Path).Title
		}
		if err := ctx.Err(); err != nil {
			// Deadline hit before this topic's call: stamp a failure so
			// the rendered page shows a placeholder instead of silently
			// dropping the content.
			res := enrich.Failure(err.Error())
			n.Enrichment = &res
			state.AddError(fmt.Sprintf("topic %q: %s", title, err))
			state.IncrTopic(false)
			return
		}
		excerpt := chunker.BuildExcerpt(topicText(n, pages), d.opts.MaxTopicTokens)
		res := d.enricher.Enrich(ctx, title, excerpt)
		n.Enrichment = &res
		if res.Failed {
			log.Warn("topic enrichment failed", "topic", title, "reason", res.Reason)
			state.AddError(fmt.Sprintf("topic %q: %s", title, res.Reason))
			state.IncrTopic(false)
			return
		}
		state.IncrTopic(true)
	})
}

// topicText is the enrichment input for one node. Leaves use their full
// subtree text; topics with subtopics use only their own pages so the
// subtopic content is not generated twice.
func topicText(n *topics.Node, pages []extractor.Page) string {
	if len(n.Children) == 0 {
		return topics.TopicText(n, pages)
	}
	own := &topics.Node{Title: n.Title, Depth: n.Depth, Pages: n.Pages}
	return topics.TopicText(own, pages)
}

func (d *Driver) tally(fn func(*Summary)) {
	d.sumMu.Lock()
	defer d.sumMu.Unlock()
	fn(&d.summary)
}
