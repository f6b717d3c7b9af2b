package enrich

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Completer is the model call the gateway wraps. *Client satisfies it;
// tests substitute fakes.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Options configures a Gateway for one batch run.
type Options struct {
	MaxRetries        int
	BackoffBase       time.Duration
	RequestsPerSecond float64
	MinConcepts       int
	MinMCQs           int
	MinQA             int
}

// Gateway turns topic text into learning content through the model API.
// Transient failures are retried with exponential backoff; a terminal
// failure becomes a Result failure so the document pipeline continues.
type Gateway struct {
	client  Completer
	limiter *rate.Limiter
	opts    Options
	stats   *Stats
	log     *slog.Logger
}

func NewGateway(client Completer, opts Options, log *slog.Logger) *Gateway {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = DefaultMaxRetries
	}
	if opts.MinConcepts <= 0 {
		opts.MinConcepts = 1
	}
	if opts.MinMCQs <= 0 {
		opts.MinMCQs = 3
	}
	if opts.MinQA <= 0 {
		opts.MinQA = 3
	}
	g := &Gateway{
		client: client,
		opts:   opts,
		stats:  NewStats(time.Hour),
		log:    log,
	}
	if opts.RequestsPerSecond > 0 {
		g.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}
	return g
}

// Enrich generates concepts, MCQs and subjective Q&A for one topic.
// The excerpt must be non-empty and pre-clipped to the context budget.
func (g *Gateway) Enrich(ctx context.Context, topic, excerpt string) Result {
	if strings.TrimSpace(excerpt) == "" {
		return Failure("empty topic text")
	}
	prompt := BuildEnrichmentPrompt(topic, excerpt, g.opts.MinConcepts, g.opts.MinMCQs, g.opts.MinQA)

	var lastErr error
	for attempt := 0; attempt < g.opts.MaxRetries; attempt++ {
		if g.limiter != nil {
			if err := g.limiter.Wait(ctx); err != nil {
				return Failure(err.Error())
			}
		}

		start := time.Now()
		raw, err := g.client.Complete(ctx, prompt)
		g.stats.Record(time.Since(start).Milliseconds())

		if err == nil {
			res, perr := ParseResponse(raw)
			if perr != nil {
				// Malformed content is a deterministic model failure,
				// not a transient one.
				g.log.Warn("enrichment response rejected", "topic", topic, "error", perr)
				return Failure(perr.Error())
			}
			return res
		}

		lastErr = err
		if !IsRetryable(err) {
			break
		}
		g.log.Warn("retryable enrichment error", "topic", topic, "attempt", attempt, "error", err)
		select {
		case <-time.After(Backoff(attempt, g.opts.BackoffBase)):
		case <-ctx.Done():
			return Failure(ctx.Err().Error())
		}
	}
	return Failure(lastErr.Error())
}

// LatencySnapshot reports model call latency for the current window.
func (g *Gateway) LatencySnapshot() StatsSnapshot {
	return g.stats.Snapshot()
}
