// Package service wraps the local extractor with logging, metrics, and the
// remote-normalizer fallback boundary.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/anvh/quickspend/internal/domain/parse"
	"github.com/anvh/quickspend/pkg/observability"
)

// RemoteNormalizer is the escalation path when local extraction fails: a
// smarter (typically LLM-backed) service that accepts the same context and
// returns a record shaped like the local one. It is an external
// collaborator; this package only defines the boundary and never assumes
// anything about its latency or availability.
type RemoteNormalizer interface {
	Normalize(ctx context.Context, rawInput string, opts parse.Options) (*parse.ParsedTransaction, error)
}

// ParseService orchestrates local extraction and the optional fallback.
type ParseService struct {
	parser     *parse.Parser
	normalizer RemoteNormalizer // nil: failures propagate to the caller
	logger     *slog.Logger
}

// NewParseService creates a parse service. normalizer may be nil.
func NewParseService(parser *parse.Parser, normalizer RemoteNormalizer, logger *slog.Logger) *ParseService {
	return &ParseService{
		parser:     parser,
		normalizer: normalizer,
		logger:     logger,
	}
}

// Parse runs local extraction to completion and, only after it has failed
// with a missing amount, escalates to the remote normalizer when one is
// configured. Local and remote are never composed concurrently.
func (s *ParseService) Parse(ctx context.Context, rawInput string, opts parse.Options) (*parse.ParsedTransaction, error) {
	mode := opts.InputMode
	if mode == "" {
		mode = "text"
	}

	start := time.Now()
	tx, err := s.parser.Parse(rawInput, opts)
	observability.ParseDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())

	if err == nil {
		observability.ParseRequestsTotal.WithLabelValues(mode, "ok").Inc()
		s.logger.Debug("parsed transaction locally",
			"mode", mode, "currency", tx.Currency, "type", tx.Type, "category", tx.Category)
		return tx, nil
	}

	if !errors.Is(err, parse.ErrNoAmountFound) {
		observability.ParseRequestsTotal.WithLabelValues(mode, "error").Inc()
		return nil, err
	}

	if s.normalizer == nil {
		observability.ParseRequestsTotal.WithLabelValues(mode, "no_amount").Inc()
		s.logger.Info("local extraction found no amount", "mode", mode)
		return nil, err
	}

	observability.NormalizerFallbacksTotal.Inc()
	s.logger.Info("escalating to remote normalizer", "mode", mode)

	remote, remoteErr := s.normalizer.Normalize(ctx, rawInput, opts)
	if remoteErr != nil {
		observability.ParseRequestsTotal.WithLabelValues(mode, "fallback_failed").Inc()
		s.logger.Warn("remote normalizer failed", "error", remoteErr)
		// Surface the original typed failure; the fallback is best effort.
		return nil, err
	}
	if remote == nil || remote.Amount <= 0 {
		observability.ParseRequestsTotal.WithLabelValues(mode, "fallback_invalid").Inc()
		return nil, err
	}

	observability.ParseRequestsTotal.WithLabelValues(mode, "fallback_ok").Inc()
	return remote, nil
}

// BatchResult is the outcome for one line of a batch parse, reported in
// input order. Err is non-nil for lines that produced no valid amount.
type BatchResult struct {
	Index int
	Line  string
	Tx    *parse.ParsedTransaction
	Err   error
}

type batchJob struct {
	index int
	line  string
}

// ParseBatch parses many lines on a bounded worker pool and returns results
// in input order. Per-line failures are recorded, never fatal; the only
// error returned is context cancellation.
func (s *ParseService) ParseBatch(ctx context.Context, lines []string, opts parse.Options) ([]BatchResult, error) {
	results := make([]BatchResult, len(lines))

	workerCount := runtime.GOMAXPROCS(0)
	if workerCount > len(lines) {
		workerCount = len(lines)
	}
	if workerCount < 1 {
		workerCount = 1
	}

	jobs := make(chan batchJob, workerCount)

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				if ctx.Err() != nil {
					return
				}
				tx, err := s.Parse(ctx, job.line, opts)
				results[job.index] = BatchResult{Index: job.index, Line: job.line, Tx: tx, Err: err}
			}
		}()
	}

	for i, line := range lines {
		select {
		case jobs <- batchJob{index: i, line: line}:
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, fmt.Errorf("batch parse canceled: %w", ctx.Err())
		}
	}
	close(jobs)
	wg.Wait()

	if ctx.Err() != nil {
		return nil, fmt.Errorf("batch parse canceled: %w", ctx.Err())
	}
	return results, nil
}
