package extract

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/pdftext"
)

// Tier names the strategy that produced a record.
type Tier string

const (
	TierModel Tier = "model"
	TierRegex Tier = "regex"
)

// DefaultBackoffSchedule is the fixed wait sequence for transient model
// failures, consumed one slot per attempt.
func DefaultBackoffSchedule() []time.Duration {
	return []time.Duration{
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		16 * time.Second,
	}
}

// Config holds orchestrator behavior knobs.
type Config struct {
	// Schedule is the backoff schedule; nil selects DefaultBackoffSchedule.
	Schedule []time.Duration
	// Sleep waits for d or until ctx is done, reporting whether the full
	// wait elapsed. Nil selects a timer-based wait. Injectable so tests can
	// observe attempt counts and elapsed sleep without real delays.
	Sleep func(ctx context.Context, d time.Duration) bool
}

// Result is the terminal outcome of one parse call.
type Result struct {
	Record   JobRecord
	Tier     Tier
	Attempts int
	Duration time.Duration
	Pages    int
}

// Orchestrator runs the two-tier extraction state machine: try the
// generative tier under a bounded retry policy, fall back to the regex tier
// on unavailability, permanent failure, or retry exhaustion. Given extracted
// text it always terminates with exactly one JobRecord; the only fatal error
// is text extraction itself.
type Orchestrator struct {
	logger   *slog.Logger
	text     pdftext.TextExtractor
	model    FieldExtractor
	fallback *RegexStrategy
	schedule []time.Duration
	sleep    func(ctx context.Context, d time.Duration) bool
}

// NewOrchestrator wires the two tiers. model may be nil (fallback-only mode)
// and fallback nil selects the default pattern table.
func NewOrchestrator(logger *slog.Logger, cfg Config, text pdftext.TextExtractor, model FieldExtractor, fallback *RegexStrategy) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Schedule == nil {
		cfg.Schedule = DefaultBackoffSchedule()
	}
	if cfg.Sleep == nil {
		cfg.Sleep = sleepCtx
	}
	if fallback == nil {
		fallback = NewRegexStrategy(nil)
	}
	return &Orchestrator{
		logger:   logger,
		text:     text,
		model:    model,
		fallback: fallback,
		schedule: cfg.Schedule,
		sleep:    cfg.Sleep,
	}
}

// Parse extracts the document's text layer and runs the extraction state
// machine over it. A text-extraction failure propagates unmodified; no
// fallback exists with no text to process.
func (o *Orchestrator) Parse(ctx context.Context, r io.ReaderAt, size int64) (Result, error) {
	start := time.Now()

	textRes, err := o.text.Extract(ctx, r, size)
	if err != nil {
		return Result{}, err
	}

	res := o.ParseText(ctx, textRes.Text)
	res.Pages = textRes.Pages
	res.Duration = time.Since(start)
	return res, nil
}

// ParseText runs the retry/fallback state machine over already-extracted
// text. It always returns a complete record.
func (o *Orchestrator) ParseText(ctx context.Context, text string) Result {
	if o.model == nil || !o.model.Available() {
		// No credential is a normal configuration; no attempt is counted.
		o.logger.Warn("extract.model_unavailable", "hint", "no API key configured; using regex fallback")
		return Result{Record: o.fallback.Extract(text), Tier: TierRegex}
	}

	attempts := 0
	for i, delay := range o.schedule {
		attempts++
		rec, raw, err := o.model.ExtractFields(ctx, text)
		if err == nil {
			o.logger.Info("extract.model_ok", "attempts", attempts)
			return Result{Record: rec, Tier: TierModel, Attempts: attempts}
		}

		var blocked *BlockedError
		switch {
		case errors.Is(err, ErrModelUnavailable):
			o.logger.Warn("extract.model_unavailable", "hint", "extractor reported missing credential; using regex fallback")
			return Result{Record: o.fallback.Extract(text), Tier: TierRegex, Attempts: attempts}
		case errors.As(err, &blocked):
			// Permanent for this document: the safety filter will reject
			// the same prompt every time.
			o.logger.Warn("extract.model_blocked",
				"reason", blocked.Reason,
				"attempts", attempts,
			)
			return Result{Record: o.fallback.Extract(text), Tier: TierRegex, Attempts: attempts}
		default:
			o.logger.Warn("extract.model_attempt_failed",
				"attempt", attempts,
				"error", err,
				"raw_bytes", len(raw),
				"next_delay", delay,
			)
			if i == len(o.schedule)-1 {
				break
			}
			if !o.sleep(ctx, delay) {
				o.logger.Info("extract.backoff_cancelled", "attempts", attempts)
				return Result{Record: o.fallback.Extract(text), Tier: TierRegex, Attempts: attempts}
			}
		}
	}

	o.logger.Warn("extract.model_exhausted", "attempts", attempts)
	return Result{Record: o.fallback.Extract(text), Tier: TierRegex, Attempts: attempts}
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
