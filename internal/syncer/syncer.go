// Package syncer implements the best-effort sync pass over pending waste
// records. The push itself is a stub: no remote service exists, so the
// default Pusher only logs. Connectivity is a label consumed at record
// creation time; it never gates local reads or writes.
package syncer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ecobin-app/ecobin/internal/waste"
)

// Detector reports whether the application currently counts as online.
// New waste records are stamped pending or synced from this signal.
type Detector interface {
	Online() bool
}

// StaticDetector is a Detector fixed at construction, typically from the
// --offline flag or configuration.
type StaticDetector struct {
	online bool
}

// NewStaticDetector creates a detector that always reports the given state.
func NewStaticDetector(online bool) StaticDetector {
	return StaticDetector{online: online}
}

// Online implements Detector.
func (d StaticDetector) Online() bool {
	return d.online
}

// Pusher transmits one waste record to the remote service. A real
// implementation would carry retries and its own failure contract.
type Pusher interface {
	Push(ctx context.Context, rec waste.Record) error
}

// NopPusher is the default Pusher: it accepts every record without
// transmitting anything.
type NopPusher struct {
	log zerolog.Logger
}

// NewNopPusher creates the logging no-op pusher.
func NewNopPusher(logger zerolog.Logger) NopPusher {
	return NopPusher{log: logger.With().Str("component", "syncer").Logger()}
}

// Push implements Pusher.
func (p NopPusher) Push(_ context.Context, rec waste.Record) error {
	p.log.Debug().Str("id", rec.ID).Msg("push skipped, no remote configured")
	return nil
}

// Result summarizes one sync pass.
type Result struct {
	Scanned int
	Synced  int
	Failed  int
}

// Runner scans for pending records and pushes them.
type Runner struct {
	waste    *waste.Service
	pusher   Pusher
	detector Detector
	log      zerolog.Logger
}

// NewRunner creates a sync runner.
func NewRunner(wasteSvc *waste.Service, pusher Pusher, detector Detector, logger zerolog.Logger) *Runner {
	return &Runner{
		waste:    wasteSvc,
		pusher:   pusher,
		detector: detector,
		log:      logger.With().Str("component", "syncer").Logger(),
	}
}

// Run performs one best-effort sync pass: every pending record is pushed
// and, on success, transitioned to synced. Individual push failures are
// counted and logged but do not abort the pass. Running while offline is
// a no-op.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	if !r.detector.Online() {
		r.log.Info().Msg("offline, skipping sync pass")
		return Result{}, nil
	}

	pending, err := r.waste.Pending()
	if err != nil {
		return Result{}, fmt.Errorf("scanning pending records: %w", err)
	}

	result := Result{Scanned: len(pending)}
	for _, rec := range pending {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := r.pusher.Push(ctx, rec); err != nil {
			result.Failed++
			r.log.Warn().Err(err).Str("id", rec.ID).Msg("push failed")
			continue
		}

		if err := r.waste.MarkSynced(rec.ID); err != nil {
			result.Failed++
			r.log.Warn().Err(err).Str("id", rec.ID).Msg("failed to mark record synced")
			continue
		}
		result.Synced++
	}

	r.log.Info().
		Int("scanned", result.Scanned).
		Int("synced", result.Synced).
		Int("failed", result.Failed).
		Msg("sync pass complete")

	return result, nil
}
