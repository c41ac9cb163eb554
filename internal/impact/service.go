package impact

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/ecobin-app/ecobin/internal/store"
	"github.com/ecobin-app/ecobin/internal/timerange"
	"github.com/ecobin-app/ecobin/internal/waste"
)

// Total is the aggregate impact over a time window. Missing fields in any
// persisted record sum as zero.
type Total struct {
	CarbonSaved     float64 `json:"carbon_saved"`
	TreesEquivalent float64 `json:"trees_equivalent"`
	WaterSaved      float64 `json:"water_saved"`
	EnergySaved     float64 `json:"energy_saved"`
	TotalItems      int     `json:"total_items"`
}

// Service computes and persists impact records over the local store.
type Service struct {
	store *store.Store
	log   zerolog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewService creates an impact service backed by the given store.
func NewService(s *store.Store, logger zerolog.Logger) *Service {
	return &Service{
		store: s,
		log:   logger.With().Str("component", "impact").Logger(),
		now:   time.Now,
	}
}

// Record computes the impact for a waste record, persists it, and returns
// it. The write completes (or fails) before the caller sees success; each
// call mints a new record identifier even for identical inputs.
func (s *Service) Record(ctx context.Context, rec waste.Record) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	impactRec := Record{
		ID:          ulid.Make().String(),
		WasteItemID: rec.ID,
		Metrics:     Compute(rec),
		RecordedAt:  s.now().UTC(),
	}

	if err := s.store.Put(store.ImpactData, impactRec.ID, impactRec); err != nil {
		return Record{}, fmt.Errorf("storing impact record: %w", err)
	}

	s.log.Info().
		Str("id", impactRec.ID).
		Str("waste_item_id", rec.ID).
		Float64("carbon_saved", impactRec.CarbonSaved).
		Msg("impact record stored")

	return impactRec, nil
}

// Records returns impact records whose recorded-at timestamp falls inside
// the requested window.
func (s *Service) Records(rng timerange.Range) ([]Record, error) {
	records, err := store.GetAllRecords[Record](s.store, store.ImpactData)
	if err != nil {
		return nil, fmt.Errorf("loading impact records: %w", err)
	}

	return timerange.Filter(records, func(r Record) time.Time { return r.RecordedAt }, rng, s.now()), nil
}

// Total sums impact metrics over the requested window.
func (s *Service) Total(rng timerange.Range) (Total, error) {
	records, err := s.Records(rng)
	if err != nil {
		return Total{}, err
	}

	total := Total{TotalItems: len(records)}
	for _, rec := range records {
		total.CarbonSaved += rec.CarbonSaved
		total.TreesEquivalent += rec.TreesEquivalent
		total.WaterSaved += rec.WaterSaved
		total.EnergySaved += rec.EnergySaved
	}
	return total, nil
}
