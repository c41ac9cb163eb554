package waste

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecobin-app/ecobin/internal/store"
	"github.com/ecobin-app/ecobin/internal/timerange"
)

// Stats summarizes waste records over a time window.
type Stats struct {
	TotalItems        int              `json:"total_items"`
	TotalWeight       float64          `json:"total_weight"`
	CategoryBreakdown map[Category]int `json:"category_breakdown"`
	DailyAverage      float64          `json:"daily_average"`
	RecyclingRate     float64          `json:"recycling_rate"`
}

// Service provides waste record persistence and statistics over the local
// store.
type Service struct {
	store *store.Store
	log   zerolog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewService creates a waste service backed by the given store.
func NewService(s *store.Store, logger zerolog.Logger) *Service {
	return &Service{
		store: s,
		log:   logger.With().Str("component", "waste").Logger(),
		now:   time.Now,
	}
}

// Create validates the input, builds the record, and persists it. The
// record is durable when Create returns without error.
func (s *Service) Create(ctx context.Context, in LogInput, fallbackLocation string, online bool) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	rec, err := NewRecord(in, fallbackLocation, online)
	if err != nil {
		return Record{}, err
	}

	if err := s.store.Put(store.WasteItems, rec.ID, rec); err != nil {
		return Record{}, fmt.Errorf("storing waste record: %w", err)
	}

	s.log.Info().
		Str("id", rec.ID).
		Str("category", rec.Category.String()).
		Float64("weight", rec.Weight).
		Str("sync_status", string(rec.SyncStatus)).
		Msg("waste record logged")

	return rec, nil
}

// Items returns waste records whose logged-at timestamp falls inside the
// requested window.
func (s *Service) Items(rng timerange.Range) ([]Record, error) {
	records, err := store.GetAllRecords[Record](s.store, store.WasteItems)
	if err != nil {
		return nil, fmt.Errorf("loading waste records: %w", err)
	}

	return timerange.Filter(records, func(r Record) time.Time { return r.LoggedAt }, rng, s.now()), nil
}

// Pending returns records still awaiting a sync pass, irrespective of time
// window.
func (s *Service) Pending() ([]Record, error) {
	records, err := store.GetAllRecords[Record](s.store, store.WasteItems)
	if err != nil {
		return nil, fmt.Errorf("loading waste records: %w", err)
	}

	pending := make([]Record, 0)
	for _, rec := range records {
		if rec.SyncStatus == SyncPending {
			pending = append(pending, rec)
		}
	}
	return pending, nil
}

// MarkSynced transitions a record from pending to synced. This is the one
// mutation a waste record permits after creation.
func (s *Service) MarkSynced(id string) error {
	rec, err := store.GetRecord[Record](s.store, store.WasteItems, id)
	if err != nil {
		return fmt.Errorf("loading waste record %s: %w", id, err)
	}

	if rec.SyncStatus == SyncSynced {
		return nil
	}

	if err := s.store.Put(store.WasteItems, id, rec.WithSyncStatus(SyncSynced)); err != nil {
		return fmt.Errorf("updating sync status for %s: %w", id, err)
	}
	return nil
}

// Stats aggregates waste records over the requested window.
//
// The daily average divides by the window's fixed nominal day count, not
// the elapsed calendar span. The recycling rate is the percentage of
// records in a recyclable category, defined as 0 when the window is empty.
func (s *Service) Stats(rng timerange.Range) (Stats, error) {
	items, err := s.Items(rng)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		TotalItems:        len(items),
		CategoryBreakdown: make(map[Category]int),
	}

	recyclable := 0
	for _, item := range items {
		stats.TotalWeight += item.Weight
		stats.CategoryBreakdown[item.Category]++
		if item.Category.Recyclable() {
			recyclable++
		}
	}

	stats.DailyAverage = float64(stats.TotalItems) / float64(rng.NominalDays())

	if stats.TotalItems > 0 {
		stats.RecyclingRate = float64(recyclable) / float64(stats.TotalItems) * 100
	}

	return stats, nil
}
