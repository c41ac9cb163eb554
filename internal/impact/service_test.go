package impact

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecobin-app/ecobin/internal/store"
	"github.com/ecobin-app/ecobin/internal/timerange"
	"github.com/ecobin-app/ecobin/internal/waste"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st, err := store.Open(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	return NewService(st, zerolog.Nop())
}

func TestRecordPersistsBeforeReturn(t *testing.T) {
	svc := newTestService(t)

	wasteRec := waste.Record{ID: "waste-1", Category: waste.Plastic, Weight: 2.0}
	got, err := svc.Record(context.Background(), wasteRec)
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "waste-1", got.WasteItemID)
	assert.InDelta(t, 3.0, got.CarbonFootprint, 1e-9)
	assert.InDelta(t, 2.4, got.CarbonSaved, 1e-9)

	stored, err := store.GetRecord[Record](svc.store, store.ImpactData, got.ID)
	require.NoError(t, err)
	assert.Equal(t, got.ID, stored.ID)
	assert.Equal(t, got.Metrics, stored.Metrics)
}

func TestRecordMintsFreshIDs(t *testing.T) {
	svc := newTestService(t)
	wasteRec := waste.Record{ID: "waste-1", Category: waste.Glass, Weight: 1.0}

	first, err := svc.Record(context.Background(), wasteRec)
	require.NoError(t, err)
	second, err := svc.Record(context.Background(), wasteRec)
	require.NoError(t, err)

	// Identical derived values, distinct identities.
	assert.Equal(t, first.Metrics, second.Metrics)
	assert.NotEqual(t, first.ID, second.ID)

	count, err := svc.store.Count(store.ImpactData)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestTotal(t *testing.T) {
	svc := newTestService(t)
	now := time.Date(2024, time.November, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	seedAt := func(id string, metrics Metrics, at time.Time) {
		rec := Record{ID: id, WasteItemID: "w-" + id, Metrics: metrics, RecordedAt: at}
		require.NoError(t, svc.store.Put(store.ImpactData, id, rec))
	}

	seedAt("a", Metrics{CarbonSaved: 2.4, TreesEquivalent: 0.11, WaterSaved: 200, EnergySaved: 100}, now.AddDate(0, 0, -1))
	seedAt("b", Metrics{CarbonSaved: 0.16, TreesEquivalent: 0.007, WaterSaved: 100, EnergySaved: 50}, now.AddDate(0, 0, -2))
	// Partially written record: missing fields sum as zero.
	seedAt("c", Metrics{}, now.AddDate(0, 0, -3))
	// Outside the week window.
	seedAt("d", Metrics{CarbonSaved: 99, WaterSaved: 9999}, now.AddDate(0, 0, -30))

	total, err := svc.Total(timerange.Week)
	require.NoError(t, err)

	assert.Equal(t, 3, total.TotalItems)
	assert.InDelta(t, 2.56, total.CarbonSaved, 1e-9)
	assert.InDelta(t, 0.117, total.TreesEquivalent, 1e-9)
	assert.InDelta(t, 300, total.WaterSaved, 1e-9)
	assert.InDelta(t, 150, total.EnergySaved, 1e-9)
}

func TestTotalEmptyWindow(t *testing.T) {
	svc := newTestService(t)

	total, err := svc.Total(timerange.Year)
	require.NoError(t, err)
	assert.Equal(t, Total{}, total)
}

func TestTotalAllRange(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Record(context.Background(), waste.Record{ID: "w1", Category: waste.Paper, Weight: 1})
	require.NoError(t, err)

	total, err := svc.Total(timerange.All)
	require.NoError(t, err)
	assert.Equal(t, 1, total.TotalItems)
	assert.InDelta(t, 0.64, total.CarbonSaved, 1e-9)
}
