package community

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecobin-app/ecobin/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	svc, err := NewService(st, zerolog.Nop())
	require.NoError(t, err)
	return svc, st
}

func TestSeedingIsIdempotent(t *testing.T) {
	svc, st := newTestService(t)

	before, err := st.Count(store.CommunityData)
	require.NoError(t, err)
	require.Positive(t, before)

	// A second service over the same store must not duplicate fixtures.
	again, err := NewService(st, zerolog.Nop())
	require.NoError(t, err)

	after, err := st.Count(store.CommunityData)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	_ = svc
	_ = again
}

func TestChallenges(t *testing.T) {
	svc, _ := newTestService(t)

	challenges, err := svc.Challenges()
	require.NoError(t, err)
	require.Len(t, challenges, 3)
	for _, c := range challenges {
		assert.Equal(t, typeChallenge, c.Type)
		assert.NotEmpty(t, c.Name)
		assert.Positive(t, c.DurationDays)
	}
}

func TestLeaderboardOrderedByPoints(t *testing.T) {
	svc, _ := newTestService(t)

	entries, err := svc.Leaderboard()
	require.NoError(t, err)
	require.Len(t, entries, 5)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Points, entries[i].Points)
	}
	assert.Equal(t, "Sarah M.", entries[0].Name)
}

func TestEventsAndArticles(t *testing.T) {
	svc, _ := newTestService(t)

	events, err := svc.Events()
	require.NoError(t, err)
	assert.Len(t, events, 2)

	articles, err := svc.Articles()
	require.NoError(t, err)
	assert.Len(t, articles, 3)
}

func TestCommunityStats(t *testing.T) {
	svc, _ := newTestService(t)

	stats, err := svc.CommunityStats()
	require.NoError(t, err)
	assert.Equal(t, 1247, stats.TotalMembers)
	assert.Equal(t, 3, stats.ActiveChallenges)
	assert.Equal(t, 82, stats.TreesEquivalent)
}
