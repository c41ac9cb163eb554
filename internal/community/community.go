// Package community serves the static community content: challenges,
// leaderboard, local events, and educational articles. The data is fixture
// content seeded once into the community partition; there is no live
// multi-user state behind it.
package community

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/ecobin-app/ecobin/internal/store"
)

// Challenge is a community waste-reduction challenge.
type Challenge struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	DurationDays int    `json:"duration_days"`
	Participants int    `json:"participants"`
	Impact       string `json:"impact"`
}

// LeaderboardEntry is one row of the community leaderboard.
type LeaderboardEntry struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Name          string `json:"name"`
	Points        int    `json:"points"`
	WasteDiverted string `json:"waste_diverted"`
	StreakDays    int    `json:"streak_days"`
}

// Event is a local community event.
type Event struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Name         string `json:"name"`
	Date         string `json:"date"`
	Location     string `json:"location"`
	Participants int    `json:"participants"`
	Description  string `json:"description"`
}

// Article is a piece of educational content.
type Article struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Kind     string `json:"kind"`
	ReadTime string `json:"read_time"`
}

// Stats summarizes aggregate community activity.
type Stats struct {
	TotalMembers       int    `json:"total_members"`
	ActiveChallenges   int    `json:"active_challenges"`
	TotalWasteDiverted string `json:"total_waste_diverted"`
	CarbonSaved        string `json:"carbon_saved"`
	TreesEquivalent    int    `json:"trees_equivalent"`
}

// Record type tags within the community partition.
const (
	typeChallenge   = "challenge"
	typeLeaderboard = "leaderboard"
	typeEvent       = "event"
	typeArticle     = "article"
)

// Service reads community fixture data from the local store.
type Service struct {
	store *store.Store
	log   zerolog.Logger
}

// NewService creates a community service and seeds the fixture content if
// the partition is empty. Seeding is idempotent across restarts.
func NewService(s *store.Store, logger zerolog.Logger) (*Service, error) {
	svc := &Service{
		store: s,
		log:   logger.With().Str("component", "community").Logger(),
	}

	if err := svc.seed(); err != nil {
		return nil, err
	}
	return svc, nil
}

// seed writes the fixture records when the partition is empty.
func (s *Service) seed() error {
	count, err := s.store.Count(store.CommunityData)
	if err != nil {
		return fmt.Errorf("checking community partition: %w", err)
	}
	if count > 0 {
		return nil
	}

	put := func(id string, rec any) error {
		if err := s.store.Put(store.CommunityData, id, rec); err != nil {
			return fmt.Errorf("seeding community record %s: %w", id, err)
		}
		return nil
	}

	for _, c := range fixtureChallenges {
		if err := put(c.ID, c); err != nil {
			return err
		}
	}
	for _, e := range fixtureLeaderboard {
		if err := put(e.ID, e); err != nil {
			return err
		}
	}
	for _, e := range fixtureEvents {
		if err := put(e.ID, e); err != nil {
			return err
		}
	}
	for _, a := range fixtureArticles {
		if err := put(a.ID, a); err != nil {
			return err
		}
	}

	s.log.Info().Msg("community fixtures seeded")
	return nil
}

// listByType decodes all partition records whose type tag matches.
func listByType[T any](s *Service, recordType string) ([]T, error) {
	raws, err := s.store.GetAll(store.CommunityData)
	if err != nil {
		return nil, fmt.Errorf("loading community records: %w", err)
	}

	out := make([]T, 0)
	for _, raw := range raws {
		var tag struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(raw, &tag); err != nil {
			return nil, fmt.Errorf("malformed community record: %w", err)
		}
		if tag.Type != recordType {
			continue
		}
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("malformed community record: %w", err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// Challenges returns the active community challenges.
func (s *Service) Challenges() ([]Challenge, error) {
	return listByType[Challenge](s, typeChallenge)
}

// Leaderboard returns leaderboard entries ordered by points descending.
func (s *Service) Leaderboard() ([]LeaderboardEntry, error) {
	entries, err := listByType[LeaderboardEntry](s, typeLeaderboard)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Points > entries[j].Points })
	return entries, nil
}

// Events returns upcoming local events.
func (s *Service) Events() ([]Event, error) {
	return listByType[Event](s, typeEvent)
}

// Articles returns the educational content.
func (s *Service) Articles() ([]Article, error) {
	return listByType[Article](s, typeArticle)
}

// CommunityStats returns the aggregate community figures.
func (s *Service) CommunityStats() (Stats, error) {
	challenges, err := s.Challenges()
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		TotalMembers:       1247,
		ActiveChallenges:   len(challenges),
		TotalWasteDiverted: "2.4 tons",
		CarbonSaved:        "1.8 tons CO2",
		TreesEquivalent:    82,
	}, nil
}
