// Package settings manages the singleton user settings record.
package settings

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ecobin-app/ecobin/internal/store"
)

// settingsKey is the fixed key of the singleton record.
const settingsKey = "user"

// Valid theme and unit values.
var (
	themes = map[string]bool{"light": true, "dark": true}
	units  = map[string]bool{"metric": true, "imperial": true}
)

// Validation errors.
var (
	ErrInvalidTheme = errors.New("theme must be light or dark")
	ErrInvalidUnits = errors.New("units must be metric or imperial")
)

// Privacy holds the user's data-sharing preferences.
type Privacy struct {
	DataSharing bool `json:"data_sharing"`
	Analytics   bool `json:"analytics"`
}

// UserSettings is the per-installation settings record.
type UserSettings struct {
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	Theme         string  `json:"theme"`
	Notifications bool    `json:"notifications"`
	Units         string  `json:"units"`
	Privacy       Privacy `json:"privacy"`
}

// Defaults returns the settings used before the user saves any.
func Defaults() UserSettings {
	return UserSettings{
		Name:          "Eco Warrior",
		Location:      "Nairobi, Kenya",
		Theme:         "light",
		Notifications: true,
		Units:         "metric",
		Privacy: Privacy{
			DataSharing: false,
			Analytics:   true,
		},
	}
}

// Validate checks enum-valued fields.
func (s UserSettings) Validate() error {
	if !themes[s.Theme] {
		return fmt.Errorf("%w: got %q", ErrInvalidTheme, s.Theme)
	}
	if !units[s.Units] {
		return fmt.Errorf("%w: got %q", ErrInvalidUnits, s.Units)
	}
	return nil
}

// Service reads and writes the singleton settings record.
type Service struct {
	store *store.Store
	log   zerolog.Logger
}

// NewService creates a settings service backed by the given store.
func NewService(s *store.Store, logger zerolog.Logger) *Service {
	return &Service{
		store: s,
		log:   logger.With().Str("component", "settings").Logger(),
	}
}

// Load returns the stored settings. When no settings exist, or the read
// fails, it returns the defaults so the rest of the application keeps
// running; storage failures are logged, never propagated.
func (s *Service) Load() UserSettings {
	got, err := store.GetRecord[UserSettings](s.store, store.Settings, settingsKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log.Warn().Err(err).Msg("failed to load settings, using defaults")
		}
		return Defaults()
	}
	return got
}

// Save validates and persists the settings record.
func (s *Service) Save(settings UserSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.store.Put(store.Settings, settingsKey, settings); err != nil {
		return fmt.Errorf("storing settings: %w", err)
	}
	return nil
}
