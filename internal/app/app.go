// Package app wires the services together into one explicit application
// state struct, constructed once at startup and handed to the presentation
// layer. No service reaches for globals.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ecobin-app/ecobin/internal/community"
	"github.com/ecobin-app/ecobin/internal/config"
	"github.com/ecobin-app/ecobin/internal/impact"
	"github.com/ecobin-app/ecobin/internal/settings"
	"github.com/ecobin-app/ecobin/internal/store"
	"github.com/ecobin-app/ecobin/internal/syncer"
	"github.com/ecobin-app/ecobin/internal/timerange"
	"github.com/ecobin-app/ecobin/internal/waste"
)

// App is the assembled application.
type App struct {
	Config     *config.Config
	Store      *store.Store
	Waste      *waste.Service
	Impact     *impact.Service
	Settings   *settings.Service
	Community  *community.Service
	Syncer     *syncer.Runner
	Classifier waste.Classifier
	Detector   syncer.Detector
	Log        zerolog.Logger
}

// Overview pairs waste statistics with impact totals for one window.
type Overview struct {
	Stats  waste.Stats
	Impact impact.Total
}

// New opens the store and constructs every service.
func New(cfg *config.Config, logger zerolog.Logger) (*App, error) {
	st, err := store.Open(cfg.DataDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening store at %s: %w", cfg.DataDir, err)
	}

	communitySvc, err := community.NewService(st, logger)
	if err != nil {
		return nil, fmt.Errorf("initializing community data: %w", err)
	}

	wasteSvc := waste.NewService(st, logger)
	detector := syncer.NewStaticDetector(!cfg.Offline)

	return &App{
		Config:     cfg,
		Store:      st,
		Waste:      wasteSvc,
		Impact:     impact.NewService(st, logger),
		Settings:   settings.NewService(st, logger),
		Community:  communitySvc,
		Syncer:     syncer.NewRunner(wasteSvc, syncer.NewNopPusher(logger), detector, logger),
		Classifier: waste.NewSimulatedClassifier(time.Now().UnixNano()),
		Detector:   detector,
		Log:        logger,
	}, nil
}

// LogWaste creates a waste record and its impact record. The impact write
// happens only after the waste write is acknowledged, and LogWaste returns
// success only once both are durable.
func (a *App) LogWaste(ctx context.Context, in waste.LogInput) (waste.Record, impact.Record, error) {
	userSettings := a.Settings.Load()

	rec, err := a.Waste.Create(ctx, in, userSettings.Location, a.Detector.Online())
	if err != nil {
		return waste.Record{}, impact.Record{}, err
	}

	impactRec, err := a.Impact.Record(ctx, rec)
	if err != nil {
		return waste.Record{}, impact.Record{}, fmt.Errorf("deriving impact for %s: %w", rec.ID, err)
	}

	return rec, impactRec, nil
}

// GetOverview loads waste statistics and impact totals for the window.
// The two store reads are independent and run concurrently.
func (a *App) GetOverview(ctx context.Context, rng timerange.Range) (Overview, error) {
	var overview Overview

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := a.Waste.Stats(rng)
		if err != nil {
			return err
		}
		overview.Stats = stats
		return nil
	})
	g.Go(func() error {
		total, err := a.Impact.Total(rng)
		if err != nil {
			return err
		}
		overview.Impact = total
		return nil
	})

	if err := g.Wait(); err != nil {
		return Overview{}, err
	}
	return overview, nil
}
