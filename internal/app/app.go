// Package app exposes the application facade: session lifecycle, interactive
// study operations, and access to the derived views. Frontends talk to App
// and never touch the API client or the mirror directly.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mrdjohnson/sukistudy/internal/config"
	"github.com/mrdjohnson/sukistudy/internal/logger"
	"github.com/mrdjohnson/sukistudy/internal/query"
	"github.com/mrdjohnson/sukistudy/internal/store"
	"github.com/mrdjohnson/sukistudy/internal/syncer"
	"github.com/mrdjohnson/sukistudy/models"
)

// App wires the remote client, the local mirror, and the background sync job
// into the operations a frontend calls.
type App struct {
	api      StudyAPI
	storages *store.Storages
	engine   *syncer.Engine
	job      *syncer.Job
	cfg      config.Sync
	logger   *logger.Logger
}

// NewApp assembles the facade over already-constructed dependencies.
func NewApp(remote StudyAPI, storages *store.Storages, engine *syncer.Engine, cfg config.Sync, log *logger.Logger) *App {
	return &App{
		api:      remote,
		storages: storages,
		engine:   engine,
		job:      syncer.NewJob(engine),
		cfg:      cfg,
		logger:   log,
	}
}

// Login validates the token against the remote profile endpoint, persists it
// and the profile locally, and starts the background sync job. The stored
// credential survives restarts; see RestoreSession.
func (a *App) Login(ctx context.Context, token string) (models.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.User{}, ErrEmptyToken
	}

	previous := a.storedToken(ctx)
	a.api.SetToken(token)

	user, err := a.api.GetUser(ctx)
	if err != nil {
		a.api.SetToken(previous)
		return models.User{}, fmt.Errorf("validate token: %w", err)
	}

	if err = a.storages.Users.Upsert(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("store user profile: %w", err)
	}
	if err = a.storages.KV.Set(ctx, store.KeyAPIToken, token); err != nil {
		return models.User{}, fmt.Errorf("store credential: %w", err)
	}

	a.logger.Info().Str("func", "App.Login").Str("user", user.Username).Msg("logged in")
	a.job.Start(ctx, a.cfg.Interval)

	return user, nil
}

// RestoreSession resumes a previous login from the stored credential and
// starts the background sync job. It returns ErrNoSession when none exists.
func (a *App) RestoreSession(ctx context.Context) (models.User, error) {
	token, err := a.storages.KV.Get(ctx, store.KeyAPIToken)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrNoSession
		}
		return models.User{}, fmt.Errorf("read stored credential: %w", err)
	}

	a.api.SetToken(token)

	// the mirrored profile may be stale; the sync cycle refreshes it
	user, err := a.storages.Users.Get(ctx)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return models.User{}, fmt.Errorf("read stored profile: %w", err)
	}

	a.job.Start(ctx, a.cfg.Interval)
	return user, nil
}

// Logout stops background syncing, wipes all mirrored data, and discards the
// credential both locally and on the client.
func (a *App) Logout(ctx context.Context) error {
	a.job.Stop()

	if err := a.storages.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear local data: %w", err)
	}
	if err := a.storages.KV.Delete(ctx, store.KeyAPIToken); err != nil {
		return fmt.Errorf("remove credential: %w", err)
	}
	a.api.SetToken("")

	a.logger.Info().Str("func", "App.Logout").Msg("logged out")
	return nil
}

// Sync runs one sync cycle outside the background schedule, for a manual
// refresh action.
func (a *App) Sync(ctx context.Context) error {
	return a.engine.Sync(ctx)
}

// Syncing reports whether a sync cycle is currently in flight.
func (a *App) Syncing() bool {
	return a.engine.InProgress()
}

// SetOnlineCheck installs the connectivity probe consulted before each sync
// cycle.
func (a *App) SetOnlineCheck(fn func(ctx context.Context) bool) {
	a.engine.SetOnlineCheck(fn)
}

// Close stops the background sync job. The facade is unusable afterwards.
func (a *App) Close() {
	a.job.Stop()
}

// WatchAllSubjects returns an unstarted watcher over every mirrored
// assignment joined to its subject.
func (a *App) WatchAllSubjects() *query.Watcher {
	return query.NewAllSubjectsWatcher(a.storages, a.logger)
}

// WatchLearnedSubjects returns an unstarted watcher over the subjects the
// user has started learning, soonest-reviewable first.
func (a *App) WatchLearnedSubjects() *query.Watcher {
	return query.NewLearnedSubjectsWatcher(a.storages, a.logger)
}

func (a *App) storedToken(ctx context.Context) string {
	token, err := a.storages.KV.Get(ctx, store.KeyAPIToken)
	if err != nil {
		return ""
	}
	return token
}
