package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/at-ishikawa/examprep/internal/config"
	"github.com/at-ishikawa/examprep/internal/content"
	"github.com/at-ishikawa/examprep/internal/database"
	"github.com/at-ishikawa/examprep/internal/identity"
	"github.com/at-ishikawa/examprep/internal/learning"
	"github.com/at-ishikawa/examprep/internal/report"
	"github.com/at-ishikawa/examprep/internal/speech"
)

var errPermissionDenied = errors.New("permission denied")

// accountProvider is an identity provider that can also list accounts.
type accountProvider interface {
	identity.Provider
	Users(ctx context.Context) ([]identity.User, error)
}

// app holds the collaborators a command needs, built from the configuration.
type app struct {
	cfg      *config.Config
	content  content.Repository
	identity accountProvider
	closers  []func() error
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &app{
		cfg:      cfg,
		content:  content.NewRepository(cfg.Content.Directory),
		identity: identity.NewFileProvider(cfg.Identity.Directory, cfg.Identity.AdminEmail),
	}, nil
}

func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// attempts opens the configured attempt store.
func (a *app) attempts() (learning.Repository, error) {
	if a.cfg.Learning.Store != config.LearningStoreDatabase {
		return learning.NewYAMLRepository(a.cfg.Learning.Directory), nil
	}

	db, err := database.Open(a.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	a.closers = append(a.closers, db.Close)
	return learning.NewDBRepository(db), nil
}

func (a *app) speaker() speech.Speaker {
	s := speech.NewSpeaker(a.cfg.Speech)
	if client, ok := s.(*speech.TTSClient); ok {
		a.closers = append(a.closers, client.Close)
	}
	return s
}

// reports returns nil unless saving a report was requested by a flag or by
// outputs.pdf.
func (a *app) reports(save, pdf bool) *report.Writer {
	if !save && !pdf && !a.cfg.Outputs.PDF {
		return nil
	}
	return report.NewWriter(a.cfg.Templates.ResultTemplate, a.cfg.Outputs.ReportDirectory, pdf || a.cfg.Outputs.PDF)
}

// authorize returns the signed-in user when their role may perform at least
// one of actions.
func (a *app) authorize(ctx context.Context, actions ...identity.Action) (*identity.User, error) {
	user, err := a.identity.Load(ctx)
	if err != nil {
		if errors.Is(err, identity.ErrNoSession) {
			return nil, fmt.Errorf("%w: run `examprep login` first", err)
		}
		return nil, fmt.Errorf("identity.Load() > %w", err)
	}
	if !identity.Any(user, actions...) {
		names := make([]string, 0, len(actions))
		for _, action := range actions {
			names = append(names, string(action))
		}
		return nil, fmt.Errorf("%w: the %s role cannot %s", errPermissionDenied, user.Role, strings.Join(names, " or "))
	}
	return user, nil
}
