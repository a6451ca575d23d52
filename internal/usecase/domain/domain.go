// Package domain contains application Usecases orchestrating domain logic.
package domain

import (
	"context"
	"time"

	"github.com/abdsramirez-cloud/crmpro1/internal/entities"
	"github.com/abdsramirez-cloud/crmpro1/internal/preferences"
	"github.com/abdsramirez-cloud/crmpro1/internal/repository"

	"go.uber.org/zap"
)

// PreferencesStore is the preference state consumed by the settings usecases.
type PreferencesStore interface {
	Language() preferences.Language
	Theme() preferences.Theme
	Profile() entities.UserProfile
	Palette() preferences.Palette
	SetLanguage(lang preferences.Language) error
	SetTheme(theme preferences.Theme) (preferences.Palette, error)
	UpdateProfile(upd entities.ProfileUpdate) (entities.UserProfile, error)
	Translate(key string) string
	Translations() map[string]string
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	prefs   PreferencesStore
	timeout time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	prefs PreferencesStore,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log,
		repo:    repo,
		prefs:   prefs,
		timeout: timeout,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
