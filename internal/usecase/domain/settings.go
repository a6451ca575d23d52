// Package domain contains application Usecases orchestrating domain logic by
// settings.
package domain

import (
	"context"
	"fmt"

	"github.com/abdsramirez-cloud/crmpro1/internal/entities"
	"github.com/abdsramirez-cloud/crmpro1/internal/preferences"
)

// Settings is the preference snapshot served to the settings surface.
type Settings struct {
	Language preferences.Language
	Theme    preferences.Theme
	Profile  entities.UserProfile
	Palette  preferences.Palette
}

// CurrentSettings returns the active language, theme, profile and palette.
func (u *Usecase) CurrentSettings(_ context.Context) (Settings, error) {
	return Settings{
		Language: u.prefs.Language(),
		Theme:    u.prefs.Theme(),
		Profile:  u.prefs.Profile(),
		Palette:  u.prefs.Palette(),
	}, nil
}

// SetLanguage switches the interface language and persists it.
func (u *Usecase) SetLanguage(_ context.Context, lang string) error {
	if lang == "" {
		return fmt.Errorf("%w: language is required", entities.ErrInvalidArgument)
	}
	if err := u.prefs.SetLanguage(preferences.Language(lang)); err != nil {
		return err
	}
	u.log.Infow("language changed", "language", lang)
	return nil
}

// SetTheme switches the presentation theme, persists it and returns the
// palette the client applies.
func (u *Usecase) SetTheme(_ context.Context, theme string) (preferences.Palette, error) {
	if theme == "" {
		return preferences.Palette{}, fmt.Errorf("%w: theme is required", entities.ErrInvalidArgument)
	}
	palette, err := u.prefs.SetTheme(preferences.Theme(theme))
	if err != nil {
		return preferences.Palette{}, err
	}
	u.log.Infow("theme changed", "theme", theme)
	return palette, nil
}

// UpdateProfile applies a partial mutation to the current-user profile and
// persists the result.
func (u *Usecase) UpdateProfile(_ context.Context, upd entities.ProfileUpdate) (entities.UserProfile, error) {
	return u.prefs.UpdateProfile(upd)
}

// Translations returns the active language's full label table.
func (u *Usecase) Translations(_ context.Context) (map[string]string, error) {
	return u.prefs.Translations(), nil
}
