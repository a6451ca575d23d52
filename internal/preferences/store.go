// Package preferences holds language, theme and current-user profile state,
// persisted through an embedded BadgerDB key-value store. Missing or
// unparsable stored values fall back to built-in defaults and are never
// surfaced as errors.
package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/abdsramirez-cloud/crmpro1/config"
	"github.com/abdsramirez-cloud/crmpro1/internal/entities"

	"github.com/dgraph-io/badger/v3"
	"go.uber.org/zap"
)

// Storage keys, fixed by the front-end contract.
const (
	keyLanguage = "crm-language"
	keyTheme    = "crm-theme"
	keyProfile  = "crm-profile"
)

// DefaultProfile is the built-in current-user record used until a saved
// profile exists.
func DefaultProfile() entities.UserProfile {
	return entities.UserProfile{
		ID:         "1",
		Name:       "John Doe",
		Email:      "john.doe@company.com",
		Phone:      "+1 (555) 123-4567",
		Department: "Sales",
		Position:   "Sales Manager",
		Timezone:   "America/New_York",
		Notifications: entities.NotificationPrefs{
			Email: true,
			Push:  true,
			Deals: true,
			Tasks: true,
		},
	}
}

// Store owns the preference state. Setters write through to the key-value
// store synchronously before returning.
type Store struct {
	log *zap.SugaredLogger
	cfg config.StorageConfig

	mu       sync.RWMutex
	db       *badger.DB
	language Language
	theme    Theme
	profile  entities.UserProfile
}

// New creates a preferences store instance backed by the configured path.
func New(log *zap.SugaredLogger, cfg config.StorageConfig) *Store {
	return &Store{
		log:      log.Named("preferences"),
		cfg:      cfg,
		language: DefaultLanguage,
		theme:    DefaultTheme,
		profile:  DefaultProfile(),
	}
}

// OnStart opens the key-value store and loads saved preferences.
func (s *Store) OnStart(_ context.Context) error {
	opts := badger.DefaultOptions(s.cfg.Path).
		WithLogger(nil).
		WithSyncWrites(s.cfg.SyncWrites)

	db, err := badger.Open(opts)
	if err != nil {
		return fmt.Errorf("open preferences store: %w", err)
	}

	s.mu.Lock()
	s.db = db
	s.load()
	s.mu.Unlock()

	s.log.Infow("preferences ready", "path", s.cfg.Path, "language", s.language, "theme", s.theme)
	return nil
}

// OnStop closes the key-value store.
func (s *Store) OnStop(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// load reads each preference key, keeping the default on absence or parse
// failure. Callers hold s.mu.
func (s *Store) load() {
	if raw, err := s.get(keyLanguage); err == nil {
		if lang := Language(raw); lang.Valid() {
			s.language = lang
		} else {
			s.log.Warnw("ignoring saved language", "value", string(raw))
		}
	} else if !IsNotFound(err) {
		s.log.Warnw("failed to read saved language", "error", err)
	}

	if raw, err := s.get(keyTheme); err == nil {
		if theme := Theme(raw); theme.Valid() {
			s.theme = theme
		} else {
			s.log.Warnw("ignoring saved theme", "value", string(raw))
		}
	} else if !IsNotFound(err) {
		s.log.Warnw("failed to read saved theme", "error", err)
	}

	if raw, err := s.get(keyProfile); err == nil {
		var profile entities.UserProfile
		if err := json.Unmarshal(raw, &profile); err != nil {
			s.log.Errorw("failed to parse saved profile, keeping default", "error", err)
		} else {
			s.profile = profile
		}
	} else if !IsNotFound(err) {
		s.log.Warnw("failed to read saved profile", "error", err)
	}
}

func (s *Store) get(key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	return out, err
}

func (s *Store) set(key string, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

// Language returns the active language.
func (s *Store) Language() Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// Theme returns the active theme.
func (s *Store) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// Profile returns the current-user profile.
func (s *Store) Profile() entities.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// SetLanguage switches the active language and persists it.
func (s *Store) SetLanguage(lang Language) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: unknown language %q", entities.ErrInvalidArgument, lang)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.set(keyLanguage, []byte(lang)); err != nil {
		return fmt.Errorf("save language: %w", err)
	}
	s.language = lang
	return nil
}

// SetTheme switches the active theme, persists it and returns the palette to
// apply to the presentation layer.
func (s *Store) SetTheme(theme Theme) (Palette, error) {
	if !theme.Valid() {
		return Palette{}, fmt.Errorf("%w: unknown theme %q", entities.ErrInvalidArgument, theme)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.set(keyTheme, []byte(theme)); err != nil {
		return Palette{}, fmt.Errorf("save theme: %w", err)
	}
	s.theme = theme
	return palettes[theme], nil
}

// Palette returns the active theme's palette.
func (s *Store) Palette() Palette {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return palettes[s.theme]
}

// UpdateProfile applies a partial profile mutation and persists the full
// record.
func (s *Store) UpdateProfile(upd entities.ProfileUpdate) (entities.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile := s.profile
	if upd.Name != nil {
		profile.Name = *upd.Name
	}
	if upd.Email != nil {
		profile.Email = *upd.Email
	}
	if upd.Phone != nil {
		profile.Phone = *upd.Phone
	}
	if upd.Department != nil {
		profile.Department = *upd.Department
	}
	if upd.Position != nil {
		profile.Position = *upd.Position
	}
	if upd.Avatar != nil {
		profile.Avatar = *upd.Avatar
	}
	if upd.Timezone != nil {
		profile.Timezone = *upd.Timezone
	}
	if upd.Notifications != nil {
		profile.Notifications = *upd.Notifications
	}

	raw, err := json.Marshal(profile)
	if err != nil {
		return entities.UserProfile{}, fmt.Errorf("marshal profile: %w", err)
	}
	if err := s.set(keyProfile, raw); err != nil {
		return entities.UserProfile{}, fmt.Errorf("save profile: %w", err)
	}

	s.profile = profile
	return profile, nil
}

// Translate looks up key in the active language's table; a missing key
// returns the key itself, never an error.
func (s *Store) Translate(key string) string {
	s.mu.RLock()
	lang := s.language
	s.mu.RUnlock()
	return Translate(lang, key)
}

// Translations returns a copy of the active language's full table.
func (s *Store) Translations() map[string]string {
	s.mu.RLock()
	lang := s.language
	s.mu.RUnlock()

	table := translations[lang]
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}

// IsNotFound reports whether err is the storage's missing-key error.
func IsNotFound(err error) bool {
	return errors.Is(err, badger.ErrKeyNotFound)
}
