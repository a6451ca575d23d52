package preferences

import (
	"context"
	"testing"

	"github.com/abdsramirez-cloud/crmpro1/config"
	"github.com/abdsramirez-cloud/crmpro1/internal/entities"

	"github.com/dgraph-io/badger/v3"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T, path string) *Store {
	t.Helper()
	s := New(zap.NewNop().Sugar(), config.StorageConfig{Path: path})
	require.NoError(t, s.OnStart(context.Background()))
	t.Cleanup(func() {
		require.NoError(t, s.OnStop(context.Background()))
	})
	return s
}

func TestDefaultsOnFreshStore(t *testing.T) {
	s := newTestStore(t, t.TempDir())

	require.Equal(t, DefaultLanguage, s.Language())
	require.Equal(t, DefaultTheme, s.Theme())
	require.Equal(t, DefaultProfile(), s.Profile())
	require.Equal(t, palettes[ThemeLight], s.Palette())
}

func TestSetLanguagePersists(t *testing.T) {
	dir := t.TempDir()

	s := New(zap.NewNop().Sugar(), config.StorageConfig{Path: dir})
	require.NoError(t, s.OnStart(context.Background()))
	require.NoError(t, s.SetLanguage(LangSpanish))
	require.NoError(t, s.OnStop(context.Background()))

	reopened := newTestStore(t, dir)
	require.Equal(t, LangSpanish, reopened.Language())
}

func TestSetLanguageUnknown(t *testing.T) {
	s := newTestStore(t, t.TempDir())

	err := s.SetLanguage("klingon")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	require.Equal(t, DefaultLanguage, s.Language())
}

func TestSetThemeReturnsPalette(t *testing.T) {
	s := newTestStore(t, t.TempDir())

	palette, err := s.SetTheme(ThemeDark)
	require.NoError(t, err)
	require.Equal(t, palettes[ThemeDark], palette)
	require.Equal(t, ThemeDark, s.Theme())
	require.NotEqual(t, palettes[ThemeLight], palette)
}

func TestSetThemeUnknown(t *testing.T) {
	s := newTestStore(t, t.TempDir())

	_, err := s.SetTheme("sepia")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	require.Equal(t, DefaultTheme, s.Theme())
}

func TestUpdateProfilePartialAndPersists(t *testing.T) {
	dir := t.TempDir()

	s := New(zap.NewNop().Sugar(), config.StorageConfig{Path: dir})
	require.NoError(t, s.OnStart(context.Background()))

	name := "Johnny Doe"
	notif := entities.NotificationPrefs{Email: false, Push: true, Deals: false, Tasks: true}
	profile, err := s.UpdateProfile(entities.ProfileUpdate{Name: &name, Notifications: &notif})
	require.NoError(t, err)
	require.Equal(t, "Johnny Doe", profile.Name)
	require.Equal(t, DefaultProfile().Email, profile.Email)
	require.Equal(t, notif, profile.Notifications)
	require.NoError(t, s.OnStop(context.Background()))

	reopened := newTestStore(t, dir)
	require.Equal(t, "Johnny Doe", reopened.Profile().Name)
	require.Equal(t, notif, reopened.Profile().Notifications)
}

func TestCorruptProfileFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()

	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	require.NoError(t, err)
	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyProfile), []byte("{not json"))
	}))
	require.NoError(t, db.Close())

	s := newTestStore(t, dir)
	require.Equal(t, DefaultProfile(), s.Profile())
}

func TestInvalidSavedValuesAreIgnored(t *testing.T) {
	dir := t.TempDir()

	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	require.NoError(t, err)
	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(keyLanguage), []byte("klingon")); err != nil {
			return err
		}
		return txn.Set([]byte(keyTheme), []byte("sepia"))
	}))
	require.NoError(t, db.Close())

	s := newTestStore(t, dir)
	require.Equal(t, DefaultLanguage, s.Language())
	require.Equal(t, DefaultTheme, s.Theme())
}

func TestTranslateThroughStore(t *testing.T) {
	s := newTestStore(t, t.TempDir())

	require.Equal(t, "Dashboard", s.Translate("dashboard"))

	require.NoError(t, s.SetLanguage(LangSpanish))
	require.Equal(t, "Panel", s.Translate("dashboard"))
	require.Equal(t, "no-such-key", s.Translate("no-such-key"))
}

func TestTranslationsReturnsCopy(t *testing.T) {
	s := newTestStore(t, t.TempDir())

	table := s.Translations()
	require.NotEmpty(t, table)
	table["dashboard"] = "mutated"
	require.Equal(t, "Dashboard", s.Translate("dashboard"))
}
