package service

import (
	"context"
	"testing"
	"time"

	redisstore "nexbank/internal/adapter/storage/redis"
	"nexbank/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPreferenceService(t *testing.T) (*PreferenceServiceImpl, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	return NewPreferenceService(redisstore.NewPreferenceStore(client), time.Hour), s
}

func TestPreferenceService_Defaults(t *testing.T) {
	svc, _ := newPreferenceService(t)

	prefs, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, domain.LanguageEnglish, prefs.Language)
	assert.Equal(t, "ltr", prefs.TextDirection)
	assert.Equal(t, domain.ThemeSystem, prefs.Theme)
	assert.True(t, prefs.ShowBalance)
}

func TestPreferenceService_SetLanguage(t *testing.T) {
	svc, _ := newPreferenceService(t)
	ctx := context.Background()

	_, err := svc.SetLanguage(ctx, "u1", "fr")
	assertAppErrorCode(t, err, "PREF_001")

	prefs, err := svc.SetLanguage(ctx, "u1", domain.LanguageUrdu)
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageUrdu, prefs.Language)
	assert.Equal(t, "rtl", prefs.TextDirection)

	// Arabic is also RTL, Chinese is not.
	prefs, err = svc.SetLanguage(ctx, "u1", domain.LanguageArabic)
	require.NoError(t, err)
	assert.Equal(t, "rtl", prefs.TextDirection)

	prefs, err = svc.SetLanguage(ctx, "u1", domain.LanguageChinese)
	require.NoError(t, err)
	assert.Equal(t, "ltr", prefs.TextDirection)
}

func TestPreferenceService_SetTheme(t *testing.T) {
	svc, _ := newPreferenceService(t)
	ctx := context.Background()

	_, err := svc.SetTheme(ctx, "u1", "sepia")
	assertAppErrorCode(t, err, "PREF_001")

	prefs, err := svc.SetTheme(ctx, "u1", domain.ThemeDark)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, prefs.Theme)
}

func TestPreferenceService_ToggleShowBalance(t *testing.T) {
	svc, s := newPreferenceService(t)
	ctx := context.Background()

	show, err := svc.ToggleShowBalance(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, show, "first toggle hides the balance")

	show, err = svc.ToggleShowBalance(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, show)

	// The hidden state is session-scoped: it lapses back to visible.
	_, err = svc.ToggleShowBalance(ctx, "u1")
	require.NoError(t, err)
	s.FastForward(2 * time.Hour)

	prefs, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, prefs.ShowBalance)
}
