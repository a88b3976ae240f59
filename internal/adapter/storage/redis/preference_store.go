package redis

import (
	"context"
	"fmt"
	"time"

	"nexbank/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// PreferenceStore implements ports.PreferenceStore using Redis. Language and
// theme persist indefinitely; the balance visibility flag is written with a
// TTL so it expires with the session.
type PreferenceStore struct {
	client *goredis.Client
}

// NewPreferenceStore creates a new Redis-backed preference store.
func NewPreferenceStore(client *goredis.Client) *PreferenceStore {
	return &PreferenceStore{client: client}
}

func languageKey(userID string) string { return "language:" + userID }
func themeKey(userID string) string    { return "theme:" + userID }
func balanceKey(userID string) string  { return "nexbank-show-balance:" + userID }

// GetLanguage returns the stored language code, defaulting to English.
func (s *PreferenceStore) GetLanguage(ctx context.Context, userID string) (string, error) {
	val, err := s.client.Get(ctx, languageKey(userID)).Result()
	if err != nil {
		if err == goredis.Nil {
			return domain.LanguageEnglish, nil
		}
		return "", fmt.Errorf("redis language get: %w", err)
	}
	return val, nil
}

// SetLanguage stores the language code.
func (s *PreferenceStore) SetLanguage(ctx context.Context, userID, code string) error {
	if err := s.client.Set(ctx, languageKey(userID), code, 0).Err(); err != nil {
		return fmt.Errorf("redis language set: %w", err)
	}
	return nil
}

// GetTheme returns the stored theme, defaulting to system.
func (s *PreferenceStore) GetTheme(ctx context.Context, userID string) (string, error) {
	val, err := s.client.Get(ctx, themeKey(userID)).Result()
	if err != nil {
		if err == goredis.Nil {
			return domain.ThemeSystem, nil
		}
		return "", fmt.Errorf("redis theme get: %w", err)
	}
	return val, nil
}

// SetTheme stores the theme.
func (s *PreferenceStore) SetTheme(ctx context.Context, userID, theme string) error {
	if err := s.client.Set(ctx, themeKey(userID), theme, 0).Err(); err != nil {
		return fmt.Errorf("redis theme set: %w", err)
	}
	return nil
}

// GetShowBalance returns the balance visibility flag, defaulting to true
// when absent or expired.
func (s *PreferenceStore) GetShowBalance(ctx context.Context, userID string) (bool, error) {
	val, err := s.client.Get(ctx, balanceKey(userID)).Result()
	if err != nil {
		if err == goredis.Nil {
			return true, nil
		}
		return false, fmt.Errorf("redis show-balance get: %w", err)
	}
	return val == "true", nil
}

// SetShowBalance stores the balance visibility flag with a TTL.
func (s *PreferenceStore) SetShowBalance(ctx context.Context, userID string, show bool, ttl time.Duration) error {
	val := "false"
	if show {
		val = "true"
	}
	if err := s.client.Set(ctx, balanceKey(userID), val, ttl).Err(); err != nil {
		return fmt.Errorf("redis show-balance set: %w", err)
	}
	return nil
}
