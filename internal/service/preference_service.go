package service

import (
	"context"
	"fmt"
	"time"

	"nexbank/internal/core/domain"
	"nexbank/internal/core/ports"
	"nexbank/pkg/apperror"
)

// PreferenceServiceImpl implements ports.PreferenceService over the
// preference store. Language and theme persist across sessions; the balance
// visibility flag is written with the session TTL so every new session
// starts with balances visible.
type PreferenceServiceImpl struct {
	store      ports.PreferenceStore
	balanceTTL time.Duration
}

// NewPreferenceService creates a new PreferenceServiceImpl. balanceTTL
// should match the session token lifetime.
func NewPreferenceService(store ports.PreferenceStore, balanceTTL time.Duration) *PreferenceServiceImpl {
	return &PreferenceServiceImpl{store: store, balanceTTL: balanceTTL}
}

// Get returns the user's current preferences, with defaults where unset.
func (s *PreferenceServiceImpl) Get(ctx context.Context, userID string) (*domain.Preferences, error) {
	lang, err := s.store.GetLanguage(ctx, userID)
	if err != nil {
		return nil, apperror.ErrStorageUnavailable(fmt.Errorf("get language: %w", err))
	}
	theme, err := s.store.GetTheme(ctx, userID)
	if err != nil {
		return nil, apperror.ErrStorageUnavailable(fmt.Errorf("get theme: %w", err))
	}
	show, err := s.store.GetShowBalance(ctx, userID)
	if err != nil {
		return nil, apperror.ErrStorageUnavailable(fmt.Errorf("get show balance: %w", err))
	}

	return &domain.Preferences{
		Language:      lang,
		TextDirection: domain.TextDirection(lang),
		Theme:         theme,
		ShowBalance:   show,
	}, nil
}

// SetLanguage validates and stores the language, returning the updated
// preferences so the caller gets the new text direction in one round trip.
func (s *PreferenceServiceImpl) SetLanguage(ctx context.Context, userID, code string) (*domain.Preferences, error) {
	if !domain.IsValidLanguage(code) {
		return nil, apperror.ErrInvalidPreference("unsupported language code")
	}
	if err := s.store.SetLanguage(ctx, userID, code); err != nil {
		return nil, apperror.ErrStorageUnavailable(fmt.Errorf("set language: %w", err))
	}
	return s.Get(ctx, userID)
}

// SetTheme validates and stores the theme.
func (s *PreferenceServiceImpl) SetTheme(ctx context.Context, userID, theme string) (*domain.Preferences, error) {
	if !domain.IsValidTheme(theme) {
		return nil, apperror.ErrInvalidPreference("unsupported theme")
	}
	if err := s.store.SetTheme(ctx, userID, theme); err != nil {
		return nil, apperror.ErrStorageUnavailable(fmt.Errorf("set theme: %w", err))
	}
	return s.Get(ctx, userID)
}

// ToggleShowBalance flips the balance visibility flag and returns the new
// value.
func (s *PreferenceServiceImpl) ToggleShowBalance(ctx context.Context, userID string) (bool, error) {
	current, err := s.store.GetShowBalance(ctx, userID)
	if err != nil {
		return false, apperror.ErrStorageUnavailable(fmt.Errorf("get show balance: %w", err))
	}

	next := !current
	if err := s.store.SetShowBalance(ctx, userID, next, s.balanceTTL); err != nil {
		return false, apperror.ErrStorageUnavailable(fmt.Errorf("set show balance: %w", err))
	}
	return next, nil
}
