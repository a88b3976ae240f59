package ports

import (
	"context"
	"time"

	"nexbank/internal/core/domain"
)

// SessionStore persists the authenticated user's record. This is the
// server-side rendition of the SPA's localStorage "bank-user" entry: a JSON
// record keyed by user, surviving restarts, removed on logout.
type SessionStore interface {
	Save(ctx context.Context, user *domain.User) error
	Get(ctx context.Context, userID string) (*domain.User, error) // nil, nil when absent
	Delete(ctx context.Context, userID string) error
}

// PreferenceStore persists per-user UI preferences. Language and theme are
// durable; balance visibility is stored with a TTL so it only lives for the
// session, matching the original sessionStorage scoping. Readers fall back
// to the documented defaults when a value is absent.
type PreferenceStore interface {
	GetLanguage(ctx context.Context, userID string) (string, error)
	SetLanguage(ctx context.Context, userID, code string) error
	GetTheme(ctx context.Context, userID string) (string, error)
	SetTheme(ctx context.Context, userID, theme string) error
	GetShowBalance(ctx context.Context, userID string) (bool, error)
	SetShowBalance(ctx context.Context, userID string, show bool, ttl time.Duration) error
}

// PendingBillStore holds the fetched-but-unpaid invoice for a user: the
// BillFetched state of the bill payment flow. At most one invoice is pending
// per user; paying or expiry clears it.
type PendingBillStore interface {
	Put(ctx context.Context, userID string, invoice *domain.BillInvoice, ttl time.Duration) error
	Get(ctx context.Context, userID string) (*domain.BillInvoice, error) // nil, nil when absent
	Delete(ctx context.Context, userID string) error
}

// HealthChecker verifies a dependency is reachable.
type HealthChecker interface {
	Name() string
	Ping(ctx context.Context) error
}
