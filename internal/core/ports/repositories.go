package ports

import (
	"context"

	"nexbank/internal/core/domain"
)

// AccountRepository exposes the seeded accounts.
type AccountRepository interface {
	List(ctx context.Context) ([]domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
}

// CardRepository exposes the seeded cards. SetFrozen is the only mutation:
// the frozen flag changes on explicit user action and nothing else.
type CardRepository interface {
	List(ctx context.Context) ([]domain.Card, error)
	GetByID(ctx context.Context, id string) (*domain.Card, error)
	SetFrozen(ctx context.Context, id string, frozen bool) (*domain.Card, error)
}

// TransactionRepository exposes the seeded transaction history. Read-only:
// flow controllers never append to or mutate history.
type TransactionRepository interface {
	List(ctx context.Context, params TransactionListParams) ([]domain.Transaction, int64, error)
}

// TransactionListParams holds filter + pagination for listing history.
type TransactionListParams struct {
	Direction *domain.TransactionDirection
	Category  *string
	Search    *string
	Page      int
	PageSize  int
}

// ContactRepository exposes the seeded transfer beneficiaries.
type ContactRepository interface {
	List(ctx context.Context) ([]domain.Contact, error)
	GetByID(ctx context.Context, id string) (*domain.Contact, error)
}

// NotificationRepository exposes the seeded notifications. MarkRead flips
// the read flag on acknowledgement; notifications are never created.
type NotificationRepository interface {
	List(ctx context.Context) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
}

// CatalogRepository exposes the bill-provider and recharge catalogs.
type CatalogRepository interface {
	Providers(ctx context.Context, category string) ([]domain.Provider, error)
	GetProvider(ctx context.Context, id string) (*domain.Provider, error)
	Operators(ctx context.Context) ([]domain.Operator, error)
	GetOperator(ctx context.Context, id string) (*domain.Operator, error)
	Packages(ctx context.Context, operatorID string) ([]domain.RechargePackage, error)
	GetPackage(ctx context.Context, operatorID, packageID string) (*domain.RechargePackage, error)
}

// SpendingRepository exposes the seeded dashboard aggregates.
type SpendingRepository interface {
	MonthlySpending(ctx context.Context) ([]domain.MonthlySpend, error)
	SpendingByCategory(ctx context.Context) ([]domain.CategorySpend, error)
}
