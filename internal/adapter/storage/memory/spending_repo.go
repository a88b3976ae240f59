package memory

import (
	"context"

	"nexbank/internal/core/domain"
)

// SpendingRepo implements ports.SpendingRepository over the seed aggregates.
type SpendingRepo struct {
	monthly    []domain.MonthlySpend
	byCategory []domain.CategorySpend
}

// NewSpendingRepo creates a SpendingRepo from the seed.
func NewSpendingRepo(seed *Seed) *SpendingRepo {
	monthly := make([]domain.MonthlySpend, len(seed.Monthly))
	copy(monthly, seed.Monthly)

	byCategory := make([]domain.CategorySpend, len(seed.ByCategory))
	copy(byCategory, seed.ByCategory)

	return &SpendingRepo{monthly: monthly, byCategory: byCategory}
}

// MonthlySpending returns the month-by-month outflow aggregates.
func (r *SpendingRepo) MonthlySpending(ctx context.Context) ([]domain.MonthlySpend, error) {
	out := make([]domain.MonthlySpend, len(r.monthly))
	copy(out, r.monthly)
	return out, nil
}

// SpendingByCategory returns the category share aggregates.
func (r *SpendingRepo) SpendingByCategory(ctx context.Context) ([]domain.CategorySpend, error) {
	out := make([]domain.CategorySpend, len(r.byCategory))
	copy(out, r.byCategory)
	return out, nil
}
