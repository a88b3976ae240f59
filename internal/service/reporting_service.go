package service

import (
	"context"
	"fmt"

	"nexbank/internal/core/domain"
	"nexbank/internal/core/ports"
	"nexbank/pkg/apperror"
	"nexbank/pkg/currency"
)

// ReportingServiceImpl implements ports.ReportingService: the dashboard
// reads over accounts, spending aggregates and transaction history.
type ReportingServiceImpl struct {
	accounts     ports.AccountRepository
	transactions ports.TransactionRepository
	spending     ports.SpendingRepository
	preferences  ports.PreferenceService
}

// NewReportingService creates a new ReportingServiceImpl.
func NewReportingService(
	accounts ports.AccountRepository,
	transactions ports.TransactionRepository,
	spending ports.SpendingRepository,
	preferences ports.PreferenceService,
) *ReportingServiceImpl {
	return &ReportingServiceImpl{
		accounts:     accounts,
		transactions: transactions,
		spending:     spending,
		preferences:  preferences,
	}
}

// AccountSummary returns all accounts and the total balance. When the user
// has hidden balances, Masked is set and the total is zeroed; per-account
// figures are zeroed too, so a masked summary carries no amounts at all.
func (s *ReportingServiceImpl) AccountSummary(ctx context.Context, userID string) (*ports.AccountSummary, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list accounts: %w", err))
	}

	prefs, err := s.preferences.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, a := range accounts {
		total += a.Balance
	}

	summary := &ports.AccountSummary{
		Accounts: accounts,
		Total:    total,
		Currency: currency.Code,
		Masked:   !prefs.ShowBalance,
	}

	if summary.Masked {
		summary.Total = 0
		for i := range summary.Accounts {
			summary.Accounts[i].Balance = 0
		}
	}

	return summary, nil
}

// SpendingOverview returns the dashboard chart aggregates.
func (s *ReportingServiceImpl) SpendingOverview(ctx context.Context) (*ports.SpendingOverview, error) {
	monthly, err := s.spending.MonthlySpending(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("monthly spending: %w", err))
	}
	byCategory, err := s.spending.SpendingByCategory(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("spending by category: %w", err))
	}

	return &ports.SpendingOverview{
		Monthly:    monthly,
		ByCategory: byCategory,
	}, nil
}

// ListTransactions returns filtered, paginated history.
func (s *ReportingServiceImpl) ListTransactions(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	txs, total, err := s.transactions.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list transactions: %w", err))
	}
	return txs, total, nil
}
