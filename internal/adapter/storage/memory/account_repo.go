package memory

import (
	"context"
	"sync"

	"nexbank/internal/core/domain"
)

// AccountRepo implements ports.AccountRepository over the seed dataset.
// Accounts are read-only: no flow mutates a balance.
type AccountRepo struct {
	mu       sync.RWMutex
	accounts []domain.Account
}

// NewAccountRepo creates an AccountRepo from the seed.
func NewAccountRepo(seed *Seed) *AccountRepo {
	accounts := make([]domain.Account, len(seed.Accounts))
	copy(accounts, seed.Accounts)
	return &AccountRepo{accounts: accounts}
}

// List returns all accounts in seed order.
func (r *AccountRepo) List(ctx context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}

// GetByID returns the account with the given id, or nil, nil if absent.
func (r *AccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.accounts {
		if r.accounts[i].ID == id {
			a := r.accounts[i]
			return &a, nil
		}
	}
	return nil, nil
}
