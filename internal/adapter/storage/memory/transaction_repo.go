package memory

import (
	"context"
	"strings"
	"sync"

	"nexbank/internal/core/domain"
	"nexbank/internal/core/ports"
)

// TransactionRepo implements ports.TransactionRepository over the seed
// history. History is immutable, so filtering works on a shared slice.
type TransactionRepo struct {
	mu           sync.RWMutex
	transactions []domain.Transaction
}

// NewTransactionRepo creates a TransactionRepo from the seed.
func NewTransactionRepo(seed *Seed) *TransactionRepo {
	txs := make([]domain.Transaction, len(seed.Transactions))
	copy(txs, seed.Transactions)
	return &TransactionRepo{transactions: txs}
}

// List returns transactions matching the filters, newest first (seed order),
// plus the total count before pagination.
func (r *TransactionRepo) List(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []domain.Transaction
	for _, tx := range r.transactions {
		if params.Direction != nil && tx.Direction != *params.Direction {
			continue
		}
		if params.Category != nil && !strings.EqualFold(tx.Category, *params.Category) {
			continue
		}
		if params.Search != nil {
			q := strings.ToLower(*params.Search)
			if !strings.Contains(strings.ToLower(tx.Description), q) &&
				!strings.Contains(strings.ToLower(tx.Category), q) {
				continue
			}
		}
		matched = append(matched, tx)
	}

	total := int64(len(matched))

	page := params.Page
	if page < 1 {
		page = 1
	}
	size := params.PageSize
	if size < 1 {
		size = 20
	}

	start := (page - 1) * size
	if start >= len(matched) {
		return []domain.Transaction{}, total, nil
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}

	out := make([]domain.Transaction, end-start)
	copy(out, matched[start:end])
	return out, total, nil
}
