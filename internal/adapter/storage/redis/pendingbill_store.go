package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"nexbank/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// PendingBillStore implements ports.PendingBillStore using Redis. A fetched
// invoice is stored as JSON under "billpay:invoice:<userID>" with a TTL, so
// an unpaid bill expires back to the initial state on its own.
type PendingBillStore struct {
	client *goredis.Client
	prefix string
}

// NewPendingBillStore creates a new Redis-backed pending bill store.
func NewPendingBillStore(client *goredis.Client) *PendingBillStore {
	return &PendingBillStore{
		client: client,
		prefix: "billpay:invoice:",
	}
}

// Put stores the pending invoice, replacing any previous one for the user.
func (s *PendingBillStore) Put(ctx context.Context, userID string, invoice *domain.BillInvoice, ttl time.Duration) error {
	data, err := json.Marshal(invoice)
	if err != nil {
		return fmt.Errorf("marshaling invoice: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+userID, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis pending bill put: %w", err)
	}
	return nil
}

// Get retrieves the pending invoice. Returns nil, nil if none is pending.
func (s *PendingBillStore) Get(ctx context.Context, userID string) (*domain.BillInvoice, error) {
	data, err := s.client.Get(ctx, s.prefix+userID).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis pending bill get: %w", err)
	}

	var invoice domain.BillInvoice
	if err := json.Unmarshal(data, &invoice); err != nil {
		return nil, fmt.Errorf("unmarshaling invoice: %w", err)
	}
	return &invoice, nil
}

// Delete clears the pending invoice. Clearing an absent one is not an error.
func (s *PendingBillStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, s.prefix+userID).Err(); err != nil {
		return fmt.Errorf("redis pending bill delete: %w", err)
	}
	return nil
}
