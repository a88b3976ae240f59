package memory

import (
	"context"
	"sync"

	"nexbank/internal/core/domain"
)

// CardRepo implements ports.CardRepository over the seed dataset. The frozen
// flag is the only mutable field.
type CardRepo struct {
	mu    sync.RWMutex
	cards []domain.Card
}

// NewCardRepo creates a CardRepo from the seed.
func NewCardRepo(seed *Seed) *CardRepo {
	cards := make([]domain.Card, len(seed.Cards))
	copy(cards, seed.Cards)
	return &CardRepo{cards: cards}
}

// List returns all cards in seed order.
func (r *CardRepo) List(ctx context.Context) ([]domain.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Card, len(r.cards))
	copy(out, r.cards)
	return out, nil
}

// GetByID returns the card with the given id, or nil, nil if absent.
func (r *CardRepo) GetByID(ctx context.Context, id string) (*domain.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.cards {
		if r.cards[i].ID == id {
			c := r.cards[i]
			return &c, nil
		}
	}
	return nil, nil
}

// SetFrozen sets the frozen flag and returns the updated card, or nil, nil
// if no card has the given id.
func (r *CardRepo) SetFrozen(ctx context.Context, id string, frozen bool) (*domain.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.cards {
		if r.cards[i].ID == id {
			r.cards[i].Frozen = frozen
			c := r.cards[i]
			return &c, nil
		}
	}
	return nil, nil
}
