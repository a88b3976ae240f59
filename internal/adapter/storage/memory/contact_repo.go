package memory

import (
	"context"
	"sync"

	"nexbank/internal/core/domain"
)

// ContactRepo implements ports.ContactRepository over the seed dataset.
type ContactRepo struct {
	mu       sync.RWMutex
	contacts []domain.Contact
}

// NewContactRepo creates a ContactRepo from the seed.
func NewContactRepo(seed *Seed) *ContactRepo {
	contacts := make([]domain.Contact, len(seed.Contacts))
	copy(contacts, seed.Contacts)
	return &ContactRepo{contacts: contacts}
}

// List returns all contacts in seed order.
func (r *ContactRepo) List(ctx context.Context) ([]domain.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Contact, len(r.contacts))
	copy(out, r.contacts)
	return out, nil
}

// GetByID returns the contact with the given id, or nil, nil if absent.
func (r *ContactRepo) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.contacts {
		if r.contacts[i].ID == id {
			c := r.contacts[i]
			return &c, nil
		}
	}
	return nil, nil
}
