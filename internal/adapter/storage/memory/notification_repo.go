package memory

import (
	"context"
	"sync"

	"nexbank/internal/core/domain"
)

// NotificationRepo implements ports.NotificationRepository over the seed
// dataset. The read flag is the only mutable field.
type NotificationRepo struct {
	mu            sync.RWMutex
	notifications []domain.Notification
}

// NewNotificationRepo creates a NotificationRepo from the seed.
func NewNotificationRepo(seed *Seed) *NotificationRepo {
	ns := make([]domain.Notification, len(seed.Notifications))
	copy(ns, seed.Notifications)
	return &NotificationRepo{notifications: ns}
}

// List returns all notifications in seed order.
func (r *NotificationRepo) List(ctx context.Context) ([]domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out, nil
}

// MarkRead flips the read flag to true and returns the updated notification,
// or nil, nil if no notification has the given id. Marking an already-read
// notification is a no-op that still succeeds.
func (r *NotificationRepo) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications[i].Read = true
			n := r.notifications[i]
			return &n, nil
		}
	}
	return nil, nil
}
