package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"nexbank/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// SessionStore implements ports.SessionStore using Redis. The user record is
// stored as a JSON blob under "bank-user:<userID>" with no TTL: a session
// survives restarts and ends only on logout.
type SessionStore struct {
	client *goredis.Client
	prefix string
}

// NewSessionStore creates a new Redis-backed session store.
func NewSessionStore(client *goredis.Client) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: "bank-user:",
	}
}

// Save persists the user record, overwriting any existing one.
func (s *SessionStore) Save(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshaling user record: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+user.ID, data, 0).Err(); err != nil {
		return fmt.Errorf("redis session save: %w", err)
	}
	return nil
}

// Get retrieves a user record. Returns nil, nil if no session exists.
func (s *SessionStore) Get(ctx context.Context, userID string) (*domain.User, error) {
	data, err := s.client.Get(ctx, s.prefix+userID).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis session get: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("unmarshaling user record: %w", err)
	}
	return &user, nil
}

// Delete removes a user record. Deleting an absent session is not an error.
func (s *SessionStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, s.prefix+userID).Err(); err != nil {
		return fmt.Errorf("redis session delete: %w", err)
	}
	return nil
}
