package service

import (
	"context"
	"fmt"
	"time"

	"nexbank/internal/core/domain"
	"nexbank/internal/core/ports"
	"nexbank/pkg/apperror"

	"github.com/google/uuid"
)

// AuthServiceImpl implements ports.AuthService.
//
// This is a demo bank: login and signup never check credentials against a
// user database. Any non-empty email with a password of six or more
// characters yields a session built from the seed user template, with the
// supplied email (and name, for signup) overlaid. The password is still
// hashed before the record is stored, and the hash backs the
// change-password check later in the session.
type AuthServiceImpl struct {
	sessions ports.SessionStore
	hashSvc  ports.HashService
	tokenSvc ports.TokenService
	template domain.User
	delay    time.Duration
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	sessions ports.SessionStore,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	template domain.User,
	delay time.Duration,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		sessions: sessions,
		hashSvc:  hashSvc,
		tokenSvc: tokenSvc,
		template: template,
		delay:    delay,
	}
}

const minPasswordLen = 6

// userIDFor derives a stable user id from the email, so logging in twice
// with the same email resumes the same identity.
func userIDFor(email string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("nexbank:user:"+email)).String()
}

// Login validates the credentials shape, waits the simulated processing
// delay, then creates and persists the session.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || len(password) < minPasswordLen {
		return nil, apperror.ErrInvalidCredentials()
	}
	return s.createSession(ctx, s.template.Name, email, password)
}

// Signup is login with a name overlay on top.
func (s *AuthServiceImpl) Signup(ctx context.Context, name, email, password string) (*ports.AuthResult, error) {
	if name == "" || email == "" || len(password) < minPasswordLen {
		return nil, apperror.ErrInvalidCredentials()
	}
	return s.createSession(ctx, name, email, password)
}

func (s *AuthServiceImpl) createSession(ctx context.Context, name, email, password string) (*ports.AuthResult, error) {
	if err := processingWait(ctx, s.delay); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("processing wait: %w", err))
	}

	passwordHash, err := s.hashSvc.Hash(password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	user := s.template
	user.ID = userIDFor(email)
	user.Name = name
	user.Email = email
	user.PasswordHash = passwordHash

	if err := s.sessions.Save(ctx, &user); err != nil {
		return nil, apperror.ErrStorageUnavailable(fmt.Errorf("save session: %w", err))
	}

	token, expiry, err := s.tokenSvc.Generate(user.ID, user.Email)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return &ports.AuthResult{
		User:   &user,
		Token:  token,
		Expiry: expiry,
	}, nil
}

// Logout removes the session record. Logging out an absent session succeeds.
func (s *AuthServiceImpl) Logout(ctx context.Context, userID string) error {
	if err := s.sessions.Delete(ctx, userID); err != nil {
		return apperror.ErrStorageUnavailable(fmt.Errorf("delete session: %w", err))
	}
	return nil
}

// Me returns the current user record for a valid session.
func (s *AuthServiceImpl) Me(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, apperror.ErrStorageUnavailable(fmt.Errorf("get session: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrInvalidToken()
	}
	return user, nil
}

// ChangePassword verifies the current password against the stored hash and
// replaces it with a hash of the new one.
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, userID, current, updated string) error {
	if len(updated) < minPasswordLen {
		return apperror.Validation("new password must be at least 6 characters")
	}

	user, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return apperror.ErrStorageUnavailable(fmt.Errorf("get session: %w", err))
	}
	if user == nil {
		return apperror.ErrInvalidToken()
	}

	valid, err := s.hashSvc.Verify(current, user.PasswordHash)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return apperror.ErrWrongPassword()
	}

	newHash, err := s.hashSvc.Hash(updated)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	user.PasswordHash = newHash
	if err := s.sessions.Save(ctx, user); err != nil {
		return apperror.ErrStorageUnavailable(fmt.Errorf("save session: %w", err))
	}
	return nil
}

// VerifyOTP accepts any six-digit code after the simulated delay. No code is
// ever generated or delivered in this demo.
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, code string) error {
	if len(code) != 6 {
		return apperror.ErrInvalidOTP()
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return apperror.ErrInvalidOTP()
		}
	}

	if err := processingWait(ctx, s.delay); err != nil {
		return apperror.InternalError(fmt.Errorf("processing wait: %w", err))
	}
	return nil
}

// RequestPasswordReset pretends to send a reset link. It always succeeds for
// a non-empty email, without disclosing whether the address is known.
func (s *AuthServiceImpl) RequestPasswordReset(ctx context.Context, email string) error {
	if email == "" {
		return apperror.Validation("email is required")
	}
	if err := processingWait(ctx, s.delay); err != nil {
		return apperror.InternalError(fmt.Errorf("processing wait: %w", err))
	}
	return nil
}
