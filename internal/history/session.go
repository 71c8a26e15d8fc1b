package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/access"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/storage"
)

const (
	keyUserEmail      = "userEmail"
	keyAdminEmail     = "adminEmail"
	keySubscriberAuth = "subscriberAuth"
)

// Session holds the logged-in identity of one client.
type Session struct {
	kv      storage.KV
	history *Store
}

func NewSession(kv storage.KV, history *Store) *Session {
	return &Session{kv: kv, history: history}
}

// UserEmail returns the stored email, or "" when nobody is logged in.
func (s *Session) UserEmail(ctx context.Context) (string, error) {
	return s.get(ctx, keyUserEmail)
}

func (s *Session) SetUserEmail(ctx context.Context, email string) error {
	email = access.NormalizeEmail(email)
	if email == "" {
		return access.ErrEmailRequired
	}
	return s.kv.Set(ctx, keyUserEmail, email)
}

func (s *Session) AdminEmail(ctx context.Context) (string, error) {
	return s.get(ctx, keyAdminEmail)
}

func (s *Session) SetAdminEmail(ctx context.Context, email string) error {
	return s.kv.Set(ctx, keyAdminEmail, access.NormalizeEmail(email))
}

// SubscriberAuth reports whether the subscriber login succeeded.
func (s *Session) SubscriberAuth(ctx context.Context) (bool, error) {
	v, err := s.get(ctx, keySubscriberAuth)
	return v == "true", err
}

func (s *Session) SetSubscriberAuth(ctx context.Context, ok bool) error {
	if !ok {
		return s.kv.Delete(ctx, keySubscriberAuth)
	}
	return s.kv.Set(ctx, keySubscriberAuth, "true")
}

// Logout drops the session keys and the history of the logged-in email.
func (s *Session) Logout(ctx context.Context) error {
	email, err := s.UserEmail(ctx)
	if err != nil {
		return err
	}
	if email != "" && s.history != nil {
		if err := s.history.Clear(ctx, email); err != nil {
			return err
		}
	}
	for _, key := range []string{keyUserEmail, keyAdminEmail, keySubscriberAuth} {
		if err := s.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
	}
	return nil
}

func (s *Session) get(ctx context.Context, key string) (string, error) {
	v, err := s.kv.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	return v, err
}
