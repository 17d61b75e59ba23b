package db

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

const (
	// SessionDuration is how long a session stays valid.
	SessionDuration = 24 * time.Hour
	// sessionTokenLength in bytes; hex-encoded to twice as many characters.
	sessionTokenLength = 32
)

// CreateSession issues a new session for the user, replacing any existing ones.
func (r *Repository) CreateSession(ctx context.Context, userID int) (*Session, error) {
	if err := r.DeleteUserSessions(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to delete old sessions: %w", err)
	}

	token, err := generateSessionToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	now := time.Now()
	session := &Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: now.Add(SessionDuration),
		CreatedAt: now,
	}

	if _, err := r.db.ModelContext(ctx, session).Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert session: %w", err)
	}

	return session, nil
}

// SessionUser resolves a session token to its user. Expired sessions are
// deleted on sight. Returns nil when the token does not map to a live user.
func (r *Repository) SessionUser(ctx context.Context, token string) (*User, error) {
	session := &Session{}
	err := r.db.ModelContext(ctx, session).
		Relation("User").
		Where(`"t"."token" = ?`, token).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		_ = r.DeleteSession(ctx, token)
		return nil, nil
	}

	return session.User, nil
}

func (r *Repository) DeleteSession(ctx context.Context, token string) error {
	_, err := r.db.ModelContext(ctx, (*Session)(nil)).
		Where(`"t"."token" = ?`, token).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *Repository) DeleteUserSessions(ctx context.Context, userID int) error {
	_, err := r.db.ModelContext(ctx, (*Session)(nil)).
		Where(`"t"."userId" = ?`, userID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete user sessions: %w", err)
	}
	return nil
}

func generateSessionToken() (string, error) {
	buf := make([]byte, sessionTokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
