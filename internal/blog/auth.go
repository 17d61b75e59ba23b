package blog

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/daniilsolovey/blogicum/internal/db"
)

// Register validates the form, hashes the password and creates the account.
func (m *Manager) Register(ctx context.Context, form RegisterForm) (*User, error) {
	if err := m.validate.Struct(form); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}

	existing, err := m.db.UserByUsername(ctx, form.Username)
	if err != nil {
		return nil, fmt.Errorf("db get user: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	dbUser := &db.User{
		Username:     form.Username,
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		Email:        form.Email,
		PasswordHash: string(hash),
	}
	if err := m.db.CreateUser(ctx, dbUser); err != nil {
		return nil, fmt.Errorf("db create user: %w", err)
	}

	user := NewUser(dbUser)
	return &user, nil
}

// Login checks the credentials and issues a session. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (m *Manager) Login(ctx context.Context, form LoginForm) (*Session, error) {
	if err := m.validate.Struct(form); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}

	dbUser, err := m.db.UserByUsername(ctx, form.Username)
	if err != nil {
		return nil, fmt.Errorf("db get user: %w", err)
	}
	if dbUser == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.PasswordHash), []byte(form.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	dbSession, err := m.db.CreateSession(ctx, dbUser.ID)
	if err != nil {
		return nil, fmt.Errorf("db create session: %w", err)
	}

	return &Session{Token: dbSession.Token, ExpiresAt: dbSession.ExpiresAt}, nil
}

// Logout drops the session; an unknown token is not an error.
func (m *Manager) Logout(ctx context.Context, token string) error {
	if err := m.db.DeleteSession(ctx, token); err != nil {
		return fmt.Errorf("db delete session: %w", err)
	}
	return nil
}

// UserByToken resolves a session cookie to the signed-in user, or nil for
// missing and expired sessions.
func (m *Manager) UserByToken(ctx context.Context, token string) (*User, error) {
	dbUser, err := m.db.SessionUser(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("db get session user: %w", err)
	}
	if dbUser == nil {
		return nil, nil
	}

	user := NewUser(dbUser)
	return &user, nil
}
