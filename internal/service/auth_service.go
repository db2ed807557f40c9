// Package service holds the authentication orchestration between the
// credential store, the password hasher and the token issuer. Handlers
// stay thin: they bind requests, call into this package and map the
// returned sentinel errors onto HTTP statuses.
package service

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/iliyamo/book-library/internal/auth"
	"github.com/iliyamo/book-library/internal/model"
	"github.com/iliyamo/book-library/internal/queue"
	"github.com/iliyamo/book-library/internal/repository"
	"github.com/iliyamo/book-library/internal/session"
)

// ErrBadCredentials is the single outcome for every login failure. Wrong
// password and unknown email both map here so a caller cannot probe which
// part of the credential was wrong.
var ErrBadCredentials = errors.New("invalid credentials")

// UserStore is the slice of the credential store the auth service needs.
// *repository.UserRepo satisfies it; tests provide in-memory fakes.
type UserStore interface {
	Exists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, email, passwordHash string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

// ProfileInitializer seeds follow-on profile state for a new account.
// It is an external collaborator: registration invokes it after the
// credential row is committed and never rolls back on its failure.
type ProfileInitializer interface {
	Init(ctx context.Context, userID uint64) error
}

// AuthService implements registration, login and session inspection.
type AuthService struct {
	Secret     string
	BcryptCost int
	Users      UserStore
	Profile    ProfileInitializer // optional
	// Publish sends the registration event to the broker. Overridable in
	// tests; nil disables publishing.
	Publish func(ctx context.Context, event queue.UserRegisteredEvent) error
}

func NewAuthService(secret string, bcryptCost int, users UserStore, profile ProfileInitializer) *AuthService {
	return &AuthService{
		Secret:     secret,
		BcryptCost: bcryptCost,
		Users:      users,
		Profile:    profile,
		Publish:    queue.PublishUserRegistered,
	}
}

// Register creates a credential row for the email and issues a session
// token for it. A taken email yields repository.ErrEmailExists. The
// Exists call gives fast feedback, but the unique index behind
// Users.Create is what settles concurrent registrations: exactly one
// wins, the other observes the duplicate error.
func (s *AuthService) Register(ctx context.Context, email, password string) (model.User, string, error) {
	taken, err := s.Users.Exists(ctx, email)
	if err != nil {
		return model.User{}, "", err
	}
	if taken {
		return model.User{}, "", repository.ErrEmailExists
	}

	hash, err := auth.HashPassword(password, s.BcryptCost)
	if err != nil {
		return model.User{}, "", err
	}
	u, err := s.Users.Create(ctx, email, hash)
	if err != nil {
		return model.User{}, "", err
	}

	token, err := auth.IssueToken(s.Secret, u.Email)
	if err != nil {
		return model.User{}, "", err
	}

	// Best-effort collaborators. The credential row is already durable;
	// a failure here is logged, not rolled back.
	if s.Profile != nil {
		if err := s.Profile.Init(ctx, u.ID); err != nil {
			log.Printf("auth: profile init failed for user %d: %v", u.ID, err)
		}
	}
	if s.Publish != nil {
		evt := queue.UserRegisteredEvent{
			UserID:       u.ID,
			Email:        u.Email,
			RegisteredAt: time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.Publish(ctx, evt); err != nil {
			log.Printf("auth: publish user.registered failed for user %d: %v", u.ID, err)
		}
	}
	return u, token, nil
}

// Login verifies the credential pair and issues a fresh session token.
// Unknown email and wrong password are indistinguishable to the caller:
// both return ErrBadCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (model.User, string, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.User{}, "", ErrBadCredentials
		}
		return model.User{}, "", err
	}
	if !auth.VerifyPassword(u.PasswordHash, password) {
		return model.User{}, "", ErrBadCredentials
	}
	token, err := auth.IssueToken(s.Secret, u.Email)
	if err != nil {
		return model.User{}, "", err
	}
	return u, token, nil
}

// CheckSession reports whether a session cookie is present in the given
// cookie set. Presence by name is the whole contract: the token inside is
// not parsed, its signature not verified, its expiry not checked. The
// frontend uses this as a cheap probe before rendering login state; real
// protection happens in the session middleware.
func (s *AuthService) CheckSession(cookies []*http.Cookie) bool {
	for _, c := range cookies {
		if c.Name == session.CookieName {
			return true
		}
	}
	return false
}
