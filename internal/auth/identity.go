package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"smmstore/internal/domain"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type user struct {
	email        string
	name         string
	passwordHash []byte
}

// Identity is the hosted-provider stand-in: user registry plus session
// tokens. Checkout only ever sees the resulting AuthState.
type Identity struct {
	mu       sync.RWMutex
	users    map[string]user // keyed by lowercased email
	sessions SessionStore
}

func NewIdentity(sessions SessionStore) *Identity {
	return &Identity{
		users:    make(map[string]user),
		sessions: sessions,
	}
}

// SignUp registers a user and opens a session right away, like the hosted
// provider does.
func (i *Identity) SignUp(ctx context.Context, email, password, name string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(email))
	if key == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	i.mu.Lock()
	if _, exists := i.users[key]; exists {
		i.mu.Unlock()
		return "", ErrEmailTaken
	}
	i.users[key] = user{email: key, name: name, passwordHash: hash}
	i.mu.Unlock()

	return i.openSession(ctx, key, name)
}

func (i *Identity) SignIn(ctx context.Context, email, password string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(email))

	i.mu.RLock()
	u, ok := i.users[key]
	i.mu.RUnlock()
	if !ok {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	return i.openSession(ctx, u.email, u.name)
}

func (i *Identity) SignOut(ctx context.Context, token string) error {
	return i.sessions.Delete(ctx, token)
}

// Session resolves a token to an AuthState. Unknown tokens yield the
// unauthenticated state, not an error.
func (i *Identity) Session(ctx context.Context, token string) (domain.AuthState, error) {
	if token == "" {
		return domain.AuthState{}, nil
	}
	s, ok, err := i.sessions.Get(ctx, token)
	if err != nil {
		return domain.AuthState{}, err
	}
	if !ok {
		return domain.AuthState{}, nil
	}
	return domain.AuthState{Authenticated: true, Name: s.Name, Email: s.Email}, nil
}

func (i *Identity) openSession(ctx context.Context, email, name string) (string, error) {
	s := Session{
		Token:     uuid.NewString(),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := i.sessions.Put(ctx, s); err != nil {
		return "", err
	}
	return s.Token, nil
}
