package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gtank/cryptopasta"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must have at least 6 characters")
	ErrMissingFields      = errors.New("name, email and password are required")
)

// Account is a registered identity. Its lowercased email doubles as the
// ledger account key.
type Account struct {
	ID           string
	Email        string
	Name         string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Key returns the account key under which this account's ledger is stored.
func (a Account) Key() string {
	return a.Email
}

// AccountStore persists registered accounts.
type AccountStore interface {
	CreateAccount(ctx context.Context, a Account) error
	AccountByEmail(ctx context.Context, email string) (*Account, error)
}

// Accounts handles registration and login on top of an AccountStore.
type Accounts struct {
	store AccountStore
}

func NewAccounts(store AccountStore) *Accounts {
	return &Accounts{store: store}
}

// Register creates a new account with a bcrypt password hash.
func (s *Accounts) Register(ctx context.Context, name, email, password string) (*Account, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}
	if len(password) < 6 {
		return nil, ErrWeakPassword
	}
	if existing, err := s.store.AccountByEmail(ctx, email); err != nil {
		return nil, fmt.Errorf("lookup account: %w", err)
	} else if existing != nil {
		return nil, ErrEmailTaken
	}
	hash, err := cryptopasta.HashPassword([]byte(password))
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	acct := Account{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.CreateAccount(ctx, acct); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	return &acct, nil
}

// Login verifies credentials and returns the matching account. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *Accounts) Login(ctx context.Context, email, password string) (*Account, error) {
	acct, err := s.store.AccountByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("lookup account: %w", err)
	}
	if acct == nil {
		return nil, ErrInvalidCredentials
	}
	if err := cryptopasta.CheckPasswordHash(acct.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return acct, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
