package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/wosadvpro-arch/finance-buddy/internal/ledger"
	"github.com/wosadvpro-arch/finance-buddy/internal/session"
)

// Memory keeps snapshots and accounts in process memory. It is the default
// backend and the test double for the SQLite store; snapshots still go
// through the JSON codec so load/save semantics match the durable backend.
type Memory struct {
	mu        sync.Mutex
	snapshots map[string][]byte
	accounts  map[string]session.Account
}

var (
	_ session.Store        = (*Memory)(nil)
	_ session.AccountStore = (*Memory)(nil)
)

func NewMemory() *Memory {
	return &Memory{
		snapshots: make(map[string][]byte),
		accounts:  make(map[string]session.Account),
	}
}

func (m *Memory) Load(ctx context.Context, accountKey string) (*ledger.Ledger, error) {
	m.mu.Lock()
	raw, ok := m.snapshots[accountKey]
	m.mu.Unlock()
	if !ok {
		return ledger.New(), nil
	}
	return decodeSnapshot(ctx, accountKey, raw), nil
}

func (m *Memory) Save(_ context.Context, accountKey string, l *ledger.Ledger) error {
	raw, err := encodeSnapshot(l)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	m.mu.Lock()
	m.snapshots[accountKey] = raw
	m.mu.Unlock()
	return nil
}

func (m *Memory) CreateAccount(_ context.Context, a session.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[a.Email]; ok {
		return fmt.Errorf("account %q already exists", a.Email)
	}
	m.accounts[a.Email] = a
	return nil
}

func (m *Memory) AccountByEmail(_ context.Context, email string) (*session.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accounts[email]
	if !ok {
		return nil, nil
	}
	out := a
	return &out, nil
}

// Corrupt overwrites a stored snapshot with undecodable bytes. Test hook.
func (m *Memory) Corrupt(accountKey string) {
	m.mu.Lock()
	m.snapshots[accountKey] = []byte("{not json")
	m.mu.Unlock()
}
