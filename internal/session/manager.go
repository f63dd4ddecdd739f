package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/wosadvpro-arch/finance-buddy/internal/core"
	"github.com/wosadvpro-arch/finance-buddy/internal/ledger"
)

// Ledger change operations, as published to the sync pipeline.
const (
	OpCreated = "created"
	OpUpdated = "updated"
	OpDeleted = "deleted"
)

// ChangePublisher mirrors ledger mutations to an external sink. Publishing is
// best-effort: a failure is logged, never propagated to the caller, because
// the local save already succeeded.
type ChangePublisher interface {
	PublishLedgerChange(ctx context.Context, accountKey, op string, tx core.Transaction) error
}

// Manager owns the single active ledger. All mutations flow through it so
// that every successful change is persisted synchronously under the active
// account key before control returns to the caller.
type Manager struct {
	mu    sync.Mutex
	store Store
	pub   ChangePublisher // optional

	key string
	led *ledger.Ledger
}

var errNoActiveAccount = errors.New("no active account")

// NewManager creates a manager with no active account; callers must Switch
// before mutating. pub may be nil when no sync pipeline is configured.
func NewManager(store Store, pub ChangePublisher) *Manager {
	return &Manager{store: store, pub: pub}
}

// Switch makes accountKey the active account, loading its persisted ledger.
// The previous account's ledger is dropped from memory; it remains durably
// stored under its own key.
func (m *Manager) Switch(ctx context.Context, accountKey string) error {
	led, err := m.store.Load(ctx, accountKey)
	if err != nil {
		return fmt.Errorf("load ledger for %q: %w", accountKey, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.key = accountKey
	m.led = led
	return nil
}

// ActiveKey returns the active account key, or "" before the first Switch.
func (m *Manager) ActiveKey() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.key
}

// Add appends a new transaction and persists the ledger. The mutation is
// applied to a clone and swapped in only after the save succeeds, so a
// failed write never leaves unpersisted state visible.
func (m *Manager) Add(ctx context.Context, d core.Draft) (core.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.led == nil {
		return core.Transaction{}, errNoActiveAccount
	}
	next := m.led.Clone()
	tx, err := next.Add(d)
	if err != nil {
		return core.Transaction{}, err
	}
	if err := m.store.Save(ctx, m.key, next); err != nil {
		return core.Transaction{}, fmt.Errorf("persist ledger: %w", err)
	}
	m.led = next
	m.publish(ctx, OpCreated, tx)
	return tx, nil
}

// Update edits the transaction matching id. A missing id is a no-op and
// returns (nil, nil); nothing is persisted or published in that case.
func (m *Manager) Update(ctx context.Context, id int64, p core.Patch) (*core.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.led == nil {
		return nil, errNoActiveAccount
	}
	next := m.led.Clone()
	tx, err := next.Update(id, p)
	if err != nil || tx == nil {
		return tx, err
	}
	if err := m.store.Save(ctx, m.key, next); err != nil {
		return nil, fmt.Errorf("persist ledger: %w", err)
	}
	m.led = next
	m.publish(ctx, OpUpdated, *tx)
	return tx, nil
}

// Remove deletes the transaction matching id, idempotently.
func (m *Manager) Remove(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.led == nil {
		return false, errNoActiveAccount
	}
	next := m.led.Clone()
	if !next.Remove(id) {
		return false, nil
	}
	if err := m.store.Save(ctx, m.key, next); err != nil {
		return false, fmt.Errorf("persist ledger: %w", err)
	}
	m.led = next
	m.publish(ctx, OpDeleted, core.Transaction{ID: id})
	return true, nil
}

// Transactions returns a snapshot of the active ledger.
func (m *Manager) Transactions() []core.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.led == nil {
		return nil
	}
	return m.led.List()
}

// Version returns the active ledger's mutation counter.
func (m *Manager) Version() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.led == nil {
		return 0
	}
	return m.led.Version()
}

func (m *Manager) publish(ctx context.Context, op string, tx core.Transaction) {
	if m.pub == nil {
		return
	}
	if err := m.pub.PublishLedgerChange(ctx, m.key, op, tx); err != nil {
		slog.WarnContext(ctx, "Failed to publish ledger change",
			"account", m.key, "op", op, "tx_id", tx.ID, "error", err)
	}
}
