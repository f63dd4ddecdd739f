// Package session scopes a ledger to a signed-in account: load on login,
// persist on every mutation, swap entirely on account switch.
package session

import (
	"context"

	"github.com/wosadvpro-arch/finance-buddy/internal/ledger"
)

// Store persists one ledger snapshot per account key.
//
// Load returns a fresh empty ledger when no snapshot exists or the stored
// one cannot be decoded; corrupt data is absorbed, never surfaced as an
// error. Save replaces the full prior snapshot for the key.
type Store interface {
	Load(ctx context.Context, accountKey string) (*ledger.Ledger, error)
	Save(ctx context.Context, accountKey string, l *ledger.Ledger) error
}
