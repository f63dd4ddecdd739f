// Package storage provides the persistence backends for account ledgers:
// an embedded SQLite database and an in-memory store for tests and the
// default zero-setup mode. Both keep one full snapshot per account key.
package storage

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/wosadvpro-arch/finance-buddy/internal/ledger"
)

func encodeSnapshot(l *ledger.Ledger) ([]byte, error) {
	return json.Marshal(l.Snapshot())
}

// decodeSnapshot restores a ledger from raw snapshot bytes. Corrupt data
// falls back to an empty ledger with a warning; a read failure must never
// surface to the caller.
func decodeSnapshot(ctx context.Context, accountKey string, raw []byte) *ledger.Ledger {
	var snap ledger.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		slog.WarnContext(ctx, "Corrupt ledger snapshot, starting empty",
			"account", accountKey, "error", err)
		return ledger.New()
	}
	return ledger.FromSnapshot(snap)
}
