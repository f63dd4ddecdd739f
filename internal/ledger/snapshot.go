package ledger

import "github.com/wosadvpro-arch/finance-buddy/internal/core"

// SnapshotSchemaVersion tags persisted snapshots for forward compatibility.
const SnapshotSchemaVersion = 1

// Snapshot is the full persisted form of a ledger: the complete transaction
// list, no delta format.
type Snapshot struct {
	SchemaVersion int                `json:"schema_version"`
	LastID        int64              `json:"last_id"`
	Transactions  []core.Transaction `json:"transactions"`
}

func (l *Ledger) Snapshot() Snapshot {
	return Snapshot{
		SchemaVersion: SnapshotSchemaVersion,
		LastID:        l.lastID,
		Transactions:  l.List(),
	}
}

// FromSnapshot restores a ledger. The ID high-water mark is recomputed from
// the records themselves so identities stay monotonic even if the stored
// LastID is stale.
func FromSnapshot(s Snapshot) *Ledger {
	l := &Ledger{
		txs:    make([]core.Transaction, len(s.Transactions)),
		lastID: s.LastID,
	}
	copy(l.txs, s.Transactions)
	for _, tx := range l.txs {
		if tx.ID > l.lastID {
			l.lastID = tx.ID
		}
	}
	return l
}
