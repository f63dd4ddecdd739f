// Package ledger holds the authoritative transaction collection for one
// account. All mutations go through Add/Update/Remove; derived views are
// computed elsewhere from List snapshots.
package ledger

import (
	"time"

	"github.com/wosadvpro-arch/finance-buddy/internal/core"
)

// Ledger is an insertion-ordered transaction collection. Newest-first is the
// display convention; nothing else may depend on ordering. A Ledger is owned
// by a single session and is not safe for concurrent use.
type Ledger struct {
	txs     []core.Transaction
	lastID  int64
	version uint64
}

func New() *Ledger {
	return &Ledger{}
}

// Add validates the draft, assigns an identity and prepends the transaction.
// On validation failure the ledger is left unchanged.
func (l *Ledger) Add(d core.Draft) (core.Transaction, error) {
	tx, err := core.ParseDraft(d)
	if err != nil {
		return core.Transaction{}, err
	}
	tx.ID = l.nextID()
	l.txs = append([]core.Transaction{tx}, l.txs...)
	l.version++
	return tx, nil
}

// Update merges the patch into the record matching id and replaces it.
// A missing id is a silent no-op (nil, nil). A patch producing an invalid
// record is rejected and the ledger is left unchanged.
func (l *Ledger) Update(id int64, p core.Patch) (*core.Transaction, error) {
	for i, tx := range l.txs {
		if tx.ID != id {
			continue
		}
		merged, err := p.Apply(tx)
		if err != nil {
			return nil, err
		}
		if err := merged.Validate(); err != nil {
			return nil, err
		}
		l.txs[i] = merged
		l.version++
		return &merged, nil
	}
	return nil, nil
}

// Remove deletes the record matching id. Removing an absent id is a no-op;
// the return value reports whether anything was deleted.
func (l *Ledger) Remove(id int64) bool {
	for i, tx := range l.txs {
		if tx.ID == id {
			l.txs = append(l.txs[:i], l.txs[i+1:]...)
			l.version++
			return true
		}
	}
	return false
}

// Clone returns a deep copy sharing no state with the receiver. Callers that
// must persist before exposing a mutation apply it to a clone and swap.
func (l *Ledger) Clone() *Ledger {
	return &Ledger{
		txs:     append([]core.Transaction(nil), l.txs...),
		lastID:  l.lastID,
		version: l.version,
	}
}

// List returns a copy of the full collection, newest first.
func (l *Ledger) List() []core.Transaction {
	out := make([]core.Transaction, len(l.txs))
	copy(out, l.txs)
	return out
}

// Get returns the transaction matching id, or nil.
func (l *Ledger) Get(id int64) *core.Transaction {
	for _, tx := range l.txs {
		if tx.ID == id {
			out := tx
			return &out
		}
	}
	return nil
}

func (l *Ledger) Len() int {
	return len(l.txs)
}

// Version counts successful mutations. Cached derived views keyed on
// (account, version) are therefore invalidated by every mutation.
func (l *Ledger) Version() uint64 {
	return l.version
}

// nextID issues creation-timestamp identities, bumping on collision so IDs
// stay strictly increasing even within one millisecond.
func (l *Ledger) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return id
}
