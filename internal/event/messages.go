// Package event publishes and consumes ledger change events over AMQP so an
// external worker can mirror mutations (for example into a spreadsheet).
package event

import (
	"encoding/json"
	"time"

	"github.com/wosadvpro-arch/finance-buddy/internal/core"
)

// LedgerChangeMessage describes one ledger mutation. For deletions only the
// transaction ID is meaningful.
type LedgerChangeMessage struct {
	AccountKey  string           `json:"account_key"`
	Op          string           `json:"op"`
	Transaction core.Transaction `json:"transaction"`
	Timestamp   time.Time        `json:"timestamp"`
}

func NewLedgerChangeMessage(accountKey, op string, tx core.Transaction) *LedgerChangeMessage {
	return &LedgerChangeMessage{
		AccountKey:  accountKey,
		Op:          op,
		Transaction: tx,
		Timestamp:   time.Now(),
	}
}

func (m *LedgerChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func LedgerChangeMessageFromJSON(data []byte) (*LedgerChangeMessage, error) {
	var msg LedgerChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
