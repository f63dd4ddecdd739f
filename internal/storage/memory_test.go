package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wosadvpro-arch/finance-buddy/internal/core"
	"github.com/wosadvpro-arch/finance-buddy/internal/ledger"
)

func TestMemoryLoadMissingKeyYieldsEmptyLedger(t *testing.T) {
	m := NewMemory()
	led, err := m.Load(context.Background(), "nobody@email.com")
	require.NoError(t, err)
	assert.Equal(t, 0, led.Len())
}

func TestMemorySaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	led := ledger.New()
	_, err := led.Add(core.Draft{
		Desc: "Salário", Type: "receita", Category: "Renda",
		Value: "5200", Date: "2024-06-01",
	})
	require.NoError(t, err)
	require.NoError(t, m.Save(ctx, "ana@email.com", led))

	restored, err := m.Load(ctx, "ana@email.com")
	require.NoError(t, err)
	assert.Equal(t, led.List(), restored.List())
}

func TestMemoryCorruptSnapshotFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	led := ledger.New()
	_, err := led.Add(core.Draft{
		Desc: "Aluguel", Type: "despesa", Category: "Moradia",
		Value: "1800", Date: "2024-06-02",
	})
	require.NoError(t, err)
	require.NoError(t, m.Save(ctx, "ana@email.com", led))

	m.Corrupt("ana@email.com")

	restored, err := m.Load(ctx, "ana@email.com")
	require.NoError(t, err)
	assert.Equal(t, 0, restored.Len())
}
