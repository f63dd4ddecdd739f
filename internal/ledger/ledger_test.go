package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wosadvpro-arch/finance-buddy/internal/core"
)

func draft(desc, typ, value, date string) core.Draft {
	return core.Draft{Desc: desc, Type: typ, Category: "Outros", Value: core.DraftValue(value), Date: date}
}

func TestAddAssignsMonotonicIDs(t *testing.T) {
	l := New()
	a, err := l.Add(draft("um", "despesa", "10", "2024-06-01"))
	require.NoError(t, err)
	b, err := l.Add(draft("dois", "despesa", "20", "2024-06-02"))
	require.NoError(t, err)
	c, err := l.Add(draft("três", "receita", "30", "2024-06-03"))
	require.NoError(t, err)

	assert.Less(t, a.ID, b.ID)
	assert.Less(t, b.ID, c.ID)
	assert.Equal(t, 3, l.Len())
	// Newest first.
	assert.Equal(t, c.ID, l.List()[0].ID)
}

func TestAddRejectsInvalidDraft(t *testing.T) {
	l := New()
	cases := []core.Draft{
		draft("", "despesa", "10", "2024-06-01"),
		draft("ok", "despesa", "0", "2024-06-01"),
		draft("ok", "despesa", "-3", "2024-06-01"),
		draft("ok", "despesa", "10", ""),
		draft("ok", "outro", "10", "2024-06-01"),
	}
	for i, d := range cases {
		_, err := l.Add(d)
		assert.Error(t, err, "case %d", i)
	}
	assert.Equal(t, 0, l.Len())
	assert.EqualValues(t, 0, l.Version())
}

func TestUpdateMergesByID(t *testing.T) {
	l := New()
	tx, err := l.Add(draft("Uber", "despesa", "85", "2024-06-06"))
	require.NoError(t, err)

	val := "300"
	updated, err := l.Update(tx.ID, core.Patch{Value: &val})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.EqualValues(t, 30000, updated.Amount.Cents)
	assert.Equal(t, "Uber", updated.Desc)
	assert.EqualValues(t, 30000, l.Get(tx.ID).Amount.Cents)
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	l := New()
	_, err := l.Add(draft("Uber", "despesa", "85", "2024-06-06"))
	require.NoError(t, err)
	before := l.Version()

	val := "300"
	updated, err := l.Update(424242, core.Patch{Value: &val})
	assert.NoError(t, err)
	assert.Nil(t, updated)
	assert.Equal(t, before, l.Version())
}

func TestUpdateInvalidPatchLeavesLedgerUnchanged(t *testing.T) {
	l := New()
	tx, err := l.Add(draft("Uber", "despesa", "85", "2024-06-06"))
	require.NoError(t, err)

	empty := ""
	_, err = l.Update(tx.ID, core.Patch{Desc: &empty})
	assert.Error(t, err)
	assert.Equal(t, "Uber", l.Get(tx.ID).Desc)
}

func TestRemoveIsIdempotent(t *testing.T) {
	l := New()
	tx, err := l.Add(draft("Netflix", "despesa", "45", "2024-06-07"))
	require.NoError(t, err)

	assert.True(t, l.Remove(tx.ID))
	assert.False(t, l.Remove(tx.ID))
	assert.Equal(t, 0, l.Len())
}

func TestSnapshotRoundTrip(t *testing.T) {
	l := New()
	_, err := l.Add(draft("Salário", "receita", "5200", "2024-06-01"))
	require.NoError(t, err)
	_, err = l.Add(draft("Aluguel", "despesa", "1800", "2024-06-02"))
	require.NoError(t, err)

	snap := l.Snapshot()
	assert.Equal(t, SnapshotSchemaVersion, snap.SchemaVersion)

	restored := FromSnapshot(snap)
	assert.Equal(t, l.List(), restored.List())

	// Identities assigned after restore keep increasing.
	tx, err := restored.Add(draft("Academia", "despesa", "99", "2024-06-08"))
	require.NoError(t, err)
	assert.Greater(t, tx.ID, snap.LastID)
}
