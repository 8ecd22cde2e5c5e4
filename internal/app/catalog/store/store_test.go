package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/achadinhos/catalog-service/internal/app/catalog/domain"
)

func TestNewStore_EmptyPreLoadSnapshot(t *testing.T) {
	st := NewStore()
	snap := st.Snapshot()
	require.NotNil(t, snap)
	assert.Equal(t, 0, snap.Count())
	assert.False(t, snap.Failed())
}

func TestReplace_SwapsWholesale(t *testing.T) {
	st := NewStore()

	first := &Snapshot{Generation: "g1", Products: []domain.Product{{ID: "1"}, {ID: "2"}}}
	st.Replace(first)
	assert.Equal(t, 2, st.Snapshot().Count())

	// The second generation replaces, never merges.
	second := &Snapshot{Generation: "g2", Products: []domain.Product{{ID: "9"}}}
	st.Replace(second)

	snap := st.Snapshot()
	assert.Equal(t, "g2", snap.Generation)
	assert.Equal(t, 1, snap.Count())
	assert.Nil(t, snap.FindByID("1"))
	assert.NotNil(t, snap.FindByID("9"))
}

func TestReplace_NilProductsBecomeEmptySlice(t *testing.T) {
	st := NewStore()
	st.Replace(&Snapshot{Generation: "g", Err: "load failed"})

	snap := st.Snapshot()
	require.NotNil(t, snap.Products)
	assert.True(t, snap.Failed())
}

func TestFindByID(t *testing.T) {
	snap := &Snapshot{Products: []domain.Product{{ID: "a", Title: "A"}, {ID: "b"}}}
	p := snap.FindByID("a")
	require.NotNil(t, p)
	assert.Equal(t, "A", p.Title)
	assert.Nil(t, snap.FindByID("zzz"))
}
