package cart

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return NewStore(nil, time.Hour, nil)
}

func TestStoreApplyInOrder(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	seq1 := store.Begin("session:abc")
	seq2 := store.Begin("session:abc")
	require.Greater(t, seq2, seq1)

	first := &Cart{Items: []CartLine{{ID: "L1", ProductID: "P1", Quantity: 1}}}
	second := &Cart{Items: []CartLine{{ID: "L1", ProductID: "P1", Quantity: 2}}}

	assert.True(t, store.Apply(ctx, "session:abc", seq1, first))
	assert.True(t, store.Apply(ctx, "session:abc", seq2, second))

	got := store.Get(ctx, "session:abc")
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
}

func TestStoreDiscardsStaleResponse(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	seq1 := store.Begin("session:abc")
	seq2 := store.Begin("session:abc")

	// The later request's response arrives first
	newer := &Cart{Items: []CartLine{{ID: "L1", ProductID: "P1", Quantity: 5}}}
	require.True(t, store.Apply(ctx, "session:abc", seq2, newer))

	// The earlier request's response must not overwrite it
	older := &Cart{Items: []CartLine{{ID: "L1", ProductID: "P1", Quantity: 1}}}
	assert.False(t, store.Apply(ctx, "session:abc", seq1, older))

	got := store.Get(ctx, "session:abc")
	require.Len(t, got.Items, 1)
	assert.Equal(t, 5, got.Items[0].Quantity)
}

func TestStoreSessionsAreIndependent(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	seqA := store.Begin("session:a")
	seqB := store.Begin("session:b")
	assert.Equal(t, seqA, seqB)

	store.Apply(ctx, "session:a", seqA, &Cart{Items: []CartLine{{ID: "L1", Quantity: 1}}})

	assert.Len(t, store.Get(ctx, "session:a").Items, 1)
	assert.Empty(t, store.Get(ctx, "session:b").Items)
}

func TestStoreGetUnknownSession(t *testing.T) {
	store := newTestStore()

	got := store.Get(context.Background(), "session:nobody")
	require.NotNil(t, got)
	assert.Empty(t, got.Items)
	assert.Equal(t, 0, got.TotalItemCount())
}

func TestStoreClear(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	seq := store.Begin("session:abc")
	store.Apply(ctx, "session:abc", seq, &Cart{Items: []CartLine{{ID: "L1", Quantity: 3}}})

	store.Clear(ctx, "session:abc")

	got := store.Get(ctx, "session:abc")
	assert.Empty(t, got.Items)

	// Sequence numbering starts over for a fresh session
	assert.Equal(t, uint64(1), store.Begin("session:abc"))
}
