package draftstore

import (
	"context"
	"testing"
	"time"

	"cinema-checkout/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDraft() *entity.CheckoutDraft {
	return &entity.CheckoutDraft{
		ShowtimeID: uuid.New(),
		Step:       entity.StepSeats,
		QtyNormal:  2,
		Seats:      []entity.Seat{{Row: "A", Number: 1}, {Row: "A", Number: 2}},
	}
}

func TestMemoryStore_PutGetDelete(t *testing.T) {
	store := NewMemoryStore(30 * time.Minute)
	ctx := context.Background()
	token := uuid.NewString()
	draft := testDraft()

	require.NoError(t, store.Put(ctx, token, draft))

	got, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, draft.ShowtimeID, got.ShowtimeID)
	assert.Equal(t, draft.Seats, got.Seats)

	require.NoError(t, store.Delete(ctx, token))

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestMemoryStore_UnknownToken(t *testing.T) {
	store := NewMemoryStore(30 * time.Minute)

	_, err := store.Get(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := NewMemoryStore(30 * time.Minute)
	ctx := context.Background()
	token := uuid.NewString()

	require.NoError(t, store.Put(ctx, token, testDraft()))

	first, err := store.Get(ctx, token)
	require.NoError(t, err)
	first.QtyNormal = 99

	second, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, 2, second.QtyNormal)
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	store := NewMemoryStore(30 * time.Minute)
	ctx := context.Background()
	token := uuid.NewString()

	now := time.Now()
	store.nowFunc = func() time.Time { return now }

	require.NoError(t, store.Put(ctx, token, testDraft()))

	// Just inside the TTL
	store.nowFunc = func() time.Time { return now.Add(29 * time.Minute) }
	_, err := store.Get(ctx, token)
	require.NoError(t, err)

	// Past the TTL
	store.nowFunc = func() time.Time { return now.Add(31 * time.Minute) }
	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestMemoryStore_PutRefreshesTTL(t *testing.T) {
	store := NewMemoryStore(30 * time.Minute)
	ctx := context.Background()
	token := uuid.NewString()

	now := time.Now()
	store.nowFunc = func() time.Time { return now }
	require.NoError(t, store.Put(ctx, token, testDraft()))

	store.nowFunc = func() time.Time { return now.Add(20 * time.Minute) }
	require.NoError(t, store.Put(ctx, token, testDraft()))

	// 40 minutes after the first put, 20 after the refresh: still alive.
	store.nowFunc = func() time.Time { return now.Add(40 * time.Minute) }
	_, err := store.Get(ctx, token)
	assert.NoError(t, err)
}

func TestMemoryStore_TokensAreIsolated(t *testing.T) {
	store := NewMemoryStore(30 * time.Minute)
	ctx := context.Background()

	draftA := testDraft()
	draftB := testDraft()
	draftB.QtyNormal = 5

	require.NoError(t, store.Put(ctx, "token-a", draftA))
	require.NoError(t, store.Put(ctx, "token-b", draftB))

	gotA, err := store.Get(ctx, "token-a")
	require.NoError(t, err)
	gotB, err := store.Get(ctx, "token-b")
	require.NoError(t, err)

	assert.Equal(t, 2, gotA.QtyNormal)
	assert.Equal(t, 5, gotB.QtyNormal)
}
