// Package draftstore holds in-progress checkout drafts, one per session
// token, for the lifetime of the wizard. Drafts expire with the store TTL;
// an expired draft simply reads back as ErrDraftNotFound.
package draftstore

import (
	"context"
	"errors"

	"cinema-checkout/internal/data/entity"
)

// ErrDraftNotFound is returned when no live draft exists for a token -
// either never started or already expired/committed.
var ErrDraftNotFound = errors.New("draft not found")

// Store is the draft state contract: get/put/delete by session token.
// Only the owning session's requests touch a given draft, so no locking
// is required inside the store.
type Store interface {
	Get(ctx context.Context, token string) (*entity.CheckoutDraft, error)
	Put(ctx context.Context, token string, draft *entity.CheckoutDraft) error
	Delete(ctx context.Context, token string) error
}
