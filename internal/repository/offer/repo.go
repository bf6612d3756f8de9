// Package offer persists offers in a single hash: field = offer ID,
// value = JSON offer record. One hash keeps the store contract simple:
// a batch write is one atomic HSET, a full scan is one HGETALL snapshot,
// and a wipe is one DEL.
package offer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rentaly/offersearch/internal/domain"
)

// store is the consumer interface for offer persistence (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
}

// Repo implements the offer storage contract for the search and ingest
// use cases.
type Repo struct {
	store store
	key   string
}

// New creates an offer repository. keyPrefix namespaces the hash key;
// empty falls back to the default prefix.
func New(s store, keyPrefix string) *Repo {
	if keyPrefix == "" {
		keyPrefix = domain.KeyPrefix
	}
	return &Repo{store: s, key: keyPrefix + "offers"}
}

// Upsert persists one offer, overwriting any record with the same ID.
func (r *Repo) Upsert(ctx context.Context, o *domain.Offer) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("marshal offer %s: %w", o.ID, err)
	}
	if err := r.store.HSet(ctx, r.key, map[string]string{o.ID: string(data)}); err != nil {
		return fmt.Errorf("hset %s: %w", r.key, err)
	}
	return nil
}

// UpsertBatch persists all offers as one atomic multi-field write.
// Either the whole batch becomes visible or none of it does. A later
// duplicate ID within the batch wins, matching upsert semantics.
func (r *Repo) UpsertBatch(ctx context.Context, offers []domain.Offer) error {
	if len(offers) == 0 {
		return nil
	}
	fields := make(map[string]string, len(offers))
	for i := range offers {
		data, err := json.Marshal(&offers[i])
		if err != nil {
			return fmt.Errorf("marshal offer %s: %w", offers[i].ID, err)
		}
		fields[offers[i].ID] = string(data)
	}
	if err := r.store.HSet(ctx, r.key, fields); err != nil {
		return fmt.Errorf("hset %s: %w", r.key, err)
	}
	return nil
}

// SnapshotAll returns every stored offer from one consistent point-in-time
// view. Order is unspecified; callers impose their own ordering.
func (r *Repo) SnapshotAll(ctx context.Context) ([]domain.Offer, error) {
	m, err := r.store.HGetAll(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("hgetall %s: %w", r.key, err)
	}

	offers := make([]domain.Offer, 0, len(m))
	for id, raw := range m {
		var o domain.Offer
		if err := json.Unmarshal([]byte(raw), &o); err != nil {
			return nil, fmt.Errorf("decode offer %s: %w", id, err)
		}
		offers = append(offers, o)
	}
	return offers, nil
}

// Wipe removes every stored offer as one atomic operation. Wiping an
// empty dataset succeeds.
func (r *Repo) Wipe(ctx context.Context) error {
	if err := r.store.Del(ctx, r.key); err != nil {
		return fmt.Errorf("del %s: %w", r.key, err)
	}
	return nil
}
