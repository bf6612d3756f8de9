package ingest

import (
	"context"

	"github.com/rentaly/offersearch/internal/domain"
)

// Repository defines the storage contract for ingestion. UpsertBatch
// must persist the whole batch atomically; Wipe must remove the whole
// dataset as one operation.
type Repository interface {
	UpsertBatch(ctx context.Context, offers []domain.Offer) error
	Wipe(ctx context.Context) error
}
