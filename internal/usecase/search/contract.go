package search

import (
	"context"

	"github.com/rentaly/offersearch/internal/domain"
)

// Repository defines the storage contract for search operations. The
// engine never random-accesses by key: one snapshot scan per query.
type Repository interface {
	SnapshotAll(ctx context.Context) ([]domain.Offer, error)
}
