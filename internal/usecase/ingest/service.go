// Package ingest validates and durably persists offer batches.
package ingest

import (
	"context"
	"fmt"

	"github.com/rentaly/offersearch/internal/domain"
	"github.com/rentaly/offersearch/internal/metrics"
)

// Service handles offer ingestion and dataset wipes.
type Service struct {
	repo Repository
}

// New creates an ingestion service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and persists a batch of offers as one atomic write.
// An empty batch is rejected before touching the store. Validation
// failures reject the whole batch with no partial effect; re-submitting
// an existing ID overwrites the stored record (upsert).
func (s *Service) Create(ctx context.Context, offers []domain.Offer) error {
	if len(offers) == 0 {
		return domain.ErrEmptyBatch
	}
	for i := range offers {
		if err := offers[i].Validate(); err != nil {
			return fmt.Errorf("offer %d: %w", i, err)
		}
	}
	if err := s.repo.UpsertBatch(ctx, offers); err != nil {
		return fmt.Errorf("persist batch: %w", err)
	}
	metrics.OffersIngested.Add(float64(len(offers)))
	return nil
}

// Wipe removes every stored offer atomically. Idempotent: wiping an
// empty dataset succeeds.
func (s *Service) Wipe(ctx context.Context) error {
	if err := s.repo.Wipe(ctx); err != nil {
		return fmt.Errorf("wipe offers: %w", err)
	}
	metrics.WipesTotal.Inc()
	return nil
}
