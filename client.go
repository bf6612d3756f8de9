// Package offersearch is an embedded client for the offer search engine:
// it wires the ingestion and search services directly over a Redis or
// Valkey store, without going through the HTTP API.
package offersearch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rentaly/offersearch/internal/db"
	dbRedis "github.com/rentaly/offersearch/internal/db/redis"
	offerrepo "github.com/rentaly/offersearch/internal/repository/offer"
	ingestuc "github.com/rentaly/offersearch/internal/usecase/ingest"
	searchuc "github.com/rentaly/offersearch/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the offersearch embedded entry point.
type Client struct {
	store  db.Store
	search *searchuc.Service
	ingest *ingestuc.Service
}

// New creates a Client and connects to the database.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{readinessTimeout: defaultReadinessTimeout}
	for _, o := range opts {
		o(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("offersearch: database address required (use WithAddrs)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})
	if err != nil {
		return nil, fmt.Errorf("offersearch: create store: %w", err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, cfg.readinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("offersearch: database not ready: %w", err)
	}

	return newClient(store, cfg.keyPrefix), nil
}

func newClient(store db.Store, keyPrefix string) *Client {
	repo := offerrepo.New(store, keyPrefix)
	return &Client{
		store:  store,
		search: searchuc.New(repo),
		ingest: ingestuc.New(repo),
	}
}

// CreateOffers persists a batch of offers as one atomic write. Offers
// sharing an ID with a stored record overwrite it (upsert).
func (c *Client) CreateOffers(ctx context.Context, offers []Offer) error {
	if err := c.ingest.Create(ctx, toDomainOffers(offers)); err != nil {
		return fmt.Errorf("create offers: %w", err)
	}
	return nil
}

// Search runs one filtered, ordered, paginated query with facets over a
// consistent snapshot of the dataset.
func (c *Client) Search(ctx context.Context, q SearchQuery) (*SearchResult, error) {
	built, err := toQuery(q)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	res, err := c.search.Search(ctx, &built)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return fromResult(res), nil
}

// Wipe removes every stored offer atomically. Idempotent.
func (c *Client) Wipe(ctx context.Context) error {
	if err := c.ingest.Wipe(ctx); err != nil {
		return fmt.Errorf("wipe: %w", err)
	}
	return nil
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Close shuts down the underlying store connection.
func (c *Client) Close() {
	c.store.Close()
}
