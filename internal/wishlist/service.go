package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/voguelabs/storefront-backend/internal/catalog"
	"github.com/voguelabs/storefront-backend/pkg/config"
	"github.com/voguelabs/storefront-backend/pkg/enums"
	pkgerrors "github.com/voguelabs/storefront-backend/pkg/errors"
	"github.com/voguelabs/storefront-backend/pkg/kv"
	"github.com/voguelabs/storefront-backend/pkg/logger"
	"github.com/voguelabs/storefront-backend/pkg/metrics"
)

const metricStore = "wishlist"

// Service holds the saved products, keyed by product id with insertion
// order preserved for display. Persistence follows the cart store: the
// durable copy is best effort, memory is authoritative.
type Service interface {
	Items() []catalog.Product
	Add(ctx context.Context, product catalog.Product) enums.StoreOutcome
	Remove(ctx context.Context, productID string) enums.StoreOutcome
	Contains(productID string) bool
	Clear(ctx context.Context) enums.StoreOutcome
}

type service struct {
	mu      sync.Mutex
	items   []catalog.Product
	store   kv.Store
	logg    *logger.Logger
	metrics *metrics.StoreMetrics
}

// ServiceParams groups dependencies for the wishlist store.
type ServiceParams struct {
	Store   kv.Store
	Logger  *logger.Logger
	Metrics *metrics.StoreMetrics
}

// NewService hydrates the wishlist from durable storage. A missing or
// malformed stored document means an empty wishlist, never an error.
func NewService(ctx context.Context, params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "kv store is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}

	s := &service{
		items:   []catalog.Product{},
		store:   params.Store,
		logg:    params.Logger,
		metrics: params.Metrics,
	}
	s.hydrate(ctx)
	return s, nil
}

func (s *service) hydrate(ctx context.Context) {
	raw, err := s.store.Get(ctx, config.StorageKeyWishlist)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "wishlist hydration failed, starting empty")
		}
		return
	}

	var items []catalog.Product
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "stored wishlist is malformed, starting empty")
		return
	}
	s.items = items
}

// Items returns a copy of the saved products in insertion order.
func (s *service) Items() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]catalog.Product, len(s.items))
	copy(out, s.items)
	return out
}

// Add appends the product unless its id is already saved; a duplicate add
// leaves the collection untouched and reports already_in_wishlist.
func (s *service) Add(ctx context.Context, product catalog.Product) enums.StoreOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ID == product.ID {
			s.metrics.IncOperation(metricStore, enums.OutcomeAlreadyInWishlist)
			return enums.OutcomeAlreadyInWishlist
		}
	}

	next := make([]catalog.Product, len(s.items), len(s.items)+1)
	copy(next, s.items)
	next = append(next, product)
	s.items = next
	s.persist(ctx)
	s.metrics.IncOperation(metricStore, enums.OutcomeAdded)
	return enums.OutcomeAdded
}

// Remove drops the entry with the matching id; removing an absent id
// still reports removed.
func (s *service) Remove(ctx context.Context, productID string) enums.StoreOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]catalog.Product, 0, len(s.items))
	for _, item := range s.items {
		if item.ID != productID {
			next = append(next, item)
		}
	}
	s.items = next
	s.persist(ctx)
	s.metrics.IncOperation(metricStore, enums.OutcomeRemoved)
	return enums.OutcomeRemoved
}

// Contains reports whether the product id is saved.
func (s *service) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == productID {
			return true
		}
	}
	return false
}

// Clear empties the wishlist.
func (s *service) Clear(ctx context.Context) enums.StoreOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = []catalog.Product{}
	s.persist(ctx)
	s.metrics.IncOperation(metricStore, enums.OutcomeWishlistCleared)
	return enums.OutcomeWishlistCleared
}

func (s *service) persist(ctx context.Context) {
	raw, err := json.Marshal(s.items)
	if err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "wishlist serialization failed, durable copy is stale")
		s.metrics.IncPersistFailure(metricStore)
		return
	}
	if err := s.store.Set(ctx, config.StorageKeyWishlist, string(raw)); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "wishlist durable write failed, memory state remains authoritative")
		s.metrics.IncPersistFailure(metricStore)
	}
}
