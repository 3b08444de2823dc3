package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/voguelabs/storefront-backend/internal/catalog"
	"github.com/voguelabs/storefront-backend/pkg/config"
	"github.com/voguelabs/storefront-backend/pkg/enums"
	pkgerrors "github.com/voguelabs/storefront-backend/pkg/errors"
	"github.com/voguelabs/storefront-backend/pkg/kv"
	"github.com/voguelabs/storefront-backend/pkg/logger"
	"github.com/voguelabs/storefront-backend/pkg/metrics"
)

const metricStore = "cart"

// LineItem is a product snapshot plus the shopper's selections. Two lines
// with the same product but different size or color are distinct.
type LineItem struct {
	catalog.Product
	Quantity      int    `json:"quantity"`
	SelectedSize  string `json:"selected_size"`
	SelectedColor string `json:"selected_color"`
}

// Service holds the cart's line items and keeps the durable copy in sync.
//
// Mutations always succeed from the caller's point of view: a failed
// durable write is logged and counted, and the in-memory collection stays
// authoritative for the rest of the run.
type Service interface {
	Items() []LineItem
	Add(ctx context.Context, product catalog.Product, size, color string) enums.StoreOutcome
	Remove(ctx context.Context, productID string) enums.StoreOutcome
	UpdateQuantity(ctx context.Context, productID string, quantity int) enums.StoreOutcome
	Clear(ctx context.Context) enums.StoreOutcome
	TotalItems() int
	TotalPrice() float64
}

type service struct {
	mu      sync.Mutex
	items   []LineItem
	store   kv.Store
	logg    *logger.Logger
	metrics *metrics.StoreMetrics
}

// ServiceParams groups dependencies for the cart store.
type ServiceParams struct {
	Store   kv.Store
	Logger  *logger.Logger
	Metrics *metrics.StoreMetrics
}

// NewService hydrates the cart from durable storage. A missing or
// malformed stored document means an empty cart, never an error.
func NewService(ctx context.Context, params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "kv store is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}

	s := &service{
		items:   []LineItem{},
		store:   params.Store,
		logg:    params.Logger,
		metrics: params.Metrics,
	}
	s.hydrate(ctx)
	return s, nil
}

func (s *service) hydrate(ctx context.Context) {
	raw, err := s.store.Get(ctx, config.StorageKeyCart)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "cart hydration failed, starting empty")
		}
		return
	}

	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "stored cart is malformed, starting empty")
		return
	}
	s.items = items
}

// Items returns a copy of the line items in insertion order.
func (s *service) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Add appends a new line for the (product, size, color) triple, or bumps
// the quantity when the same triple is already in the cart.
func (s *service) Add(ctx context.Context, product catalog.Product, size, color string) enums.StoreOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome := enums.OutcomeAdded
	next := make([]LineItem, len(s.items))
	copy(next, s.items)

	found := false
	for i := range next {
		if next[i].ID == product.ID && next[i].SelectedSize == size && next[i].SelectedColor == color {
			next[i].Quantity++
			outcome = enums.OutcomeQuantityUpdated
			found = true
			break
		}
	}
	if !found {
		next = append(next, LineItem{
			Product:       product,
			Quantity:      1,
			SelectedSize:  size,
			SelectedColor: color,
		})
	}

	s.items = next
	s.persist(ctx)
	s.metrics.IncOperation(metricStore, outcome)
	return outcome
}

// Remove drops every line for the product id, whatever its variants.
// Removing an absent id is harmless and still reports removed.
func (s *service) Remove(ctx context.Context, productID string) enums.StoreOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(ctx, productID)
	s.metrics.IncOperation(metricStore, enums.OutcomeRemoved)
	return enums.OutcomeRemoved
}

// UpdateQuantity sets the quantity on the first line matching the product
// id; a quantity below one removes the product instead. With several
// variants of one product in the cart, the earliest line wins.
func (s *service) UpdateQuantity(ctx context.Context, productID string, quantity int) enums.StoreOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		s.removeLocked(ctx, productID)
		s.metrics.IncOperation(metricStore, enums.OutcomeRemoved)
		return enums.OutcomeRemoved
	}

	next := make([]LineItem, len(s.items))
	copy(next, s.items)
	for i := range next {
		if next[i].ID == productID {
			next[i].Quantity = quantity
			break
		}
	}

	s.items = next
	s.persist(ctx)
	s.metrics.IncOperation(metricStore, enums.OutcomeQuantityUpdated)
	return enums.OutcomeQuantityUpdated
}

// Clear empties the cart.
func (s *service) Clear(ctx context.Context) enums.StoreOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = []LineItem{}
	s.persist(ctx)
	s.metrics.IncOperation(metricStore, enums.OutcomeCartCleared)
	return enums.OutcomeCartCleared
}

// TotalItems sums the line quantities.
func (s *service) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums price times quantity over the lines, at the current
// unit price. Decimal accumulation keeps float drift out of the total.
func (s *service) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, item := range s.items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	result, _ := total.Float64()
	return result
}

func (s *service) removeLocked(ctx context.Context, productID string) {
	next := make([]LineItem, 0, len(s.items))
	for _, item := range s.items {
		if item.ID != productID {
			next = append(next, item)
		}
	}
	s.items = next
	s.persist(ctx)
}

func (s *service) persist(ctx context.Context) {
	raw, err := json.Marshal(s.items)
	if err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "cart serialization failed, durable copy is stale")
		s.metrics.IncPersistFailure(metricStore)
		return
	}
	if err := s.store.Set(ctx, config.StorageKeyCart, string(raw)); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "cart durable write failed, memory state remains authoritative")
		s.metrics.IncPersistFailure(metricStore)
	}
}
