package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	pkgerrors "github.com/voguelabs/storefront-backend/pkg/errors"
)

// SortOption orders a product listing.
type SortOption string

const (
	SortNewest    SortOption = "newest"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortPopular   SortOption = "popular"
)

var validSortOptions = []SortOption{SortNewest, SortPriceAsc, SortPriceDesc, SortPopular}

// ParseSortOption converts raw input into a SortOption. Empty input means
// the default listing order.
func ParseSortOption(value string) (SortOption, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return SortNewest, nil
	}
	for _, candidate := range validSortOptions {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort option %q", value)
}

// Service is the read-only catalog surface the presentation layer queries.
type Service interface {
	List(sortBy SortOption) []Product
	FindByID(id string) (Product, error)
	FilterByCategory(name string, sortBy SortOption) []Product
	NewArrivals() []Product
	Trending() []Product
	Categories() []Category
}

type service struct {
	products   []Product
	categories []Category
}

// ServiceParams allows overriding the built-in dataset, mainly for tests.
type ServiceParams struct {
	Products   []Product
	Categories []Category
}

// NewService validates the dataset and builds the catalog. Invalid seed
// data is a programmer error and fails the boot.
func NewService(params ServiceParams) (Service, error) {
	products := params.Products
	if products == nil {
		products = seedProducts
	}
	categories := params.Categories
	if categories == nil {
		categories = seedCategories
	}

	validate := validator.New()
	seen := map[string]bool{}
	for _, p := range products {
		if err := validate.Struct(p); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("invalid product %q", p.ID))
		}
		if seen[p.ID] {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("duplicate product id %q", p.ID))
		}
		if p.InStock && len(p.Sizes) == 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("purchasable product %q has no sizes", p.ID))
		}
		seen[p.ID] = true
	}
	slugs := map[string]bool{}
	for _, c := range categories {
		if err := validate.Struct(c); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("invalid category %q", c.ID))
		}
		if slugs[c.Slug] {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("duplicate category slug %q", c.Slug))
		}
		slugs[c.Slug] = true
	}

	return &service{products: products, categories: categories}, nil
}

// List returns every product in the requested order.
func (s *service) List(sortBy SortOption) []Product {
	return sortProducts(copyProducts(s.products), sortBy)
}

// FindByID returns the product with the given id.
func (s *service) FindByID(id string) (Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %q not found", id))
}

// FilterByCategory returns products whose category matches name,
// case-insensitively.
func (s *service) FilterByCategory(name string, sortBy SortOption) []Product {
	matched := make([]Product, 0)
	for _, p := range s.products {
		if strings.EqualFold(p.Category, name) {
			matched = append(matched, p)
		}
	}
	return sortProducts(matched, sortBy)
}

// NewArrivals returns the products flagged as new, in catalog order.
func (s *service) NewArrivals() []Product {
	return s.filterByFlag(func(p Product) bool { return p.IsNew })
}

// Trending returns the products flagged as trending, in catalog order.
func (s *service) Trending() []Product {
	return s.filterByFlag(func(p Product) bool { return p.IsTrending })
}

// Categories returns every browsing category.
func (s *service) Categories() []Category {
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *service) filterByFlag(match func(Product) bool) []Product {
	out := make([]Product, 0)
	for _, p := range s.products {
		if match(p) {
			out = append(out, p)
		}
	}
	return out
}

func copyProducts(products []Product) []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

func sortProducts(products []Product, sortBy SortOption) []Product {
	switch sortBy {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case SortPopular:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Reviews > products[j].Reviews })
	default:
		// newest keeps curation order, new arrivals first
		sort.SliceStable(products, func(i, j int) bool { return products[i].IsNew && !products[j].IsNew })
	}
	return products
}
