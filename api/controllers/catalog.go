package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/voguelabs/storefront-backend/api/responses"
	"github.com/voguelabs/storefront-backend/internal/catalog"
	pkgerrors "github.com/voguelabs/storefront-backend/pkg/errors"
	"github.com/voguelabs/storefront-backend/pkg/logger"
)

// ListProducts returns the catalog, optionally filtered by category and
// ordered by the sort query parameter.
func ListProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sortBy, err := catalog.ParseSortOption(r.URL.Query().Get("sort"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort option"))
			return
		}

		var products []catalog.Product
		if category := r.URL.Query().Get("category"); category != "" {
			products = svc.FilterByCategory(category, sortBy)
		} else {
			products = svc.List(sortBy)
		}

		responses.WriteSuccess(w, map[string]any{
			"products": products,
			"count":    len(products),
		})
	}
}

// GetProduct returns a single product by id.
func GetProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		product, err := svc.FindByID(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// ListCategories returns the browsing categories.
func ListCategories(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"categories": svc.Categories(),
		})
	}
}

// ListNewArrivals returns the products flagged as new.
func ListNewArrivals(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products := svc.NewArrivals()
		responses.WriteSuccess(w, map[string]any{
			"products": products,
			"count":    len(products),
		})
	}
}

// ListTrending returns the products flagged as trending.
func ListTrending(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products := svc.Trending()
		responses.WriteSuccess(w, map[string]any{
			"products": products,
			"count":    len(products),
		})
	}
}
