package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/voguelabs/storefront-backend/api/responses"
	"github.com/voguelabs/storefront-backend/api/validators"
	"github.com/voguelabs/storefront-backend/internal/catalog"
	"github.com/voguelabs/storefront-backend/internal/wishlist"
	"github.com/voguelabs/storefront-backend/pkg/logger"
)

type addWishlistItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

func wishlistSnapshot(svc wishlist.Service, outcome string) map[string]any {
	items := svc.Items()
	return map[string]any{
		"outcome": outcome,
		"items":   items,
		"count":   len(items),
	}
}

// GetWishlist returns the saved products in insertion order.
func GetWishlist(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := svc.Items()
		responses.WriteSuccess(w, map[string]any{
			"items": items,
			"count": len(items),
		})
	}
}

// AddWishlistItem saves the product; a duplicate add is a no-op reported
// as already_in_wishlist.
func AddWishlistItem(wishlistSvc wishlist.Service, catalogSvc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addWishlistItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := catalogSvc.FindByID(req.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		outcome := wishlistSvc.Add(r.Context(), product)
		responses.WriteSuccessStatus(w, http.StatusCreated, wishlistSnapshot(wishlistSvc, outcome.String()))
	}
}

// RemoveWishlistItem drops the product from the wishlist.
func RemoveWishlistItem(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		outcome := svc.Remove(r.Context(), chi.URLParam(r, "productId"))
		responses.WriteSuccess(w, wishlistSnapshot(svc, outcome.String()))
	}
}

// ClearWishlist empties the wishlist.
func ClearWishlist(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		outcome := svc.Clear(r.Context())
		responses.WriteSuccess(w, wishlistSnapshot(svc, outcome.String()))
	}
}
