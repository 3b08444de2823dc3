package controllers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/voguelabs/storefront-backend/api/responses"
	"github.com/voguelabs/storefront-backend/api/validators"
	"github.com/voguelabs/storefront-backend/internal/cart"
	"github.com/voguelabs/storefront-backend/internal/catalog"
	pkgerrors "github.com/voguelabs/storefront-backend/pkg/errors"
	"github.com/voguelabs/storefront-backend/pkg/logger"
)

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func cartSnapshot(svc cart.Service, outcome string) map[string]any {
	return map[string]any{
		"outcome":     outcome,
		"items":       svc.Items(),
		"total_items": svc.TotalItems(),
		"total_price": svc.TotalPrice(),
	}
}

// GetCart returns the cart lines and totals.
func GetCart(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"items":       svc.Items(),
			"total_items": svc.TotalItems(),
			"total_price": svc.TotalPrice(),
		})
	}
}

// AddCartItem resolves the product and adds it with the chosen variant.
// A product sold in sizes requires a size, one sold in colors requires a
// color; the cart is never touched on a rejected selection.
func AddCartItem(cartSvc cart.Service, catalogSvc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addCartItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := catalogSvc.FindByID(req.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := validateSelection(product, req.Size, req.Color); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		outcome := cartSvc.Add(r.Context(), product, req.Size, req.Color)
		responses.WriteSuccessStatus(w, http.StatusCreated, cartSnapshot(cartSvc, outcome.String()))
	}
}

// UpdateCartItem sets the quantity on the product's cart line. A quantity
// below one removes the product.
func UpdateCartItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		outcome := svc.UpdateQuantity(r.Context(), chi.URLParam(r, "productId"), req.Quantity)
		responses.WriteSuccess(w, cartSnapshot(svc, outcome.String()))
	}
}

// RemoveCartItem drops every cart line for the product id.
func RemoveCartItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		outcome := svc.Remove(r.Context(), chi.URLParam(r, "productId"))
		responses.WriteSuccess(w, cartSnapshot(svc, outcome.String()))
	}
}

// ClearCart empties the cart.
func ClearCart(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		outcome := svc.Clear(r.Context())
		responses.WriteSuccess(w, cartSnapshot(svc, outcome.String()))
	}
}

func validateSelection(product catalog.Product, size, color string) error {
	details := map[string]string{}
	if len(product.Sizes) > 0 && size == "" {
		details["size"] = "is required for this product"
	} else if size != "" && !contains(product.Sizes, size) {
		details["size"] = fmt.Sprintf("%q is not offered for this product", size)
	}
	if len(product.Colors) > 0 && color == "" {
		details["color"] = "is required for this product"
	} else if color != "" && !contains(product.Colors, color) {
		details["color"] = fmt.Sprintf("%q is not offered for this product", color)
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "selection is incomplete").WithDetails(details)
	}
	return nil
}

func contains(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}
