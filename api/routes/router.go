package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/voguelabs/storefront-backend/api/controllers"
	"github.com/voguelabs/storefront-backend/api/middleware"
	"github.com/voguelabs/storefront-backend/internal/auth"
	"github.com/voguelabs/storefront-backend/internal/cart"
	"github.com/voguelabs/storefront-backend/internal/catalog"
	"github.com/voguelabs/storefront-backend/internal/wishlist"
	"github.com/voguelabs/storefront-backend/pkg/config"
	"github.com/voguelabs/storefront-backend/pkg/kv"
	"github.com/voguelabs/storefront-backend/pkg/logger"
)

// Dependencies holds everything the router needs. All fields are set by
// the composition root; none are pulled from globals.
type Dependencies struct {
	Config   *config.Config
	Logger   *logger.Logger
	KV       kv.Store
	Catalog  catalog.Service
	Cart     cart.Service
	Wishlist wishlist.Service
	Auth     auth.Service
}

// New assembles the HTTP surface: health and metrics at the root,
// storefront resources under /api/v1.
func New(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer(deps.Logger))
	r.Use(middleware.RequestID(deps.Logger))
	r.Use(middleware.Logging(deps.Logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Authenticate(deps.Config.JWT, deps.Logger))

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive())
		r.Get("/ready", controllers.HealthReady(deps.KV, deps.Logger))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", controllers.ListProducts(deps.Catalog, deps.Logger))
			r.Get("/products/{productId}", controllers.GetProduct(deps.Catalog, deps.Logger))
			r.Get("/categories", controllers.ListCategories(deps.Catalog, deps.Logger))
			r.Get("/new-arrivals", controllers.ListNewArrivals(deps.Catalog, deps.Logger))
			r.Get("/trending", controllers.ListTrending(deps.Catalog, deps.Logger))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(deps.Cart, deps.Logger))
			r.Delete("/", controllers.ClearCart(deps.Cart, deps.Logger))
			r.Post("/items", controllers.AddCartItem(deps.Cart, deps.Catalog, deps.Logger))
			r.Patch("/items/{productId}", controllers.UpdateCartItem(deps.Cart, deps.Logger))
			r.Delete("/items/{productId}", controllers.RemoveCartItem(deps.Cart, deps.Logger))
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.GetWishlist(deps.Wishlist, deps.Logger))
			r.Delete("/", controllers.ClearWishlist(deps.Wishlist, deps.Logger))
			r.Post("/items", controllers.AddWishlistItem(deps.Wishlist, deps.Catalog, deps.Logger))
			r.Delete("/items/{productId}", controllers.RemoveWishlistItem(deps.Wishlist, deps.Logger))
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", controllers.Login(deps.Auth, deps.Logger))
			r.Post("/logout", controllers.Logout(deps.Auth, deps.Logger))
		})

		r.Get("/session", controllers.GetSession(deps.Auth, deps.Logger))
	})

	return r
}
