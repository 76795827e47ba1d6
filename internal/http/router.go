package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/zakia-developer558/geburtstagswunsche/internal/cart"
	"github.com/zakia-developer558/geburtstagswunsche/internal/events"
	"github.com/zakia-developer558/geburtstagswunsche/internal/favorites"
	"github.com/zakia-developer558/geburtstagswunsche/internal/middleware"
)

type Deps struct {
	Logger *log.Logger

	CartStore      *cart.Store
	Favorites      *favorites.Store
	ShopAPI        ShopAPI
	EventPublisher events.OrderEventsPublisher

	ShippingFreeThreshold decimal.Decimal
	ShippingFlatFee       decimal.Decimal

	CORSAllowOrigins []string
}

func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler)

	// Cart (session-scoped via X-Session-Id)
	cartHandler := NewCartHandler(d.CartStore, d.EventPublisher, d.ShippingFreeThreshold, d.ShippingFlatFee)
	mux.HandleFunc("GET /api/storefront/cart", cartHandler.GetCart)
	mux.HandleFunc("POST /api/storefront/cart/items", cartHandler.AddItem)
	mux.HandleFunc("PATCH /api/storefront/cart/items/{productId}", cartHandler.UpdateQuantity)
	mux.HandleFunc("DELETE /api/storefront/cart/items/{productId}", cartHandler.RemoveItem)
	mux.HandleFunc("POST /api/storefront/cart/toggle", cartHandler.ToggleDrawer)
	mux.HandleFunc("POST /api/storefront/cart/checkout", cartHandler.Checkout)

	// Favorites (shared, persisted)
	favHandler := NewFavoritesHandler(d.Favorites)
	mux.HandleFunc("GET /api/storefront/favorites", favHandler.List)
	mux.HandleFunc("POST /api/storefront/favorites", favHandler.Add)
	mux.HandleFunc("POST /api/storefront/favorites/toggle", favHandler.Toggle)
	mux.HandleFunc("GET /api/storefront/favorites/{key}", favHandler.IsFavorite)
	mux.HandleFunc("DELETE /api/storefront/favorites/{key}", favHandler.Remove)

	// Shop API passthrough for the pages
	shopHandler := NewShopHandler(d.ShopAPI, d.Logger)
	mux.HandleFunc("GET /api/storefront/products", shopHandler.ListProducts)
	mux.HandleFunc("GET /api/storefront/products/{slug}", shopHandler.GetProduct)
	mux.HandleFunc("GET /api/storefront/posts", shopHandler.ListPosts)
	mux.HandleFunc("GET /api/storefront/posts/{slug}", shopHandler.GetPost)
	mux.HandleFunc("GET /api/storefront/categories", shopHandler.ListCategories)

	// Middlewares (outer -> inner)
	var h http.Handler = mux
	h = middleware.Logging(d.Logger)(h)
	h = middleware.CorrelationID(h)
	h = middleware.CORS(d.CORSAllowOrigins)(h)
	h = middleware.Recover(d.Logger)(h)

	return h
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok", "service": "storefront-service"}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
