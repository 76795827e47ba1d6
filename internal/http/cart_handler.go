package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/zakia-developer558/geburtstagswunsche/internal/cart"
	"github.com/zakia-developer558/geburtstagswunsche/internal/events"
	"github.com/zakia-developer558/geburtstagswunsche/internal/middleware"
)

const headerSessionID = "X-Session-Id"

type CartHandler struct {
	store          *cart.Store
	eventPublisher events.OrderEventsPublisher
	freeThreshold  decimal.Decimal
	flatFee        decimal.Decimal
}

func NewCartHandler(store *cart.Store, eventPublisher events.OrderEventsPublisher, freeThreshold, flatFee decimal.Decimal) *CartHandler {
	return &CartHandler{
		store:          store,
		eventPublisher: eventPublisher,
		freeThreshold:  freeThreshold,
		flatFee:        flatFee,
	}
}

// cartResponse is the wire view of a cart with the derived totals the pages
// display.
type cartResponse struct {
	CartID       string          `json:"cartId"`
	Items        []cart.Item     `json:"items"`
	ItemCount    int             `json:"itemCount"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	ShippingCost decimal.Decimal `json:"shippingCost"`
	Total        decimal.Decimal `json:"total"`
	DrawerOpen   bool            `json:"drawerOpen"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func (h *CartHandler) view(c cart.Cart) cartResponse {
	items := c.Items
	if items == nil {
		items = []cart.Item{}
	}
	return cartResponse{
		CartID:       c.ID,
		Items:        items,
		ItemCount:    c.ItemCount(),
		Subtotal:     c.Subtotal(),
		ShippingCost: c.ShippingCost(h.freeThreshold, h.flatFee),
		Total:        c.Total(h.freeThreshold, h.flatFee),
		DrawerOpen:   c.DrawerOpen,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(headerSessionID)
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "missing session id")
		return
	}

	writeJSON(w, http.StatusOK, h.view(h.store.Get(sessionID)))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(headerSessionID)
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "missing session id")
		return
	}

	var body struct {
		ProductID string          `json:"productId"`
		Title     string          `json:"title"`
		Price     decimal.Decimal `json:"price"`
		Image     string          `json:"image"`
		Quantity  int             `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.ProductID == "" {
		writeError(w, http.StatusBadRequest, "missing productId")
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}

	c := h.store.Update(sessionID, func(c *cart.Cart) {
		c.AddItem(cart.NewItem(body.ProductID, body.Title, body.Price, body.Image, body.Quantity))
	})

	writeJSON(w, http.StatusOK, h.view(c))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(headerSessionID)
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "missing session id")
		return
	}

	productID := r.PathValue("productId")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "missing productId")
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	c := h.store.Update(sessionID, func(c *cart.Cart) {
		c.UpdateQuantity(productID, body.Quantity)
	})

	writeJSON(w, http.StatusOK, h.view(c))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(headerSessionID)
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "missing session id")
		return
	}

	productID := r.PathValue("productId")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "missing productId")
		return
	}

	c := h.store.Update(sessionID, func(c *cart.Cart) {
		c.RemoveItem(productID)
	})

	writeJSON(w, http.StatusOK, h.view(c))
}

func (h *CartHandler) ToggleDrawer(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(headerSessionID)
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "missing session id")
		return
	}

	c := h.store.Update(sessionID, func(c *cart.Cart) {
		c.ToggleDrawer()
	})

	writeJSON(w, http.StatusOK, h.view(c))
}

func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(headerSessionID)
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "missing session id")
		return
	}

	c := h.store.Get(sessionID)
	if len(c.Items) == 0 {
		writeError(w, http.StatusNotFound, "cart is empty")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	meta := events.PublishMetadata{
		CorrelationID: r.Header.Get(middleware.HeaderCorrelationID),
		CausationID:   r.Header.Get(middleware.HeaderCausationID),
	}
	if meta.CorrelationID == "" {
		meta.CorrelationID = middleware.GetCorrelationID(r.Context())
	}
	if meta.CorrelationID == "" {
		meta.CorrelationID = uuid.NewString()
	}

	shipping := c.ShippingCost(h.freeThreshold, h.flatFee)
	if err := h.eventPublisher.PublishOrderPlaced(ctx, &c, shipping, meta); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to publish order placed event")
		return
	}

	h.store.Clear(sessionID)

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "checkout completed",
	})
}
