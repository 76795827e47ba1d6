package http

import (
	"encoding/json"
	"net/http"

	"github.com/zakia-developer558/geburtstagswunsche/internal/favorites"
)

type FavoritesHandler struct {
	store *favorites.Store
}

func NewFavoritesHandler(store *favorites.Store) *FavoritesHandler {
	return &FavoritesHandler{store: store}
}

type favoritesResponse struct {
	Favorites []favorites.Item `json:"favorites"`
	Count     int              `json:"count"`
}

func (h *FavoritesHandler) list() favoritesResponse {
	items := h.store.All()
	if items == nil {
		items = []favorites.Item{}
	}
	return favoritesResponse{Favorites: items, Count: len(items)}
}

func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.list())
}

func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	var item favorites.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if item.Key() == "" {
		writeError(w, http.StatusBadRequest, "missing id or title")
		return
	}

	if err := h.store.Add(r.Context(), item); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save favorites")
		return
	}

	writeJSON(w, http.StatusOK, h.list())
}

func (h *FavoritesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var item favorites.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if item.Key() == "" {
		writeError(w, http.StatusBadRequest, "missing id or title")
		return
	}

	fav, err := h.store.Toggle(r.Context(), item)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save favorites")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"favorite":  fav,
		"favorites": h.list().Favorites,
	})
}

func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if key == "" {
		writeError(w, http.StatusBadRequest, "missing key")
		return
	}

	if err := h.store.Remove(r.Context(), key); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save favorites")
		return
	}

	writeJSON(w, http.StatusOK, h.list())
}

func (h *FavoritesHandler) IsFavorite(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if key == "" {
		writeError(w, http.StatusBadRequest, "missing key")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{
		"favorite": h.store.IsFavorite(key),
	})
}
