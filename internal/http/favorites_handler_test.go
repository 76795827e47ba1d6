package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/zakia-developer558/geburtstagswunsche/internal/favorites"
	httphandler "github.com/zakia-developer558/geburtstagswunsche/internal/http"
	"github.com/zakia-developer558/geburtstagswunsche/internal/storage"
)

func newFavoritesHandler(t *testing.T) *httphandler.FavoritesHandler {
	t.Helper()
	slot := storage.NewFileSlot(filepath.Join(t.TempDir(), "favorites.json"))
	logger := log.New(io.Discard, "", 0)
	store := favorites.NewStore(context.Background(), slot, logger)
	return httphandler.NewFavoritesHandler(store)
}

func decodeFavorites(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestFavoritesList(t *testing.T) {
	handler := newFavoritesHandler(t)
	w := httptest.NewRecorder()

	handler.List(w, httptest.NewRequest(http.MethodGet, "/api/storefront/favorites", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := decodeFavorites(t, w)
	if favs := resp["favorites"].([]any); len(favs) != 0 {
		t.Fatalf("expected empty favorites, got %v", favs)
	}
	if resp["count"].(float64) != 0 {
		t.Fatalf("expected count 0, got %v", resp["count"])
	}
}

func TestFavoritesAdd(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		handler := newFavoritesHandler(t)
		r := httptest.NewRequest(http.MethodPost, "/api/storefront/favorites", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()

		handler.Add(w, r)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing id and title", func(t *testing.T) {
		handler := newFavoritesHandler(t)
		r := httptest.NewRequest(http.MethodPost, "/api/storefront/favorites", bytes.NewBufferString(`{"price":"4.50"}`))
		w := httptest.NewRecorder()

		handler.Add(w, r)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("adds and returns the full list", func(t *testing.T) {
		handler := newFavoritesHandler(t)
		r := httptest.NewRequest(http.MethodPost, "/api/storefront/favorites", bytes.NewBufferString(`{"id":"p1","title":"Birthday card","price":"4.50"}`))
		w := httptest.NewRecorder()

		handler.Add(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		resp := decodeFavorites(t, w)
		if resp["count"].(float64) != 1 {
			t.Fatalf("expected count 1, got %v", resp["count"])
		}
		favs := resp["favorites"].([]any)
		if favs[0].(map[string]any)["title"] != "Birthday card" {
			t.Fatalf("unexpected favorites payload %v", favs)
		}
	})
}

func TestFavoritesToggle(t *testing.T) {
	handler := newFavoritesHandler(t)

	toggle := func() map[string]any {
		r := httptest.NewRequest(http.MethodPost, "/api/storefront/favorites/toggle", bytes.NewBufferString(`{"id":"p1","title":"Birthday card"}`))
		w := httptest.NewRecorder()
		handler.Toggle(w, r)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		return decodeFavorites(t, w)
	}

	resp := toggle()
	if resp["favorite"].(bool) != true {
		t.Fatalf("expected favorite after first toggle")
	}
	if favs := resp["favorites"].([]any); len(favs) != 1 {
		t.Fatalf("expected one favorite, got %v", favs)
	}

	resp = toggle()
	if resp["favorite"].(bool) != false {
		t.Fatalf("expected not favorite after second toggle")
	}
	if favs := resp["favorites"].([]any); len(favs) != 0 {
		t.Fatalf("expected empty favorites, got %v", favs)
	}
}

func TestFavoritesRemove(t *testing.T) {
	handler := newFavoritesHandler(t)

	add := httptest.NewRequest(http.MethodPost, "/api/storefront/favorites", bytes.NewBufferString(`{"id":"p1","title":"Birthday card"}`))
	handler.Add(httptest.NewRecorder(), add)

	r := httptest.NewRequest(http.MethodDelete, "/api/storefront/favorites/p1", nil)
	r.SetPathValue("key", "p1")
	w := httptest.NewRecorder()

	handler.Remove(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := decodeFavorites(t, w)
	if resp["count"].(float64) != 0 {
		t.Fatalf("expected count 0, got %v", resp["count"])
	}
}

func TestFavoritesIsFavorite(t *testing.T) {
	handler := newFavoritesHandler(t)

	add := httptest.NewRequest(http.MethodPost, "/api/storefront/favorites", bytes.NewBufferString(`{"id":"p1","title":"Birthday card"}`))
	handler.Add(httptest.NewRecorder(), add)

	check := func(key string) bool {
		r := httptest.NewRequest(http.MethodGet, "/api/storefront/favorites/"+key, nil)
		r.SetPathValue("key", key)
		w := httptest.NewRecorder()
		handler.IsFavorite(w, r)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		return decodeFavorites(t, w)["favorite"].(bool)
	}

	if !check("p1") {
		t.Fatalf("expected p1 to be a favorite")
	}
	if check("p2") {
		t.Fatalf("did not expect p2 to be a favorite")
	}
}
