// Package favorites maintains the shopper's persisted list of liked cards.
// The whole collection is re-serialized to a storage slot on every mutation
// and hydrated back at startup, so it survives across sessions.
package favorites

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/zakia-developer558/geburtstagswunsche/internal/storage"
)

// SlotName is the fixed process-wide slot favorites are persisted under.
const SlotName = "favorites"

const schemaVersion = 1

// Item is a favorited card. Price is the pre-formatted display string the
// product cards carry (e.g. "€2,90"), not an amount to compute with.
type Item struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`
	Price string `json:"price,omitempty"`
	Image string `json:"image,omitempty"`
	Alt   string `json:"alt,omitempty"`
	Href  string `json:"href,omitempty"`
}

// Key identifies the item within the favorites list: the product id when
// one exists, otherwise the title. Title keying is a fallback for cards
// that carry no stable id and collides when two such cards share a title.
func (i Item) Key() string {
	if i.ID != "" {
		return i.ID
	}
	return i.Title
}

type envelope struct {
	SchemaVersion int    `json:"schemaVersion"`
	Favorites     []Item `json:"favorites"`
}

type Store struct {
	mu     sync.Mutex
	slot   storage.Slot
	logger *log.Logger
	items  []Item
}

// NewStore hydrates the favorites list from the slot. A missing or corrupt
// payload means an empty list; hydration never fails the caller.
func NewStore(ctx context.Context, slot storage.Slot, logger *log.Logger) *Store {
	s := &Store{slot: slot, logger: logger}

	data, err := slot.Load(ctx)
	if err != nil {
		if err != storage.ErrSlotEmpty {
			logger.Printf("favorites: load failed, starting empty: %v", err)
		}
		return s
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		logger.Printf("favorites: corrupt payload, starting empty: %v", err)
		return s
	}
	s.items = env.Favorites
	return s
}

// Add appends the item unless an entry with the same key already exists.
func (s *Store) Add(ctx context.Context, item Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexLocked(item.Key()) >= 0 {
		return nil
	}
	s.items = append(s.items, item)
	return s.persistLocked(ctx)
}

// Remove drops the entry with the given key, a no-op when absent.
func (s *Store) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(key)
	if i < 0 {
		return nil
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return s.persistLocked(ctx)
}

// Toggle removes the item when present and adds it when absent. The
// returned bool reports whether the item is a favorite afterwards.
func (s *Store) Toggle(ctx context.Context, item Item) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexLocked(item.Key()); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
		return false, s.persistLocked(ctx)
	}
	s.items = append(s.items, item)
	return true, s.persistLocked(ctx)
}

func (s *Store) IsFavorite(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexLocked(key) >= 0
}

// All returns a copy of the list in insertion order.
func (s *Store) All() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) indexLocked(key string) int {
	for i, it := range s.items {
		if it.Key() == key {
			return i
		}
	}
	return -1
}

func (s *Store) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(envelope{SchemaVersion: schemaVersion, Favorites: s.items})
	if err != nil {
		return fmt.Errorf("marshal favorites: %w", err)
	}
	if err := s.slot.Save(ctx, data); err != nil {
		return fmt.Errorf("persist favorites: %w", err)
	}
	return nil
}
