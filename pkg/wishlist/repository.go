package wishlist

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ahorro/ahorro/internal/storage"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const storageKey = "wishlist_data"

// Repository persists the wishlist as a whole: reads return the full list
// and writes replace it entirely.
type Repository interface {
	FindAll(ctx context.Context) ([]Item, error)
	ReplaceAll(ctx context.Context, items []Item) error
}

type RepositoryImpl struct {
	kv storage.KVStore
}

func NewRepository(kv storage.KVStore) *RepositoryImpl {
	return &RepositoryImpl{kv: kv}
}

func (r *RepositoryImpl) FindAll(ctx context.Context) ([]Item, error) {
	raw, found, err := r.kv.Get(ctx, storageKey)
	if err != nil {
		return nil, fmt.Errorf("could not load wishlist: %w", err)
	}
	if !found {
		return []Item{}, nil
	}

	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Errorf("stored wishlist is malformed, falling back to empty list: %v", err)
		return []Item{}, nil
	}

	if sanitizeIDs(items) {
		log.Warn("repaired blank or duplicate wishlist ids in stored data")
		if err := r.ReplaceAll(ctx, items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (r *RepositoryImpl) ReplaceAll(ctx context.Context, items []Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("could not encode wishlist: %w", err)
	}
	if err := r.kv.Put(ctx, storageKey, string(raw)); err != nil {
		return fmt.Errorf("could not store wishlist: %w", err)
	}
	return nil
}

func sanitizeIDs(items []Item) bool {
	seen := make(map[string]bool, len(items))
	changed := false
	for i := range items {
		if items[i].ID == "" || seen[items[i].ID] {
			items[i].ID = uuid.NewString()
			changed = true
		}
		seen[items[i].ID] = true
	}
	return changed
}
