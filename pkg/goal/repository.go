package goal

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ahorro/ahorro/internal/storage"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const storageKey = "goals_data"

// Repository persists the goal collection as a whole: reads return the full
// list and writes replace it entirely.
type Repository interface {
	FindAll(ctx context.Context) ([]Goal, error)
	ReplaceAll(ctx context.Context, goals []Goal) error
}

type RepositoryImpl struct {
	kv storage.KVStore
}

func NewRepository(kv storage.KVStore) *RepositoryImpl {
	return &RepositoryImpl{kv: kv}
}

func (r *RepositoryImpl) FindAll(ctx context.Context) ([]Goal, error) {
	raw, found, err := r.kv.Get(ctx, storageKey)
	if err != nil {
		return nil, fmt.Errorf("could not load goals: %w", err)
	}
	if !found {
		return []Goal{}, nil
	}

	var goals []Goal
	if err := json.Unmarshal([]byte(raw), &goals); err != nil {
		// Malformed stored data is recoverable: start from an empty
		// collection rather than failing the whole application.
		log.Errorf("stored goals are malformed, falling back to empty list: %v", err)
		return []Goal{}, nil
	}

	if sanitizeIDs(goals) {
		log.Warn("repaired blank or duplicate goal ids in stored data")
		if err := r.ReplaceAll(ctx, goals); err != nil {
			return nil, err
		}
	}
	return goals, nil
}

func (r *RepositoryImpl) ReplaceAll(ctx context.Context, goals []Goal) error {
	raw, err := json.Marshal(goals)
	if err != nil {
		return fmt.Errorf("could not encode goals: %w", err)
	}
	if err := r.kv.Put(ctx, storageKey, string(raw)); err != nil {
		return fmt.Errorf("could not store goals: %w", err)
	}
	return nil
}

// sanitizeIDs assigns fresh ids to records with a blank or duplicate id.
// It runs once per load and is idempotent on clean data.
func sanitizeIDs(goals []Goal) bool {
	seen := make(map[string]bool, len(goals))
	changed := false
	for i := range goals {
		if goals[i].ID == "" || seen[goals[i].ID] {
			goals[i].ID = uuid.NewString()
			changed = true
		}
		seen[goals[i].ID] = true
	}
	return changed
}
