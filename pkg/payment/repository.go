package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ahorro/ahorro/internal/storage"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const storageKey = "payments_data"

// Repository persists the payment collection as a whole: reads return the
// full list and writes replace it entirely.
type Repository interface {
	FindAll(ctx context.Context) ([]Payment, error)
	ReplaceAll(ctx context.Context, payments []Payment) error
}

type RepositoryImpl struct {
	kv storage.KVStore
}

func NewRepository(kv storage.KVStore) *RepositoryImpl {
	return &RepositoryImpl{kv: kv}
}

// storedPayment carries the legacy isPaid flag that older data files used
// before paidAmount existed. It is only ever read, never written back.
type storedPayment struct {
	Payment
	IsPaid *bool `json:"isPaid,omitempty"`
}

func (r *RepositoryImpl) FindAll(ctx context.Context) ([]Payment, error) {
	raw, found, err := r.kv.Get(ctx, storageKey)
	if err != nil {
		return nil, fmt.Errorf("could not load payments: %w", err)
	}
	if !found {
		return []Payment{}, nil
	}

	var stored []storedPayment
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		// Malformed stored data is recoverable: start from an empty
		// collection rather than failing the whole application.
		log.Errorf("stored payments are malformed, falling back to empty list: %v", err)
		return []Payment{}, nil
	}

	payments, migrated := migrateLegacy(stored)
	repaired := sanitizeIDs(payments)
	if migrated || repaired {
		if migrated {
			log.Info("migrated legacy isPaid payments to paidAmount")
		}
		if repaired {
			log.Warn("repaired blank or duplicate payment ids in stored data")
		}
		if err := r.ReplaceAll(ctx, payments); err != nil {
			return nil, err
		}
	}
	return payments, nil
}

func (r *RepositoryImpl) ReplaceAll(ctx context.Context, payments []Payment) error {
	raw, err := json.Marshal(payments)
	if err != nil {
		return fmt.Errorf("could not encode payments: %w", err)
	}
	if err := r.kv.Put(ctx, storageKey, string(raw)); err != nil {
		return fmt.Errorf("could not store payments: %w", err)
	}
	return nil
}

// migrateLegacy converts records that still carry the old isPaid boolean:
// a paid record becomes paidAmount = amount, an unpaid one keeps whatever
// paidAmount it has (zero for true legacy data).
func migrateLegacy(stored []storedPayment) ([]Payment, bool) {
	payments := make([]Payment, len(stored))
	migrated := false
	for i, s := range stored {
		payments[i] = s.Payment
		if s.IsPaid != nil {
			if *s.IsPaid && payments[i].PaidAmount < payments[i].Amount {
				payments[i].PaidAmount = payments[i].Amount
			}
			migrated = true
		}
	}
	return payments, migrated
}

// sanitizeIDs assigns fresh ids to records with a blank or duplicate id.
// It runs once per load and is idempotent on clean data.
func sanitizeIDs(payments []Payment) bool {
	seen := make(map[string]bool, len(payments))
	changed := false
	for i := range payments {
		if payments[i].ID == "" || seen[payments[i].ID] {
			payments[i].ID = uuid.NewString()
			changed = true
		}
		seen[payments[i].ID] = true
	}
	return changed
}
