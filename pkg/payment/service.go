package payment

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/ahorro/ahorro/internal/event_bus"
	"github.com/ahorro/ahorro/internal/utils"
	"github.com/ahorro/ahorro/pkg/schedule"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrPaymentNotFound = errors.New("payment not found")

type Service interface {
	List(ctx context.Context) ([]Payment, error)
	Create(ctx context.Context, payment Payment) (Payment, error)
	Update(ctx context.Context, payment Payment) (Payment, error)
	Delete(ctx context.Context, id string) (bool, error)
	Contribute(ctx context.Context, paymentID string, amount float64) ([]Payment, error)
}

type ServiceImpl struct {
	repo  Repository
	clock utils.Clock
	bus   *event_bus.EventBus
}

func NewService(repo Repository, clock utils.Clock, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, clock: clock, bus: bus}
}

func (s *ServiceImpl) List(ctx context.Context) ([]Payment, error) {
	payments, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	SortByUrgency(payments)
	return payments, nil
}

// Create stores a new payment. Id, color and the zero paid amount are
// assigned here; everything else comes from the caller.
func (s *ServiceImpl) Create(ctx context.Context, payment Payment) (Payment, error) {
	payments, err := s.repo.FindAll(ctx)
	if err != nil {
		return Payment{}, err
	}

	payment.ID = uuid.NewString()
	payment.PaidAmount = 0
	payment.Color = Palette[len(payments)%len(Palette)]

	if err := s.repo.ReplaceAll(ctx, append([]Payment{payment}, payments...)); err != nil {
		return Payment{}, err
	}
	return payment, nil
}

// Update edits a payment's descriptive fields and schedule. Paid amount and
// color are owned by other operations and always preserved.
func (s *ServiceImpl) Update(ctx context.Context, payment Payment) (Payment, error) {
	payments, err := s.repo.FindAll(ctx)
	if err != nil {
		return Payment{}, err
	}
	idx := findPayment(payment.ID, payments)
	if idx < 0 {
		return Payment{}, ErrPaymentNotFound
	}

	updated := payments[idx].Clone()
	updated.Name = payment.Name
	updated.Amount = payment.Amount
	updated.Category = payment.Category
	updated.DueDate = payment.DueDate
	updated.Frequency = payment.Frequency

	next := snapshot(payments)
	next[idx] = updated
	if err := s.repo.ReplaceAll(ctx, next); err != nil {
		return Payment{}, err
	}
	return updated, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	payments, err := s.repo.FindAll(ctx)
	if err != nil {
		return false, err
	}
	next := make([]Payment, 0, len(payments))
	for _, p := range payments {
		if p.ID != id {
			next = append(next, p.Clone())
		}
	}
	if len(next) == len(payments) {
		return false, nil
	}
	if err := s.repo.ReplaceAll(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

// Contribute records a partial or full payment, clamped to the amount owed.
// Covering a recurring payment closes it out (frequency frozen to OneTime,
// paid amount kept as history) and inserts a successor for the next due
// date alongside.
//
// A payment id that is no longer in the collection is not an error: stale
// references return the collection unchanged.
func (s *ServiceImpl) Contribute(ctx context.Context, paymentID string, amount float64) ([]Payment, error) {
	payments, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	idx := findPayment(paymentID, payments)
	if idx < 0 {
		log.Debugf("contribution to unknown payment %s ignored", paymentID)
		return payments, nil
	}

	updated := payments[idx].Clone()
	updated.PaidAmount = math.Min(updated.Amount, updated.PaidAmount+amount)

	next := snapshot(payments)

	if updated.IsCovered() && recursOn(updated) {
		successor := advance(updated)
		updated.Frequency = schedule.OneTime
		next[idx] = updated
		next = append(next[:idx+1], append([]Payment{successor}, next[idx+1:]...)...)

		s.publish(ctx, event_bus.PaymentAdvanced, event_bus.PaymentAdvancedData{
			PaymentID:   updated.ID,
			SuccessorID: successor.ID,
			Name:        updated.Name,
			NextDueDate: successor.DueDate,
		})
	} else {
		next[idx] = updated
		if updated.IsCovered() {
			s.publish(ctx, event_bus.PaymentCovered, event_bus.PaymentCoveredData{
				PaymentID: updated.ID,
				Name:      updated.Name,
				Amount:    updated.Amount,
			})
		}
	}

	if err := s.repo.ReplaceAll(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

// advance builds the next cycle's payment from a just-covered one: fresh
// id, nothing paid yet, due date moved one period ahead.
func advance(p Payment) Payment {
	due, err := schedule.ParseDate(p.DueDate)
	if err != nil {
		// recursOn guarantees a parseable date before advance is called.
		panic(fmt.Sprintf("payment %s has unparseable due date %q", p.ID, p.DueDate))
	}

	successor := p.Clone()
	successor.ID = uuid.NewString()
	successor.PaidAmount = 0
	successor.DueDate = schedule.FormatDate(schedule.NextOccurrence(due, p.Frequency))
	return successor
}

// recursOn reports whether a covered payment should trigger a next cycle:
// its frequency must recur and its due date must be valid.
func recursOn(p Payment) bool {
	if !p.Frequency.IsRecurring() || p.DueDate == "" {
		return false
	}
	if _, err := schedule.ParseDate(p.DueDate); err != nil {
		log.Warnf("payment due date %q is unparseable, not advancing", p.DueDate)
		return false
	}
	return true
}

func (s *ServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, data any) {
	if err := s.bus.Publish(event_bus.NewEvent(ctx, eventType, data)); err != nil {
		log.Errorf("failed to publish %s: %v", eventType, err)
	}
}

func findPayment(id string, payments []Payment) int {
	for i, p := range payments {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// snapshot copies a collection so mutations never reach entities a
// previous reader may still hold.
func snapshot(payments []Payment) []Payment {
	next := make([]Payment, len(payments))
	for i, p := range payments {
		next[i] = p.Clone()
	}
	return next
}
