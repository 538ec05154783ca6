package dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/ahorro/ahorro/internal/utils"
	"github.com/ahorro/ahorro/pkg/goal"
	"github.com/ahorro/ahorro/pkg/payment"
	"github.com/ahorro/ahorro/pkg/schedule"
	log "github.com/sirupsen/logrus"
)

// GoalReader and PaymentReader are the read-only slices of the goal and
// payment services the dashboard needs.
type GoalReader interface {
	List(ctx context.Context) ([]goal.Goal, error)
}

type PaymentReader interface {
	List(ctx context.Context) ([]payment.Payment, error)
}

// Upcoming groups the not-yet-covered payments by urgency. Buckets are
// ordered by due date ascending.
type Upcoming struct {
	Overdue  []payment.Payment `json:"overdue"`
	DueToday []payment.Payment `json:"dueToday"`
	DueSoon  []payment.Payment `json:"dueSoon"`
	Upcoming []payment.Payment `json:"upcoming"`
}

// EventType marks whether a calendar event comes from a payment due date or
// a goal's projection target date.
type EventType string

const (
	EventPayment EventType = "payment"
	EventGoal    EventType = "goal"
)

// Event is a single calendar entry.
type Event struct {
	ID    string    `json:"id"`
	Date  string    `json:"date"`
	Title string    `json:"title"`
	Color string    `json:"color"`
	Type  EventType `json:"type"`
}

// CalendarMonth is a month's events grouped by day of month.
type CalendarMonth struct {
	Year   int             `json:"year"`
	Month  int             `json:"month"`
	Events map[int][]Event `json:"events"`
}

type Service struct {
	goals    GoalReader
	payments PaymentReader
	clock    utils.Clock
}

func NewService(goals GoalReader, payments PaymentReader, clock utils.Clock) *Service {
	return &Service{goals: goals, payments: payments, clock: clock}
}

// Upcoming classifies every uncovered payment against today. Covered
// payments are history, not workload, and are left out entirely.
func (s *Service) Upcoming(ctx context.Context, soonThreshold int) (Upcoming, error) {
	payments, err := s.payments.List(ctx)
	if err != nil {
		return Upcoming{}, err
	}

	today := utils.Today(s.clock)
	result := Upcoming{
		Overdue:  []payment.Payment{},
		DueToday: []payment.Payment{},
		DueSoon:  []payment.Payment{},
		Upcoming: []payment.Payment{},
	}

	for _, p := range payments {
		if p.IsCovered() {
			continue
		}
		due, err := schedule.ParseDate(p.DueDate)
		if err != nil {
			log.Warnf("payment %s has unparseable due date %q, skipping", p.ID, p.DueDate)
			continue
		}

		switch schedule.Classify(today, due, false, soonThreshold).Status {
		case schedule.StatusOverdue:
			result.Overdue = append(result.Overdue, p)
		case schedule.StatusDueToday:
			result.DueToday = append(result.DueToday, p)
		case schedule.StatusDueSoon:
			result.DueSoon = append(result.DueSoon, p)
		default:
			result.Upcoming = append(result.Upcoming, p)
		}
	}

	sortByDueDate(result.Overdue)
	sortByDueDate(result.DueToday)
	sortByDueDate(result.DueSoon)
	sortByDueDate(result.Upcoming)
	return result, nil
}

// Calendar collects the given month's events: due dates of uncovered
// payments and target dates of goal projections, grouped by day of month.
func (s *Service) Calendar(ctx context.Context, year int, month time.Month) (CalendarMonth, error) {
	result := CalendarMonth{
		Year:   year,
		Month:  int(month),
		Events: map[int][]Event{},
	}

	payments, err := s.payments.List(ctx)
	if err != nil {
		return CalendarMonth{}, err
	}
	for _, p := range payments {
		if p.IsCovered() {
			continue
		}
		result.add(year, month, Event{
			ID:    "p-" + p.ID,
			Date:  p.DueDate,
			Title: p.Name,
			Color: p.Color,
			Type:  EventPayment,
		})
	}

	goals, err := s.goals.List(ctx)
	if err != nil {
		return CalendarMonth{}, err
	}
	for _, g := range goals {
		if g.Projection == nil || g.Projection.TargetDate == "" {
			continue
		}
		result.add(year, month, Event{
			ID:    "g-" + g.ID,
			Date:  g.Projection.TargetDate,
			Title: g.Name,
			Color: g.Color,
			Type:  EventGoal,
		})
	}

	return result, nil
}

func (c *CalendarMonth) add(year int, month time.Month, e Event) {
	date, err := schedule.ParseDate(e.Date)
	if err != nil {
		log.Warnf("calendar event %s has unparseable date %q, skipping", e.ID, e.Date)
		return
	}
	if date.Year() != year || date.Month() != month {
		return
	}
	c.Events[date.Day()] = append(c.Events[date.Day()], e)
}

func sortByDueDate(payments []payment.Payment) {
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].DueDate < payments[j].DueDate
	})
}
