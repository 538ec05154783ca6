package goal

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

var (
	ErrGoalNotFound      = errors.New("goal not found")
	ErrInvalidProjection = errors.New("no valid projection for the given date and frequency")
)

type Service interface {
	List(ctx context.Context) ([]Goal, error)
	Create(ctx context.Context, goal Goal) (Goal, error)
	Update(ctx context.Context, goal Goal) (Goal, error)
	Delete(ctx context.Context, id string) (bool, error)
	SetProjection(ctx context.Context, goalID string, frequency schedule.Frequency, targetDate string) (Goal, error)
	Contribute(ctx context.Context, goalID string, amount float64) ([]Goal, error)
}

type ServiceImpl struct {
	repo  Repository
	clock utils.Clock
	bus   *event_bus.EventBus
}

func NewService(repo Repository, clock utils.Clock, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, clock: clock, bus: bus}
}

func (s *ServiceImpl) List(ctx context.Context) ([]Goal, error) {
	goals, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	SortNewestFirst(goals)
	return goals, nil
}

// Create stores a new goal. Only name, target amount, category and priority
// come from the caller; id, color and timestamps are assigned here.
func (s *ServiceImpl) Create(ctx context.Context, goal Goal) (Goal, error) {
	goals, err := s.repo.FindAll(ctx)
	if err != nil {
		return Goal{}, err
	}

	goal.ID = uuid.NewString()
	goal.SavedAmount = 0
	goal.Projection = nil
	goal.Color = Palette[len(goals)%len(Palette)]
	goal.CreatedAt = s.clock.Now()

	if err := s.repo.ReplaceAll(ctx, append([]Goal{goal}, goals...)); err != nil {
		return Goal{}, err
	}
	return goal, nil
}

// Update edits a goal's descriptive fields. Saved amount, color, creation
// time and projection are owned by other operations and always preserved.
func (s *ServiceImpl) Update(ctx context.Context, goal Goal) (Goal, error) {
	goals, err := s.repo.FindAll(ctx)
	if err != nil {
		return Goal{}, err
	}
	idx := findGoal(goal.ID, goals)
	if idx < 0 {
		return Goal{}, ErrGoalNotFound
	}

	updated := goals[idx].Clone()
	updated.Name = goal.Name
	updated.TargetAmount = goal.TargetAmount
	updated.Category = goal.Category
	updated.Priority = goal.Priority

	next := snapshot(goals)
	next[idx] = updated
	if err := s.repo.ReplaceAll(ctx, next); err != nil {
		return Goal{}, err
	}
	return updated, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	goals, err := s.repo.FindAll(ctx)
	if err != nil {
		return false, err
	}
	next := make([]Goal, 0, len(goals))
	for _, g := range goals {
		if g.ID != id {
			next = append(next, g.Clone())
		}
	}
	if len(next) == len(goals) {
		return false, nil
	}
	if err := s.repo.ReplaceAll(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

// SetProjection computes and stores a contribution plan for the goal. The
// suggested amount is derived from what is still missing today; a target
// date that is not strictly in the future yields ErrInvalidProjection.
func (s *ServiceImpl) SetProjection(ctx context.Context, goalID string, frequency schedule.Frequency, targetDate string) (Goal, error) {
	goals, err := s.repo.FindAll(ctx)
	if err != nil {
		return Goal{}, err
	}
	idx := findGoal(goalID, goals)
	if idx < 0 {
		return Goal{}, ErrGoalNotFound
	}

	target, err := schedule.ParseDate(targetDate)
	if err != nil {
		return Goal{}, fmt.Errorf("invalid target date: %w", err)
	}

	amount := schedule.SuggestedContribution(goals[idx].RemainingAmount(), utils.Today(s.clock), target, frequency)
	if amount <= 0 {
		return Goal{}, ErrInvalidProjection
	}

	updated := goals[idx].Clone()
	updated.Projection = &Projection{
		Amount:     amount,
		Frequency:  frequency,
		TargetDate: targetDate,
	}

	next := snapshot(goals)
	next[idx] = updated
	if err := s.repo.ReplaceAll(ctx, next); err != nil {
		return Goal{}, err
	}
	return updated, nil
}

// Contribute applies a contribution to the goal, clamped to the target
// amount. When the contribution completes a goal whose projection recurs,
// the goal is closed out (projection frozen to OneTime, saved amount kept as
// history) and a successor goal for the next cycle replaces it alongside.
//
// A goal id that is no longer in the collection is not an error: stale
// references return the collection unchanged.
func (s *ServiceImpl) Contribute(ctx context.Context, goalID string, amount float64) ([]Goal, error) {
	goals, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	idx := findGoal(goalID, goals)
	if idx < 0 {
		log.Debugf("contribution to unknown goal %s ignored", goalID)
		return goals, nil
	}

	updated := goals[idx].Clone()
	updated.SavedAmount = math.Min(updated.TargetAmount, updated.SavedAmount+amount)

	next := snapshot(goals)

	if updated.IsCompleted() && recursOn(updated.Projection) {
		successor := s.advance(updated)
		updated.Projection.Frequency = schedule.OneTime
		next[idx] = updated
		next = append(next[:idx+1], append([]Goal{successor}, next[idx+1:]...)...)

		s.publish(ctx, event_bus.GoalAdvanced, event_bus.GoalAdvancedData{
			GoalID:         updated.ID,
			SuccessorID:    successor.ID,
			Name:           updated.Name,
			NextTargetDate: successor.Projection.TargetDate,
		})
	} else {
		next[idx] = updated
		if updated.IsCompleted() {
			s.publish(ctx, event_bus.GoalCompleted, event_bus.GoalCompletedData{
				GoalID:       updated.ID,
				Name:         updated.Name,
				TargetAmount: updated.TargetAmount,
			})
		}
	}

	if err := s.repo.ReplaceAll(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

// advance builds the next cycle's goal from a just-completed one: fresh id
// and creation time, nothing saved yet, target date moved one period ahead.
func (s *ServiceImpl) advance(g Goal) Goal {
	target, err := schedule.ParseDate(g.Projection.TargetDate)
	if err != nil {
		// recursOn guarantees a parseable date before advance is called.
		panic(fmt.Sprintf("goal %s has unparseable projection target date %q", g.ID, g.Projection.TargetDate))
	}

	successor := g.Clone()
	successor.ID = uuid.NewString()
	successor.SavedAmount = 0
	successor.CreatedAt = s.clock.Now()
	successor.Projection.TargetDate = schedule.FormatDate(schedule.NextOccurrence(target, g.Projection.Frequency))
	return successor
}

// recursOn reports whether a completed goal's projection should trigger a
// next cycle: it must exist, recur, and carry a valid target date.
func recursOn(p *Projection) bool {
	if p == nil || !p.Frequency.IsRecurring() || p.TargetDate == "" {
		return false
	}
	if _, err := schedule.ParseDate(p.TargetDate); err != nil {
		log.Warnf("projection target date %q is unparseable, not advancing", p.TargetDate)
		return false
	}
	return true
}

func (s *ServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, data any) {
	if err := s.bus.Publish(event_bus.NewEvent(ctx, eventType, data)); err != nil {
		log.Errorf("failed to publish %s: %v", eventType, err)
	}
}

func findGoal(id string, goals []Goal) int {
	for i, g := range goals {
		if g.ID == id {
			return i
		}
	}
	return -1
}

// snapshot deep-copies a collection so mutations never reach entities a
// previous reader may still hold.
func snapshot(goals []Goal) []Goal {
	next := make([]Goal, len(goals))
	for i, g := range goals {
		next[i] = g.Clone()
	}
	return next
}
