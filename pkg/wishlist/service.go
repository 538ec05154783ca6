package wishlist

import (
	"context"
	"errors"

	"github.com/ahorro/ahorro/pkg/goal"
	"github.com/google/uuid"
)

var ErrItemNotFound = errors.New("wishlist item not found")

type Service interface {
	List(ctx context.Context) ([]Item, error)
	Create(ctx context.Context, item Item) (Item, error)
	Update(ctx context.Context, item Item) (Item, error)
	Delete(ctx context.Context, id string) (bool, error)
	ConvertToGoal(ctx context.Context, itemID string) (goal.Goal, error)
}

type ServiceImpl struct {
	repo  Repository
	goals goal.Service
}

func NewService(repo Repository, goals goal.Service) *ServiceImpl {
	return &ServiceImpl{repo: repo, goals: goals}
}

func (s *ServiceImpl) List(ctx context.Context) ([]Item, error) {
	return s.repo.FindAll(ctx)
}

func (s *ServiceImpl) Create(ctx context.Context, item Item) (Item, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return Item{}, err
	}

	item.ID = uuid.NewString()
	if err := s.repo.ReplaceAll(ctx, append([]Item{item}, items...)); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (s *ServiceImpl) Update(ctx context.Context, item Item) (Item, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return Item{}, err
	}
	idx := findItem(item.ID, items)
	if idx < 0 {
		return Item{}, ErrItemNotFound
	}

	next := snapshot(items)
	next[idx] = item.Clone()
	if err := s.repo.ReplaceAll(ctx, next); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return false, err
	}
	next := make([]Item, 0, len(items))
	for _, i := range items {
		if i.ID != id {
			next = append(next, i.Clone())
		}
	}
	if len(next) == len(items) {
		return false, nil
	}
	if err := s.repo.ReplaceAll(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

// ConvertToGoal promotes a wishlist item into a savings goal and removes it
// from the wishlist. The goal starts from zero with the item's estimated
// amount as target, or zero when no estimate was recorded.
func (s *ServiceImpl) ConvertToGoal(ctx context.Context, itemID string) (goal.Goal, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return goal.Goal{}, err
	}
	idx := findItem(itemID, items)
	if idx < 0 {
		return goal.Goal{}, ErrItemNotFound
	}
	item := items[idx]

	targetAmount := 0.0
	if item.EstimatedAmount != nil {
		targetAmount = *item.EstimatedAmount
	}

	created, err := s.goals.Create(ctx, goal.Goal{
		Name:         item.Name,
		TargetAmount: targetAmount,
		Category:     item.Category,
		Priority:     item.Priority,
	})
	if err != nil {
		return goal.Goal{}, err
	}

	next := make([]Item, 0, len(items)-1)
	for _, i := range items {
		if i.ID != itemID {
			next = append(next, i.Clone())
		}
	}
	if err := s.repo.ReplaceAll(ctx, next); err != nil {
		return goal.Goal{}, err
	}
	return created, nil
}

func findItem(id string, items []Item) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func snapshot(items []Item) []Item {
	next := make([]Item, len(items))
	for i, item := range items {
		next[i] = item.Clone()
	}
	return next
}
