package wishlist

import "context"

// StubRepository is an in-memory Repository for tests.
type StubRepository struct {
	items []Item
}

func NewStubRepository() *StubRepository {
	return &StubRepository{items: []Item{}}
}

func (s *StubRepository) FindAll(ctx context.Context) ([]Item, error) {
	out := make([]Item, 0, len(s.items))
	for _, i := range s.items {
		out = append(out, i.Clone())
	}
	return out, nil
}

func (s *StubRepository) ReplaceAll(ctx context.Context, items []Item) error {
	s.items = make([]Item, 0, len(items))
	for _, i := range items {
		s.items = append(s.items, i.Clone())
	}
	return nil
}

func (s *StubRepository) Reset() {
	s.items = []Item{}
}
