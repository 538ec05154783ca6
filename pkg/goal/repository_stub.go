package goal

import "context"

// StubRepository is an in-memory Repository for tests.
type StubRepository struct {
	goals []Goal
}

func NewStubRepository() *StubRepository {
	return &StubRepository{goals: []Goal{}}
}

func (s *StubRepository) FindAll(ctx context.Context) ([]Goal, error) {
	out := make([]Goal, 0, len(s.goals))
	for _, g := range s.goals {
		out = append(out, g.Clone())
	}
	return out, nil
}

func (s *StubRepository) ReplaceAll(ctx context.Context, goals []Goal) error {
	s.goals = make([]Goal, 0, len(goals))
	for _, g := range goals {
		s.goals = append(s.goals, g.Clone())
	}
	return nil
}

func (s *StubRepository) Reset() {
	s.goals = []Goal{}
}
