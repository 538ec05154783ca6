package payment

import "context"

// StubRepository is an in-memory Repository for tests.
type StubRepository struct {
	payments []Payment
}

func NewStubRepository() *StubRepository {
	return &StubRepository{payments: []Payment{}}
}

func (s *StubRepository) FindAll(ctx context.Context) ([]Payment, error) {
	out := make([]Payment, 0, len(s.payments))
	for _, p := range s.payments {
		out = append(out, p.Clone())
	}
	return out, nil
}

func (s *StubRepository) ReplaceAll(ctx context.Context, payments []Payment) error {
	s.payments = make([]Payment, 0, len(payments))
	for _, p := range payments {
		s.payments = append(s.payments, p.Clone())
	}
	return nil
}

func (s *StubRepository) Reset() {
	s.payments = []Payment{}
}
