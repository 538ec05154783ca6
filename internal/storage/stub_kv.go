package storage

import "context"

// StubKV is an in-memory KVStore for tests.
type StubKV struct {
	data map[string]string
}

func NewStubKV() *StubKV {
	return &StubKV{data: map[string]string{}}
}

func (s *StubKV) Get(ctx context.Context, key string) (string, bool, error) {
	value, ok := s.data[key]
	return value, ok, nil
}

func (s *StubKV) Put(ctx context.Context, key string, value string) error {
	s.data[key] = value
	return nil
}

func (s *StubKV) Delete(ctx context.Context, key string) error {
	delete(s.data, key)
	return nil
}

func (s *StubKV) Cleanup() {
	s.data = map[string]string{}
}
