package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"regexp"
	"sync"

	"github.com/ahorro/ahorro/internal/storage"
	"github.com/google/uuid"
)

const pinKey = "app_pin"

var (
	ErrInvalidPin    = errors.New("pin must be exactly four digits")
	ErrWrongPin      = errors.New("wrong pin")
	ErrPinNotSet     = errors.New("no pin configured")
	ErrPinAlreadySet = errors.New("pin already configured")
)

var pinPattern = regexp.MustCompile(`^\d{4}$`)

// Service guards the application behind a four digit PIN. The PIN hash
// lives in the key-value store; session tokens are in-memory only and die
// with the process.
type Service struct {
	kv storage.KVStore

	mu       sync.RWMutex
	sessions map[string]bool
}

func NewService(kv storage.KVStore) *Service {
	return &Service{kv: kv, sessions: map[string]bool{}}
}

// IsConfigured reports whether a PIN has been set.
func (s *Service) IsConfigured(ctx context.Context) (bool, error) {
	_, found, err := s.kv.Get(ctx, pinKey)
	return found, err
}

// SetPin stores the initial PIN. Changing an existing PIN goes through
// ChangePin so the old one is verified first.
func (s *Service) SetPin(ctx context.Context, pin string) error {
	if !pinPattern.MatchString(pin) {
		return ErrInvalidPin
	}
	configured, err := s.IsConfigured(ctx)
	if err != nil {
		return err
	}
	if configured {
		return ErrPinAlreadySet
	}
	return s.kv.Put(ctx, pinKey, hashPin(pin))
}

// ChangePin replaces the PIN after verifying the current one.
func (s *Service) ChangePin(ctx context.Context, oldPin, newPin string) error {
	if !pinPattern.MatchString(newPin) {
		return ErrInvalidPin
	}
	if err := s.verify(ctx, oldPin); err != nil {
		return err
	}
	return s.kv.Put(ctx, pinKey, hashPin(newPin))
}

// Unlock verifies the PIN and mints a session token.
func (s *Service) Unlock(ctx context.Context, pin string) (string, error) {
	if err := s.verify(ctx, pin); err != nil {
		return "", err
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = true
	s.mu.Unlock()
	return token, nil
}

// ValidateToken reports whether a session token is live.
func (s *Service) ValidateToken(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[token]
}

// Lock invalidates a session token.
func (s *Service) Lock(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

func (s *Service) verify(ctx context.Context, pin string) error {
	stored, found, err := s.kv.Get(ctx, pinKey)
	if err != nil {
		return err
	}
	if !found {
		return ErrPinNotSet
	}
	if hashPin(pin) != stored {
		return ErrWrongPin
	}
	return nil
}

func hashPin(pin string) string {
	sum := sha256.Sum256([]byte(pin))
	return hex.EncodeToString(sum[:])
}
