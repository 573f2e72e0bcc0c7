package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"caritas/contexts/identity-access/verification-service/domain/entities"
	domainerrors "caritas/contexts/identity-access/verification-service/domain/errors"
)

// Store is the in-memory profile repository used by tests and local wiring.
type Store struct {
	mu sync.RWMutex

	profiles map[string]entities.CreatorProfile
}

func NewStore(seed []entities.CreatorProfile) *Store {
	profiles := make(map[string]entities.CreatorProfile, len(seed))
	for _, item := range seed {
		profiles[item.CreatorID] = item
	}
	return &Store{profiles: profiles}
}

func (s *Store) CreateProfile(_ context.Context, profile entities.CreatorProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.profiles[profile.CreatorID]; exists {
		return domainerrors.ErrInvalidProfileInput
	}
	s.profiles[profile.CreatorID] = profile
	return nil
}

func (s *Store) GetProfile(_ context.Context, creatorID string) (entities.CreatorProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.profiles[strings.TrimSpace(creatorID)]
	if !exists {
		return entities.CreatorProfile{}, domainerrors.ErrProfileNotFound
	}
	return item, nil
}

func (s *Store) ListProfiles(_ context.Context) ([]entities.CreatorProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.CreatorProfile, 0, len(s.profiles))
	for _, item := range s.profiles {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatorID < items[j].CreatorID
	})
	return items, nil
}

func (s *Store) SetVerification(
	_ context.Context,
	creatorID string,
	check entities.VerificationCheck,
	verified bool,
	updatedAt time.Time,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.profiles[strings.TrimSpace(creatorID)]
	if !exists {
		return domainerrors.ErrProfileNotFound
	}
	switch check {
	case entities.CheckPhone:
		item.PhoneVerified = verified
	case entities.CheckIdentity:
		item.IdentityVerified = verified
	case entities.CheckAddress:
		item.AddressVerified = verified
	default:
		return domainerrors.ErrUnsupportedCheckValue
	}
	item.UpdatedAt = updatedAt.UTC()
	s.profiles[item.CreatorID] = item
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}
