package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"caritas/contexts/identity-access/verification-service/adapters/memory"
	"caritas/contexts/identity-access/verification-service/domain/entities"
	domainerrors "caritas/contexts/identity-access/verification-service/domain/errors"
	"caritas/contexts/identity-access/verification-service/ports"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type recordingCache struct {
	invalidated []string
}

func (c *recordingCache) Invalidate(key string) {
	c.invalidated = append(c.invalidated, key)
}

func (c *recordingCache) InvalidateAll() {
	c.invalidated = append(c.invalidated, "*")
}

func activeProfile(creatorID string) entities.CreatorProfile {
	return entities.CreatorProfile{
		CreatorID:   creatorID,
		DisplayName: "Jamie Creator",
		Email:       "jamie@example.org",
		Phone:       "+31612345678",
		CreatedAt:   time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
	}
}

func serviceWith(store *memory.Store, cache *recordingCache) Service {
	return Service{
		Profiles: store,
		Cache:    cache,
		Clock:    fixedClock{now: time.Date(2026, time.March, 7, 9, 0, 0, 0, time.UTC)},
	}
}

func TestEnsureMaySubmitAcceptsActiveProfileWithPhone(t *testing.T) {
	store := memory.NewStore([]entities.CreatorProfile{activeProfile("creator-1")})
	service := serviceWith(store, &recordingCache{})

	if err := service.EnsureMaySubmit(context.Background(), "creator-1"); err != nil {
		t.Fatalf("active profile with phone must be eligible: %v", err)
	}
}

func TestEnsureMaySubmitRejectsBadStanding(t *testing.T) {
	disabled := activeProfile("creator-1")
	disabled.Disabled = true
	onHold := activeProfile("creator-2")
	onHold.OnHold = true
	noPhone := activeProfile("creator-3")
	noPhone.Phone = "  "

	store := memory.NewStore([]entities.CreatorProfile{disabled, onHold, noPhone})
	service := serviceWith(store, &recordingCache{})

	for _, creatorID := range []string{"creator-1", "creator-2", "creator-3"} {
		if err := service.EnsureMaySubmit(context.Background(), creatorID); !errors.Is(err, domainerrors.ErrCreatorNotEligible) {
			t.Fatalf("creator %s: expected ErrCreatorNotEligible, got %v", creatorID, err)
		}
	}
}

func TestEnsureMaySubmitUnknownCreator(t *testing.T) {
	service := serviceWith(memory.NewStore(nil), &recordingCache{})

	if err := service.EnsureMaySubmit(context.Background(), "ghost"); !errors.Is(err, domainerrors.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestSetVerificationFlipsFlagAndEvictsProfiles(t *testing.T) {
	store := memory.NewStore([]entities.CreatorProfile{activeProfile("creator-1")})
	cache := &recordingCache{}
	service := serviceWith(store, cache)

	if err := service.SetVerification(context.Background(), "admin-1", "creator-1", entities.CheckIdentity, true); err != nil {
		t.Fatalf("set verification failed: %v", err)
	}

	state, err := service.State(context.Background(), "creator-1")
	if err != nil {
		t.Fatalf("state read failed: %v", err)
	}
	if !state.IdentityVerified || state.PhoneVerified || state.AddressVerified {
		t.Fatalf("expected only the identity flag set, got %+v", state)
	}

	if len(cache.invalidated) != 1 || cache.invalidated[0] != ports.CacheKeyProfiles {
		t.Fatalf("expected profiles cache key invalidated, got %v", cache.invalidated)
	}
}

func TestSetVerificationRejectsUnsupportedCheck(t *testing.T) {
	store := memory.NewStore([]entities.CreatorProfile{activeProfile("creator-1")})
	cache := &recordingCache{}
	service := serviceWith(store, cache)

	err := service.SetVerification(context.Background(), "admin-1", "creator-1", entities.VerificationCheck("passport"), true)
	if !errors.Is(err, domainerrors.ErrUnsupportedCheckValue) {
		t.Fatalf("expected ErrUnsupportedCheckValue, got %v", err)
	}
	if len(cache.invalidated) != 0 {
		t.Fatalf("rejected update must not touch the cache, got %v", cache.invalidated)
	}
}

func TestMissingChecksReportsEveryFailingGateInOrder(t *testing.T) {
	profile := activeProfile("creator-1")
	profile.PhoneVerified = true

	missing := profile.MissingChecks()
	if len(missing) != 2 || missing[0] != entities.CheckIdentity || missing[1] != entities.CheckAddress {
		t.Fatalf("expected [identity address], got %v", missing)
	}

	profile.IdentityVerified = true
	profile.AddressVerified = true
	if !profile.FullyVerified() {
		t.Fatalf("expected fully verified profile")
	}
}
