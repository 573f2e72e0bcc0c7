package ports

import (
	"context"
	"time"

	"caritas/contexts/identity-access/verification-service/domain/entities"
)

const (
	CacheKeyProfiles = "admin:profiles"
)

type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile entities.CreatorProfile) error
	GetProfile(ctx context.Context, creatorID string) (entities.CreatorProfile, error)
	ListProfiles(ctx context.Context) ([]entities.CreatorProfile, error)
	SetVerification(ctx context.Context, creatorID string, check entities.VerificationCheck, verified bool, updatedAt time.Time) error
}

type DashboardCache interface {
	Invalidate(key string)
	InvalidateAll()
}

type Clock interface {
	Now() time.Time
}
