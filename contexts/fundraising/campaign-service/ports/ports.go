package ports

import (
	"context"
	"time"

	"caritas/contexts/fundraising/campaign-service/domain/entities"
)

// Admin dashboard cache keys this context is obligated to invalidate after a
// successful write. Key strings are shared by convention with the dashboard
// loaders; the invalidation call itself is enforced at compile time through
// DashboardCache being a required dependency of every mutating use case.
const (
	CacheKeyCampaigns = "admin:campaigns"
)

type CampaignFilter struct {
	CreatorID  string
	Status     entities.CampaignStatus
	PublicOnly bool
}

// TextUpdate carries the admin-editable descriptive fields. Nil means leave
// unchanged. Financial counters are deliberately not representable here.
type TextUpdate struct {
	Title       *string
	Description *string
	FullText    *string
	Category    *string
}

type CampaignRepository interface {
	CreateCampaign(ctx context.Context, campaign entities.Campaign) error
	GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error)
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]entities.Campaign, error)
	UpdateCampaignText(ctx context.Context, campaignID string, update TextUpdate, updatedAt time.Time) error
	SetCampaignStatus(ctx context.Context, campaignID string, status entities.CampaignStatus, updatedAt time.Time) error
	DeleteCampaign(ctx context.Context, campaignID string) error
}

type DashboardCache interface {
	Invalidate(key string)
	InvalidateAll()
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
