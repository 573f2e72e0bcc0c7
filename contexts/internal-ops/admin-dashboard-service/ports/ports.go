package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Cache keys for the four admin dashboard collections. The same cache
// instance backs the Invalidate calls made by the owning contexts, so a
// write anywhere lands here as an eviction.
const (
	CacheKeyCampaigns = "admin:campaigns"
	CacheKeyReviews   = "admin:reviews"
	CacheKeyDonations = "admin:donations"
	CacheKeyProfiles  = "admin:profiles"
)

// Cache stores marshaled dashboard payloads with a bounded lifetime. Get
// returns false for missing and expired entries alike.
type Cache interface {
	Get(key string) ([]byte, bool)
	Put(key string, payload []byte)
	Invalidate(key string)
	InvalidateAll()
}

type CampaignSummary struct {
	CampaignID string          `json:"campaign_id"`
	CreatorID  string          `json:"creator_id"`
	Title      string          `json:"title"`
	Category   string          `json:"category"`
	Goal       decimal.Decimal `json:"goal"`
	Raised     decimal.Decimal `json:"raised"`
	Backers    int             `json:"backers"`
	Verified   bool            `json:"verified"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

type ReviewSummary struct {
	ReviewID    string          `json:"review_id"`
	CreatorID   string          `json:"creator_id"`
	Title       string          `json:"title"`
	Category    string          `json:"category"`
	Goal        decimal.Decimal `json:"goal"`
	Status      string          `json:"status"`
	SubmittedAt time.Time       `json:"submitted_at"`
}

type DonationSummary struct {
	DonationID    string          `json:"donation_id"`
	ReferenceCode string          `json:"reference_code"`
	CampaignID    string          `json:"campaign_id"`
	DonorName     string          `json:"donor_name"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

type ProfileSummary struct {
	CreatorID        string `json:"creator_id"`
	DisplayName      string `json:"display_name"`
	Email            string `json:"email"`
	PhoneVerified    bool   `json:"phone_verified"`
	IdentityVerified bool   `json:"identity_verified"`
	AddressVerified  bool   `json:"address_verified"`
	Disabled         bool   `json:"disabled"`
	OnHold           bool   `json:"on_hold"`
}

// Reader ports over the owning contexts. The dashboard never writes through
// them; mutation stays with the owners.
type CampaignReader interface {
	ListCampaignSummaries(ctx context.Context) ([]CampaignSummary, error)
}

type ReviewReader interface {
	ListPendingReviewSummaries(ctx context.Context) ([]ReviewSummary, error)
}

type DonationReader interface {
	ListDonationSummaries(ctx context.Context) ([]DonationSummary, error)
}

type ProfileReader interface {
	ListProfileSummaries(ctx context.Context) ([]ProfileSummary, error)
}
