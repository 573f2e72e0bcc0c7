package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type CampaignStatus string

const (
	CampaignStatusLive    CampaignStatus = "live"
	CampaignStatusOnHold  CampaignStatus = "on_hold"
	CampaignStatusPending CampaignStatus = "pending"
)

// DefaultImageURL is substituted when a submission or admin creation carries
// no image of its own.
const DefaultImageURL = "/assets/img/campaign-placeholder.jpg"

// Campaign is a published fundraising effort. Raised and Backers mirror the
// settled donations referencing the campaign; only the donation ledger is
// allowed to move them.
type Campaign struct {
	CampaignID  string
	CreatorID   string
	Title       string
	Description string
	FullText    string
	Category    string
	ImageURL    string
	Goal        decimal.Decimal
	Raised      decimal.Decimal
	Backers     int
	Verified    bool
	Status      CampaignStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c Campaign) ValidateBasics() bool {
	title := strings.TrimSpace(c.Title)
	description := strings.TrimSpace(c.Description)
	category := strings.TrimSpace(c.Category)

	return title != "" &&
		len(title) >= 3 &&
		len(title) <= 120 &&
		description != "" &&
		len(description) <= 5000 &&
		category != "" &&
		c.Goal.IsPositive() &&
		!c.Raised.IsNegative() &&
		c.Backers >= 0
}

func (c Campaign) PubliclyVisible() bool {
	return c.Status == CampaignStatusLive
}

func IsSupportedStatus(value CampaignStatus) bool {
	switch value {
	case CampaignStatusLive, CampaignStatusOnHold, CampaignStatusPending:
		return true
	default:
		return false
	}
}
