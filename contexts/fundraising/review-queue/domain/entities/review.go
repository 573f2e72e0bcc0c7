package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PlaceholderImageURL is substituted at promotion time when a submission
// carries no image of its own.
const PlaceholderImageURL = "/assets/img/campaign-placeholder.jpg"

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// CampaignReview is an unpublished submission awaiting administrative
// approval. It lives in its own id space; approval replaces it with a
// Campaign and deletes the row, so the two never coexist.
type CampaignReview struct {
	ReviewID    string
	CreatorID   string
	Title       string
	Description string
	FullText    string
	Category    string
	ImageURL    string
	Goal        decimal.Decimal
	Status      ReviewStatus
	SubmittedAt time.Time
}

func (r CampaignReview) ValidateBasics() bool {
	title := strings.TrimSpace(r.Title)
	return strings.TrimSpace(r.CreatorID) != "" &&
		title != "" &&
		len(title) >= 3 &&
		len(title) <= 120 &&
		strings.TrimSpace(r.Description) != "" &&
		strings.TrimSpace(r.Category) != "" &&
		r.Goal.IsPositive()
}

func (r CampaignReview) Pending() bool {
	return r.Status == ReviewStatusPending
}
