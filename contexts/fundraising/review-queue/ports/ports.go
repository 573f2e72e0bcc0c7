package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"caritas/contexts/fundraising/review-queue/domain/entities"
	"caritas/internal/shared/events"
)

// Admin dashboard cache keys this context invalidates after successful
// writes. Approval publishes a campaign, so it invalidates both.
const (
	CacheKeyReviews   = "admin:reviews"
	CacheKeyCampaigns = "admin:campaigns"
)

type EventEnvelope = events.Envelope

type ReviewFilter struct {
	CreatorID   string
	PendingOnly bool
}

// PromotedCampaign is the row PromoteReview writes into the campaigns table.
// Counters start at zero; only the donation ledger moves them afterwards.
type PromotedCampaign struct {
	CampaignID  string
	CreatorID   string
	Title       string
	Description string
	FullText    string
	Category    string
	ImageURL    string
	Goal        decimal.Decimal
	CreatedAt   time.Time
}

// ReviewRepository is the transactional boundary of the queue. PromoteReview
// must insert the campaign, queue the published notification, and delete the
// review row as one unit of work so a submission can never exist on both
// sides of the approval line.
type ReviewRepository interface {
	CreateReview(ctx context.Context, review entities.CampaignReview) error
	GetReview(ctx context.Context, reviewID string) (entities.CampaignReview, error)
	ListReviews(ctx context.Context, filter ReviewFilter) ([]entities.CampaignReview, error)

	// PromoteReview replaces a pending review with a live campaign in a
	// single transaction. The pending check re-runs against a locked row.
	PromoteReview(ctx context.Context, reviewID string, campaign PromotedCampaign) error

	// RejectReview marks a pending review rejected and queues the rejection
	// notification. The row is kept for audit but leaves the pending queue.
	RejectReview(ctx context.Context, reviewID string, rejectedAt time.Time) error
}

// VerificationReader exposes the creator verification state owned by the
// identity-access context. The queue only reads it.
type VerificationReader interface {
	VerificationState(ctx context.Context, creatorID string) (VerificationState, error)
	EnsureMaySubmit(ctx context.Context, creatorID string) error
}

type VerificationState struct {
	PhoneVerified    bool
	IdentityVerified bool
	AddressVerified  bool
}

// MissingChecks lists the failing checks in a stable order.
func (s VerificationState) MissingChecks() []string {
	var missing []string
	if !s.PhoneVerified {
		missing = append(missing, "phone")
	}
	if !s.IdentityVerified {
		missing = append(missing, "identity")
	}
	if !s.AddressVerified {
		missing = append(missing, "address")
	}
	return missing
}

type OutboxMessage struct {
	OutboxID  string
	EventType string
	Payload   []byte
	CreatedAt time.Time
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
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
