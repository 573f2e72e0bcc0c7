package ports

import (
	"context"
	"time"

	"caritas/contexts/fundraising/donation-ledger/domain/entities"
	"caritas/internal/shared/events"
)

// Admin dashboard cache keys this context invalidates after successful
// writes. Settlement moves campaign counters, so it invalidates both.
const (
	CacheKeyDonations = "admin:donations"
	CacheKeyCampaigns = "admin:campaigns"
)

type EventEnvelope = events.Envelope

type DonationFilter struct {
	CampaignID string
	Status     entities.DonationStatus
}

// DonationRepository is the transactional boundary of the ledger. Settlement
// operations must apply the donation write and the campaign counter update
// as one unit of work; the counter update is an in-database increment, never
// a write-back of an application-held value.
type DonationRepository interface {
	// SettleDonation inserts a completed donation and increments the
	// campaign's raised/backers counters in a single transaction. The
	// fully-funded guard runs against a locked snapshot before any write.
	SettleDonation(ctx context.Context, donation entities.Donation) (entities.Donation, error)

	// InsertPendingDonation records a donation awaiting manual confirmation.
	// Campaign counters are untouched.
	InsertPendingDonation(ctx context.Context, donation entities.Donation) (entities.Donation, error)

	// ApproveDonation settles a pending donation: status flip plus the same
	// atomic counter increment, in one transaction. Re-driving it on an
	// already-settled donation fails without touching counters.
	ApproveDonation(ctx context.Context, donationID string, settledAt time.Time) (entities.Donation, error)

	// FailDonation moves a pending donation to failed. Counters untouched.
	FailDonation(ctx context.Context, donationID string, failedAt time.Time) (entities.Donation, error)

	GetDonation(ctx context.Context, donationID string) (entities.Donation, error)
	GetDonationByReference(ctx context.Context, referenceCode string) (entities.Donation, error)
	ListDonations(ctx context.Context, filter DonationFilter) ([]entities.Donation, error)
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

// ReferenceGenerator produces human-shareable short codes. Uniqueness is
// enforced by the repository; callers retry on ErrReferenceCodeTaken.
type ReferenceGenerator interface {
	NewReferenceCode(ctx context.Context) (string, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
