package memory

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"caritas/contexts/fundraising/review-queue/domain/entities"
	domainerrors "caritas/contexts/fundraising/review-queue/domain/errors"
	"caritas/contexts/fundraising/review-queue/ports"
)

// Store is the in-memory review repository used by tests and local wiring.
// The mutex serializes promotion the way the database transaction does.
type Store struct {
	mu sync.RWMutex

	reviews  map[string]entities.CampaignReview
	promoted map[string]ports.PromotedCampaign
	outbox   []outboxRow

	// promoteHook lets local wiring mirror the promoted campaign into the
	// campaign store, standing in for the shared campaigns table.
	promoteHook func(ports.PromotedCampaign)
}

type outboxRow struct {
	ports.OutboxMessage
	Status      string
	PublishedAt *time.Time
}

func NewStore(seed []entities.CampaignReview) *Store {
	reviews := make(map[string]entities.CampaignReview, len(seed))
	for _, item := range seed {
		reviews[item.ReviewID] = item
	}
	return &Store{
		reviews:  reviews,
		promoted: make(map[string]ports.PromotedCampaign),
	}
}

// SetPromoteHook registers a callback invoked for every promoted campaign.
func (s *Store) SetPromoteHook(hook func(ports.PromotedCampaign)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.promoteHook = hook
}

// Promoted returns the promoted campaign row for assertions.
func (s *Store) Promoted(campaignID string) (ports.PromotedCampaign, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.promoted[campaignID]
	return item, ok
}

func (s *Store) CreateReview(_ context.Context, review entities.CampaignReview) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.reviews[review.ReviewID]; exists {
		return domainerrors.ErrInvalidReviewInput
	}
	s.reviews[review.ReviewID] = review
	return nil
}

func (s *Store) GetReview(_ context.Context, reviewID string) (entities.CampaignReview, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	review, exists := s.reviews[strings.TrimSpace(reviewID)]
	if !exists {
		return entities.CampaignReview{}, domainerrors.ErrReviewNotFound
	}
	return review, nil
}

func (s *Store) ListReviews(_ context.Context, filter ports.ReviewFilter) ([]entities.CampaignReview, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.CampaignReview, 0, len(s.reviews))
	for _, review := range s.reviews {
		if strings.TrimSpace(filter.CreatorID) != "" && review.CreatorID != strings.TrimSpace(filter.CreatorID) {
			continue
		}
		if filter.PendingOnly && !review.Pending() {
			continue
		}
		items = append(items, review)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].SubmittedAt.Before(items[j].SubmittedAt)
	})
	return items, nil
}

func (s *Store) PromoteReview(_ context.Context, reviewID string, campaign ports.PromotedCampaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	review, exists := s.reviews[strings.TrimSpace(reviewID)]
	if !exists {
		return domainerrors.ErrReviewNotFound
	}
	if !review.Pending() {
		return domainerrors.ErrReviewNotPending
	}

	s.promoted[campaign.CampaignID] = campaign
	s.appendOutboxLocked("campaign.published", review, campaign.CampaignID)
	delete(s.reviews, review.ReviewID)
	if s.promoteHook != nil {
		s.promoteHook(campaign)
	}
	return nil
}

func (s *Store) RejectReview(_ context.Context, reviewID string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	review, exists := s.reviews[strings.TrimSpace(reviewID)]
	if !exists {
		return domainerrors.ErrReviewNotFound
	}
	if !review.Pending() {
		return domainerrors.ErrReviewNotPending
	}

	review.Status = entities.ReviewStatusRejected
	s.reviews[review.ReviewID] = review
	s.appendOutboxLocked("campaign.rejected", review, "")
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}
	items := make([]ports.OutboxMessage, 0)
	for _, row := range s.outbox {
		if row.Status != "pending" {
			continue
		}
		items = append(items, row.OutboxMessage)
		if len(items) >= limit {
			break
		}
	}
	return items, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, publishedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, row := range s.outbox {
		if row.OutboxID == outboxID {
			timestamp := publishedAt.UTC()
			s.outbox[i].Status = "published"
			s.outbox[i].PublishedAt = &timestamp
			return nil
		}
	}
	return domainerrors.ErrInvalidReviewInput
}

func (s *Store) appendOutboxLocked(eventType string, review entities.CampaignReview, campaignID string) {
	payload, err := json.Marshal(ports.EventEnvelope{
		EventID:        uuid.NewString(),
		EventType:      eventType,
		SourceService:  "review-queue",
		OccurredAtUTC:  time.Now().UTC(),
		EntityType:     "campaign_review",
		EntityID:       review.ReviewID,
		RecipientID:    review.CreatorID,
		PayloadVersion: 1,
		Payload: map[string]any{
			"review_id":   review.ReviewID,
			"campaign_id": campaignID,
			"title":       review.Title,
		},
	})
	if err != nil {
		return
	}
	s.outbox = append(s.outbox, outboxRow{
		OutboxMessage: ports.OutboxMessage{
			OutboxID:  uuid.NewString(),
			EventType: eventType,
			Payload:   payload,
			CreatedAt: time.Now().UTC(),
		},
		Status: "pending",
	})
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
