package memory

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"caritas/contexts/fundraising/donation-ledger/domain/entities"
	domainerrors "caritas/contexts/fundraising/donation-ledger/domain/errors"
	"caritas/contexts/fundraising/donation-ledger/ports"
)

// CampaignFinance is the ledger's view of a campaign: the columns settlement
// guards and increments. Seeded by tests and local wiring.
type CampaignFinance struct {
	CampaignID string
	Goal       decimal.Decimal
	Raised     decimal.Decimal
	Backers    int
}

// Store is the in-memory repository used by tests and local wiring. The
// mutex serializes settlement the way the database transaction does.
type Store struct {
	mu sync.RWMutex

	campaigns map[string]CampaignFinance
	donations map[string]entities.Donation
	refCodes  map[string]string
	outbox    []outboxRow
}

type outboxRow struct {
	ports.OutboxMessage
	Status      string
	PublishedAt *time.Time
}

func NewStore(seed []CampaignFinance) *Store {
	campaigns := make(map[string]CampaignFinance, len(seed))
	for _, item := range seed {
		campaigns[item.CampaignID] = item
	}
	return &Store{
		campaigns: campaigns,
		donations: make(map[string]entities.Donation),
		refCodes:  make(map[string]string),
	}
}

// SeedCampaign registers or replaces a campaign's financial view.
func (s *Store) SeedCampaign(finance CampaignFinance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaigns[finance.CampaignID] = finance
}

// Finance returns the current counters for assertions.
func (s *Store) Finance(campaignID string) (CampaignFinance, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.campaigns[campaignID]
	return item, ok
}

func (s *Store) SettleDonation(_ context.Context, donation entities.Donation) (entities.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	campaign, exists := s.campaigns[donation.CampaignID]
	if !exists {
		return entities.Donation{}, domainerrors.ErrCampaignNotFound
	}
	if campaign.Goal.IsPositive() && campaign.Raised.GreaterThanOrEqual(campaign.Goal) {
		return entities.Donation{}, domainerrors.ErrCampaignFullyFunded
	}
	if err := s.insertLocked(donation); err != nil {
		return entities.Donation{}, err
	}

	campaign.Raised = campaign.Raised.Add(donation.Amount)
	campaign.Backers++
	s.campaigns[campaign.CampaignID] = campaign
	s.appendOutboxLocked(donation)
	return s.donations[donation.DonationID], nil
}

func (s *Store) InsertPendingDonation(_ context.Context, donation entities.Donation) (entities.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.campaigns[donation.CampaignID]; !exists {
		return entities.Donation{}, domainerrors.ErrCampaignNotFound
	}
	if err := s.insertLocked(donation); err != nil {
		return entities.Donation{}, err
	}
	return s.donations[donation.DonationID], nil
}

func (s *Store) ApproveDonation(_ context.Context, donationID string, settledAt time.Time) (entities.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	donation, exists := s.donations[strings.TrimSpace(donationID)]
	if !exists {
		return entities.Donation{}, domainerrors.ErrDonationNotFound
	}
	switch donation.Status {
	case entities.DonationStatusCompleted:
		return entities.Donation{}, domainerrors.ErrDonationAlreadySettled
	case entities.DonationStatusFailed:
		return entities.Donation{}, domainerrors.ErrDonationAlreadyFailed
	}

	campaign, exists := s.campaigns[donation.CampaignID]
	if !exists {
		return entities.Donation{}, domainerrors.ErrCampaignNotFound
	}

	timestamp := settledAt.UTC()
	donation.Status = entities.DonationStatusCompleted
	donation.SettledAt = &timestamp
	s.donations[donation.DonationID] = donation

	campaign.Raised = campaign.Raised.Add(donation.Amount)
	campaign.Backers++
	s.campaigns[campaign.CampaignID] = campaign
	s.appendOutboxLocked(donation)
	return donation, nil
}

func (s *Store) FailDonation(_ context.Context, donationID string, _ time.Time) (entities.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	donation, exists := s.donations[strings.TrimSpace(donationID)]
	if !exists {
		return entities.Donation{}, domainerrors.ErrDonationNotFound
	}
	switch donation.Status {
	case entities.DonationStatusCompleted:
		return entities.Donation{}, domainerrors.ErrDonationAlreadySettled
	case entities.DonationStatusFailed:
		return entities.Donation{}, domainerrors.ErrDonationAlreadyFailed
	}

	donation.Status = entities.DonationStatusFailed
	s.donations[donation.DonationID] = donation
	return donation, nil
}

func (s *Store) GetDonation(_ context.Context, donationID string) (entities.Donation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	donation, exists := s.donations[strings.TrimSpace(donationID)]
	if !exists {
		return entities.Donation{}, domainerrors.ErrDonationNotFound
	}
	return donation, nil
}

func (s *Store) GetDonationByReference(_ context.Context, referenceCode string) (entities.Donation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	donationID, exists := s.refCodes[strings.ToUpper(strings.TrimSpace(referenceCode))]
	if !exists {
		return entities.Donation{}, domainerrors.ErrDonationNotFound
	}
	return s.donations[donationID], nil
}

func (s *Store) ListDonations(_ context.Context, filter ports.DonationFilter) ([]entities.Donation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Donation, 0, len(s.donations))
	for _, donation := range s.donations {
		if strings.TrimSpace(filter.CampaignID) != "" && donation.CampaignID != strings.TrimSpace(filter.CampaignID) {
			continue
		}
		if filter.Status != "" && donation.Status != filter.Status {
			continue
		}
		items = append(items, donation)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
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
	return domainerrors.ErrInvalidDonationInput
}

func (s *Store) insertLocked(donation entities.Donation) error {
	if _, exists := s.donations[donation.DonationID]; exists {
		return domainerrors.ErrInvalidDonationInput
	}
	code := strings.ToUpper(strings.TrimSpace(donation.ReferenceCode))
	if _, exists := s.refCodes[code]; exists {
		return domainerrors.ErrReferenceCodeTaken
	}
	donation.ReferenceCode = code
	s.donations[donation.DonationID] = donation
	s.refCodes[code] = donation.DonationID
	return nil
}

func (s *Store) appendOutboxLocked(donation entities.Donation) {
	payload, err := json.Marshal(ports.EventEnvelope{
		EventID:        uuid.NewString(),
		EventType:      "donation.settled",
		SourceService:  "donation-ledger",
		OccurredAtUTC:  time.Now().UTC(),
		EntityType:     "donation",
		EntityID:       donation.DonationID,
		RecipientID:    donation.DonorEmail,
		PayloadVersion: 1,
		Payload: map[string]any{
			"donation_id":    donation.DonationID,
			"campaign_id":    donation.CampaignID,
			"reference_code": donation.ReferenceCode,
			"amount":         donation.Amount.StringFixed(2),
		},
	})
	if err != nil {
		return
	}
	s.outbox = append(s.outbox, outboxRow{
		OutboxMessage: ports.OutboxMessage{
			OutboxID:  uuid.NewString(),
			EventType: "donation.settled",
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

const refCodeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

func (s *Store) NewReferenceCode(_ context.Context) (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes for reference code: %w", err)
	}
	for i, b := range buf {
		buf[i] = refCodeAlphabet[int(b)%len(refCodeAlphabet)]
	}
	return "DN-" + string(buf), nil
}
