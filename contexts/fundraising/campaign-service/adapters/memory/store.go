package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"caritas/contexts/fundraising/campaign-service/domain/entities"
	domainerrors "caritas/contexts/fundraising/campaign-service/domain/errors"
	"caritas/contexts/fundraising/campaign-service/ports"
)

// Store is the in-memory repository used by tests and local wiring.
type Store struct {
	mu sync.RWMutex

	campaigns map[string]entities.Campaign
}

func NewStore(seed []entities.Campaign) *Store {
	campaigns := make(map[string]entities.Campaign, len(seed))
	for _, item := range seed {
		campaigns[item.CampaignID] = item
	}
	return &Store{campaigns: campaigns}
}

func (s *Store) CreateCampaign(_ context.Context, campaign entities.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.campaigns[campaign.CampaignID]; exists {
		return domainerrors.ErrInvalidCampaignInput
	}
	s.campaigns[campaign.CampaignID] = campaign
	return nil
}

func (s *Store) GetCampaign(_ context.Context, campaignID string) (entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.campaigns[strings.TrimSpace(campaignID)]
	if !exists {
		return entities.Campaign{}, domainerrors.ErrCampaignNotFound
	}
	return item, nil
}

func (s *Store) ListCampaigns(_ context.Context, filter ports.CampaignFilter) ([]entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Campaign, 0, len(s.campaigns))
	for _, campaign := range s.campaigns {
		if strings.TrimSpace(filter.CreatorID) != "" && campaign.CreatorID != strings.TrimSpace(filter.CreatorID) {
			continue
		}
		if filter.Status != "" && campaign.Status != filter.Status {
			continue
		}
		if filter.PublicOnly && !campaign.PubliclyVisible() {
			continue
		}
		items = append(items, campaign)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) UpdateCampaignText(
	_ context.Context,
	campaignID string,
	update ports.TextUpdate,
	updatedAt time.Time,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.campaigns[strings.TrimSpace(campaignID)]
	if !exists {
		return domainerrors.ErrCampaignNotFound
	}
	if update.Title != nil {
		item.Title = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		item.Description = strings.TrimSpace(*update.Description)
	}
	if update.FullText != nil {
		item.FullText = strings.TrimSpace(*update.FullText)
	}
	if update.Category != nil {
		item.Category = strings.TrimSpace(*update.Category)
	}
	item.UpdatedAt = updatedAt.UTC()
	s.campaigns[item.CampaignID] = item
	return nil
}

func (s *Store) SetCampaignStatus(
	_ context.Context,
	campaignID string,
	status entities.CampaignStatus,
	updatedAt time.Time,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.campaigns[strings.TrimSpace(campaignID)]
	if !exists {
		return domainerrors.ErrCampaignNotFound
	}
	item.Status = status
	item.UpdatedAt = updatedAt.UTC()
	s.campaigns[item.CampaignID] = item
	return nil
}

func (s *Store) DeleteCampaign(_ context.Context, campaignID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.campaigns[strings.TrimSpace(campaignID)]; !exists {
		return domainerrors.ErrCampaignNotFound
	}
	delete(s.campaigns, strings.TrimSpace(campaignID))
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
