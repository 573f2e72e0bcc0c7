package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"caritas/contexts/fundraising/campaign-service/domain/entities"
	domainerrors "caritas/contexts/fundraising/campaign-service/domain/errors"
	"caritas/contexts/fundraising/campaign-service/ports"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateCampaign(ctx context.Context, campaign entities.Campaign) error {
	row := campaignModelFromEntity(campaign)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidCampaignInput
		}
		return err
	}
	return nil
}

func (r *Repository) GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error) {
	var row campaignModel
	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Campaign{}, domainerrors.ErrCampaignNotFound
		}
		return entities.Campaign{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListCampaigns(ctx context.Context, filter ports.CampaignFilter) ([]entities.Campaign, error) {
	tx := r.db.WithContext(ctx).Model(&campaignModel{})
	if strings.TrimSpace(filter.CreatorID) != "" {
		tx = tx.Where("creator_id = ?", strings.TrimSpace(filter.CreatorID))
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}
	if filter.PublicOnly {
		tx = tx.Where("status = ?", string(entities.CampaignStatusLive))
	}

	var rows []campaignModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.Campaign, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) UpdateCampaignText(
	ctx context.Context,
	campaignID string,
	update ports.TextUpdate,
	updatedAt time.Time,
) error {
	columns := map[string]any{
		"updated_at": updatedAt.UTC(),
	}
	if update.Title != nil {
		columns["title"] = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		columns["description"] = strings.TrimSpace(*update.Description)
	}
	if update.FullText != nil {
		columns["full_text"] = strings.TrimSpace(*update.FullText)
	}
	if update.Category != nil {
		columns["category"] = strings.TrimSpace(*update.Category)
	}

	result := r.db.WithContext(ctx).
		Model(&campaignModel{}).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCampaignNotFound
	}
	return nil
}

func (r *Repository) SetCampaignStatus(
	ctx context.Context,
	campaignID string,
	status entities.CampaignStatus,
	updatedAt time.Time,
) error {
	result := r.db.WithContext(ctx).
		Model(&campaignModel{}).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": updatedAt.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCampaignNotFound
	}
	return nil
}

func (r *Repository) DeleteCampaign(ctx context.Context, campaignID string) error {
	result := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		Delete(&campaignModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCampaignNotFound
	}
	return nil
}

type campaignModel struct {
	CampaignID  string          `gorm:"column:campaign_id;primaryKey"`
	CreatorID   string          `gorm:"column:creator_id"`
	Title       string          `gorm:"column:title"`
	Description string          `gorm:"column:description"`
	FullText    string          `gorm:"column:full_text"`
	Category    string          `gorm:"column:category"`
	ImageURL    string          `gorm:"column:image_url"`
	Goal        decimal.Decimal `gorm:"column:goal;type:numeric(12,2)"`
	Raised      decimal.Decimal `gorm:"column:raised;type:numeric(12,2)"`
	Backers     int             `gorm:"column:backers"`
	Verified    bool            `gorm:"column:verified"`
	Status      string          `gorm:"column:status"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

func (campaignModel) TableName() string {
	return "campaigns"
}

func campaignModelFromEntity(item entities.Campaign) campaignModel {
	return campaignModel{
		CampaignID:  strings.TrimSpace(item.CampaignID),
		CreatorID:   strings.TrimSpace(item.CreatorID),
		Title:       strings.TrimSpace(item.Title),
		Description: strings.TrimSpace(item.Description),
		FullText:    strings.TrimSpace(item.FullText),
		Category:    strings.TrimSpace(item.Category),
		ImageURL:    strings.TrimSpace(item.ImageURL),
		Goal:        item.Goal,
		Raised:      item.Raised,
		Backers:     item.Backers,
		Verified:    item.Verified,
		Status:      string(item.Status),
		CreatedAt:   item.CreatedAt.UTC(),
		UpdatedAt:   item.UpdatedAt.UTC(),
	}
}

func (m campaignModel) toEntity() entities.Campaign {
	return entities.Campaign{
		CampaignID:  m.CampaignID,
		CreatorID:   m.CreatorID,
		Title:       m.Title,
		Description: m.Description,
		FullText:    m.FullText,
		Category:    m.Category,
		ImageURL:    m.ImageURL,
		Goal:        m.Goal,
		Raised:      m.Raised,
		Backers:     m.Backers,
		Verified:    m.Verified,
		Status:      entities.CampaignStatus(m.Status),
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
