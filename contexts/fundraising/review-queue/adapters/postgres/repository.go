package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"caritas/contexts/fundraising/review-queue/domain/entities"
	domainerrors "caritas/contexts/fundraising/review-queue/domain/errors"
	"caritas/contexts/fundraising/review-queue/ports"
)

const (
	outboxStatusPending   = "pending"
	outboxStatusPublished = "published"
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

func (r *Repository) CreateReview(ctx context.Context, review entities.CampaignReview) error {
	row := reviewModelFromEntity(review)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidReviewInput
		}
		return err
	}
	return nil
}

func (r *Repository) GetReview(ctx context.Context, reviewID string) (entities.CampaignReview, error) {
	var row reviewModel
	err := r.db.WithContext(ctx).
		Where("review_id = ?", strings.TrimSpace(reviewID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.CampaignReview{}, domainerrors.ErrReviewNotFound
		}
		return entities.CampaignReview{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListReviews(ctx context.Context, filter ports.ReviewFilter) ([]entities.CampaignReview, error) {
	tx := r.db.WithContext(ctx).Model(&reviewModel{})
	if strings.TrimSpace(filter.CreatorID) != "" {
		tx = tx.Where("creator_id = ?", strings.TrimSpace(filter.CreatorID))
	}
	if filter.PendingOnly {
		tx = tx.Where("status = ?", string(entities.ReviewStatusPending))
	}

	var rows []reviewModel
	if err := tx.Order("submitted_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.CampaignReview, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// PromoteReview moves a submission across the approval line. The review row
// is locked and re-checked for pending status before anything is written, so
// two admins approving the same submission serialize and the loser fails
// cleanly. Campaign insert, notification row and review deletion share the
// transaction.
func (r *Repository) PromoteReview(ctx context.Context, reviewID string, campaign ports.PromotedCampaign) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row reviewModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("review_id = ?", strings.TrimSpace(reviewID)).
			First(&row).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrReviewNotFound
			}
			return err
		}
		if entities.ReviewStatus(row.Status) != entities.ReviewStatusPending {
			return domainerrors.ErrReviewNotPending
		}

		campaignRow := publishedCampaignModelFromPromotion(campaign)
		if err := tx.Create(&campaignRow).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrInvalidReviewInput
			}
			return err
		}
		if err := insertReviewOutboxTx(tx, "campaign.published", row, campaign.CampaignID); err != nil {
			return err
		}
		return tx.Delete(&reviewModel{}, "review_id = ?", row.ReviewID).Error
	})
}

func (r *Repository) RejectReview(ctx context.Context, reviewID string, rejectedAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row reviewModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("review_id = ?", strings.TrimSpace(reviewID)).
			First(&row).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrReviewNotFound
			}
			return err
		}
		if entities.ReviewStatus(row.Status) != entities.ReviewStatusPending {
			return domainerrors.ErrReviewNotPending
		}

		timestamp := rejectedAt.UTC()
		if err := tx.Model(&reviewModel{}).
			Where("review_id = ?", row.ReviewID).
			Updates(map[string]any{
				"status":      string(entities.ReviewStatusRejected),
				"resolved_at": &timestamp,
			}).
			Error; err != nil {
			return err
		}
		return insertReviewOutboxTx(tx, "campaign.rejected", row, "")
	})
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}

	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.OutboxMessage{
			OutboxID:  row.OutboxID,
			EventType: row.EventType,
			Payload:   append([]byte(nil), row.Payload...),
			CreatedAt: row.CreatedAt.UTC(),
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", strings.TrimSpace(outboxID)).
		Updates(map[string]any{
			"status":       outboxStatusPublished,
			"published_at": publishedAt.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInvalidReviewInput
	}
	return nil
}

func insertReviewOutboxTx(tx *gorm.DB, eventType string, review reviewModel, campaignID string) error {
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
		return err
	}
	row := outboxModel{
		OutboxID:  uuid.NewString(),
		EventType: eventType,
		Payload:   payload,
		Status:    outboxStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	return tx.Create(&row).Error
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type reviewModel struct {
	ReviewID    string          `gorm:"column:review_id;primaryKey"`
	CreatorID   string          `gorm:"column:creator_id;index"`
	Title       string          `gorm:"column:title"`
	Description string          `gorm:"column:description"`
	FullText    string          `gorm:"column:full_text"`
	Category    string          `gorm:"column:category"`
	ImageURL    string          `gorm:"column:image_url"`
	Goal        decimal.Decimal `gorm:"column:goal;type:numeric(12,2)"`
	Status      string          `gorm:"column:status;index"`
	SubmittedAt time.Time       `gorm:"column:submitted_at"`
	ResolvedAt  *time.Time      `gorm:"column:resolved_at"`
}

func (reviewModel) TableName() string {
	return "campaign_reviews"
}

func reviewModelFromEntity(item entities.CampaignReview) reviewModel {
	return reviewModel{
		ReviewID:    strings.TrimSpace(item.ReviewID),
		CreatorID:   strings.TrimSpace(item.CreatorID),
		Title:       strings.TrimSpace(item.Title),
		Description: strings.TrimSpace(item.Description),
		FullText:    strings.TrimSpace(item.FullText),
		Category:    strings.TrimSpace(item.Category),
		ImageURL:    strings.TrimSpace(item.ImageURL),
		Goal:        item.Goal,
		Status:      string(item.Status),
		SubmittedAt: item.SubmittedAt.UTC(),
	}
}

func (m reviewModel) toEntity() entities.CampaignReview {
	return entities.CampaignReview{
		ReviewID:    m.ReviewID,
		CreatorID:   m.CreatorID,
		Title:       m.Title,
		Description: m.Description,
		FullText:    m.FullText,
		Category:    m.Category,
		ImageURL:    m.ImageURL,
		Goal:        m.Goal,
		Status:      entities.ReviewStatus(m.Status),
		SubmittedAt: m.SubmittedAt.UTC(),
	}
}

// publishedCampaignModel is the queue's write-only view of the campaigns
// table, used exactly once per approval to insert the promoted row.
type publishedCampaignModel struct {
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

func (publishedCampaignModel) TableName() string {
	return "campaigns"
}

func publishedCampaignModelFromPromotion(item ports.PromotedCampaign) publishedCampaignModel {
	return publishedCampaignModel{
		CampaignID:  item.CampaignID,
		CreatorID:   item.CreatorID,
		Title:       item.Title,
		Description: item.Description,
		FullText:    item.FullText,
		Category:    item.Category,
		ImageURL:    item.ImageURL,
		Goal:        item.Goal,
		Raised:      decimal.Zero,
		Backers:     0,
		Verified:    true,
		Status:      "live",
		CreatedAt:   item.CreatedAt.UTC(),
		UpdatedAt:   item.CreatedAt.UTC(),
	}
}

type outboxModel struct {
	OutboxID    string     `gorm:"column:outbox_id;primaryKey"`
	EventType   string     `gorm:"column:event_type"`
	Payload     []byte     `gorm:"column:payload"`
	Status      string     `gorm:"column:status"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	PublishedAt *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string {
	return "review_outbox"
}
