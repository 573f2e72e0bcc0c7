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

	"caritas/contexts/fundraising/donation-ledger/domain/entities"
	domainerrors "caritas/contexts/fundraising/donation-ledger/domain/errors"
	"caritas/contexts/fundraising/donation-ledger/ports"
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

// SettleDonation runs the admission guard, the donation insert and the
// counter increment inside one transaction. The campaign row is read under
// SELECT ... FOR UPDATE so two concurrent donors serialize on the guard, and
// the counter update is an in-database increment expression rather than a
// write-back of the value read.
func (r *Repository) SettleDonation(ctx context.Context, donation entities.Donation) (entities.Donation, error) {
	row := donationModelFromEntity(donation)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var campaign campaignFinancialModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("campaign_id = ?", row.CampaignID).
			First(&campaign).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrCampaignNotFound
			}
			return err
		}
		if campaign.Goal.IsPositive() && campaign.Raised.GreaterThanOrEqual(campaign.Goal) {
			return domainerrors.ErrCampaignFullyFunded
		}

		if err := tx.Create(&row).Error; err != nil {
			return classifyInsertError(err)
		}
		if err := incrementCountersTx(tx, row.CampaignID, row.Amount, row.CreatedAt); err != nil {
			return err
		}
		return insertSettlementOutboxTx(tx, row)
	})
	if err != nil {
		return entities.Donation{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) InsertPendingDonation(ctx context.Context, donation entities.Donation) (entities.Donation, error) {
	row := donationModelFromEntity(donation)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&campaignFinancialModel{}).
			Where("campaign_id = ?", row.CampaignID).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrCampaignNotFound
		}
		if err := tx.Create(&row).Error; err != nil {
			return classifyInsertError(err)
		}
		return nil
	})
	if err != nil {
		return entities.Donation{}, err
	}
	return row.toEntity(), nil
}

// ApproveDonation settles a pending donation exactly once. The donation row
// is locked first; a second approval observes status completed and fails
// before any counter write.
func (r *Repository) ApproveDonation(
	ctx context.Context,
	donationID string,
	settledAt time.Time,
) (entities.Donation, error) {
	var row donationModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("donation_id = ?", strings.TrimSpace(donationID)).
			First(&row).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrDonationNotFound
			}
			return err
		}
		switch entities.DonationStatus(row.Status) {
		case entities.DonationStatusCompleted:
			return domainerrors.ErrDonationAlreadySettled
		case entities.DonationStatusFailed:
			return domainerrors.ErrDonationAlreadyFailed
		}

		timestamp := settledAt.UTC()
		row.Status = string(entities.DonationStatusCompleted)
		row.SettledAt = &timestamp
		if err := tx.Model(&donationModel{}).
			Where("donation_id = ?", row.DonationID).
			Updates(map[string]any{
				"status":     row.Status,
				"settled_at": row.SettledAt,
			}).
			Error; err != nil {
			return err
		}
		if err := incrementCountersTx(tx, row.CampaignID, row.Amount, timestamp); err != nil {
			return err
		}
		return insertSettlementOutboxTx(tx, row)
	})
	if err != nil {
		return entities.Donation{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) FailDonation(
	ctx context.Context,
	donationID string,
	failedAt time.Time,
) (entities.Donation, error) {
	var row donationModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("donation_id = ?", strings.TrimSpace(donationID)).
			First(&row).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrDonationNotFound
			}
			return err
		}
		switch entities.DonationStatus(row.Status) {
		case entities.DonationStatusCompleted:
			return domainerrors.ErrDonationAlreadySettled
		case entities.DonationStatusFailed:
			return domainerrors.ErrDonationAlreadyFailed
		}

		row.Status = string(entities.DonationStatusFailed)
		return tx.Model(&donationModel{}).
			Where("donation_id = ?", row.DonationID).
			Update("status", row.Status).
			Error
	})
	if err != nil {
		return entities.Donation{}, err
	}
	_ = failedAt
	return row.toEntity(), nil
}

func (r *Repository) GetDonation(ctx context.Context, donationID string) (entities.Donation, error) {
	var row donationModel
	err := r.db.WithContext(ctx).
		Where("donation_id = ?", strings.TrimSpace(donationID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Donation{}, domainerrors.ErrDonationNotFound
		}
		return entities.Donation{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetDonationByReference(ctx context.Context, referenceCode string) (entities.Donation, error) {
	var row donationModel
	err := r.db.WithContext(ctx).
		Where("reference_code = ?", strings.ToUpper(strings.TrimSpace(referenceCode))).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Donation{}, domainerrors.ErrDonationNotFound
		}
		return entities.Donation{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListDonations(ctx context.Context, filter ports.DonationFilter) ([]entities.Donation, error) {
	tx := r.db.WithContext(ctx).Model(&donationModel{})
	if strings.TrimSpace(filter.CampaignID) != "" {
		tx = tx.Where("campaign_id = ?", strings.TrimSpace(filter.CampaignID))
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}

	var rows []donationModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.Donation, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
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
		return domainerrors.ErrInvalidDonationInput
	}
	return nil
}

func incrementCountersTx(tx *gorm.DB, campaignID string, amount decimal.Decimal, now time.Time) error {
	result := tx.Model(&campaignFinancialModel{}).
		Where("campaign_id = ?", campaignID).
		Updates(map[string]any{
			"raised":     gorm.Expr("raised + ?", amount),
			"backers":    gorm.Expr("backers + 1"),
			"updated_at": now.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCampaignNotFound
	}
	return nil
}

func insertSettlementOutboxTx(tx *gorm.DB, donation donationModel) error {
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
		return err
	}
	row := outboxModel{
		OutboxID:  uuid.NewString(),
		EventType: "donation.settled",
		Payload:   payload,
		Status:    outboxStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	return tx.Create(&row).Error
}

func classifyInsertError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "reference_code") {
			return domainerrors.ErrReferenceCodeTaken
		}
		return domainerrors.ErrInvalidDonationInput
	}
	return err
}

type donationModel struct {
	DonationID    string          `gorm:"column:donation_id;primaryKey"`
	ReferenceCode string          `gorm:"column:reference_code;uniqueIndex:idx_donations_reference_code"`
	CampaignID    string          `gorm:"column:campaign_id;index"`
	Amount        decimal.Decimal `gorm:"column:amount;type:numeric(12,2)"`
	DonorName     string          `gorm:"column:donor_name"`
	DonorEmail    string          `gorm:"column:donor_email"`
	Method        string          `gorm:"column:method"`
	Status        string          `gorm:"column:status;index"`
	Note          string          `gorm:"column:note"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	SettledAt     *time.Time      `gorm:"column:settled_at"`
}

func (donationModel) TableName() string {
	return "donations"
}

func donationModelFromEntity(item entities.Donation) donationModel {
	return donationModel{
		DonationID:    strings.TrimSpace(item.DonationID),
		ReferenceCode: strings.ToUpper(strings.TrimSpace(item.ReferenceCode)),
		CampaignID:    strings.TrimSpace(item.CampaignID),
		Amount:        item.Amount,
		DonorName:     strings.TrimSpace(item.DonorName),
		DonorEmail:    strings.TrimSpace(item.DonorEmail),
		Method:        string(item.Method),
		Status:        string(item.Status),
		Note:          strings.TrimSpace(item.Note),
		CreatedAt:     item.CreatedAt.UTC(),
		SettledAt:     normalizeOptionalTime(item.SettledAt),
	}
}

func (m donationModel) toEntity() entities.Donation {
	return entities.Donation{
		DonationID:    m.DonationID,
		ReferenceCode: m.ReferenceCode,
		CampaignID:    m.CampaignID,
		Amount:        m.Amount,
		DonorName:     m.DonorName,
		DonorEmail:    m.DonorEmail,
		Method:        entities.PaymentMethod(m.Method),
		Status:        entities.DonationStatus(m.Status),
		Note:          m.Note,
		CreatedAt:     m.CreatedAt.UTC(),
		SettledAt:     normalizeOptionalTime(m.SettledAt),
	}
}

// campaignFinancialModel is the ledger's narrow view of the campaigns table:
// only the columns settlement needs to guard and increment.
type campaignFinancialModel struct {
	CampaignID string          `gorm:"column:campaign_id;primaryKey"`
	Goal       decimal.Decimal `gorm:"column:goal;type:numeric(12,2)"`
	Raised     decimal.Decimal `gorm:"column:raised;type:numeric(12,2)"`
	Backers    int             `gorm:"column:backers"`
	UpdatedAt  time.Time       `gorm:"column:updated_at"`
}

func (campaignFinancialModel) TableName() string {
	return "campaigns"
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
	return "donation_outbox"
}

func normalizeOptionalTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	timestamp := value.UTC()
	return &timestamp
}
