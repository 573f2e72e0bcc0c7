package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"caritas/contexts/identity-access/verification-service/domain/entities"
	domainerrors "caritas/contexts/identity-access/verification-service/domain/errors"
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

func (r *Repository) CreateProfile(ctx context.Context, profile entities.CreatorProfile) error {
	row := profileModelFromEntity(profile)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidProfileInput
		}
		return err
	}
	return nil
}

func (r *Repository) GetProfile(ctx context.Context, creatorID string) (entities.CreatorProfile, error) {
	var row profileModel
	err := r.db.WithContext(ctx).
		Where("creator_id = ?", strings.TrimSpace(creatorID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.CreatorProfile{}, domainerrors.ErrProfileNotFound
		}
		return entities.CreatorProfile{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListProfiles(ctx context.Context) ([]entities.CreatorProfile, error) {
	var rows []profileModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.CreatorProfile, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) SetVerification(
	ctx context.Context,
	creatorID string,
	check entities.VerificationCheck,
	verified bool,
	updatedAt time.Time,
) error {
	var column string
	switch check {
	case entities.CheckPhone:
		column = "phone_verified"
	case entities.CheckIdentity:
		column = "identity_verified"
	case entities.CheckAddress:
		column = "address_verified"
	default:
		return domainerrors.ErrUnsupportedCheckValue
	}

	result := r.db.WithContext(ctx).
		Model(&profileModel{}).
		Where("creator_id = ?", strings.TrimSpace(creatorID)).
		Updates(map[string]any{
			column:       verified,
			"updated_at": updatedAt.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProfileNotFound
	}
	return nil
}

type profileModel struct {
	CreatorID        string    `gorm:"column:creator_id;primaryKey"`
	DisplayName      string    `gorm:"column:display_name"`
	Email            string    `gorm:"column:email"`
	Phone            string    `gorm:"column:phone"`
	PhoneVerified    bool      `gorm:"column:phone_verified"`
	IdentityVerified bool      `gorm:"column:identity_verified"`
	AddressVerified  bool      `gorm:"column:address_verified"`
	Disabled         bool      `gorm:"column:disabled"`
	OnHold           bool      `gorm:"column:on_hold"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (profileModel) TableName() string {
	return "creator_profiles"
}

func profileModelFromEntity(item entities.CreatorProfile) profileModel {
	return profileModel{
		CreatorID:        strings.TrimSpace(item.CreatorID),
		DisplayName:      strings.TrimSpace(item.DisplayName),
		Email:            strings.TrimSpace(item.Email),
		Phone:            strings.TrimSpace(item.Phone),
		PhoneVerified:    item.PhoneVerified,
		IdentityVerified: item.IdentityVerified,
		AddressVerified:  item.AddressVerified,
		Disabled:         item.Disabled,
		OnHold:           item.OnHold,
		CreatedAt:        item.CreatedAt.UTC(),
		UpdatedAt:        item.UpdatedAt.UTC(),
	}
}

func (m profileModel) toEntity() entities.CreatorProfile {
	return entities.CreatorProfile{
		CreatorID:        m.CreatorID,
		DisplayName:      m.DisplayName,
		Email:            m.Email,
		Phone:            m.Phone,
		PhoneVerified:    m.PhoneVerified,
		IdentityVerified: m.IdentityVerified,
		AddressVerified:  m.AddressVerified,
		Disabled:         m.Disabled,
		OnHold:           m.OnHold,
		CreatedAt:        m.CreatedAt.UTC(),
		UpdatedAt:        m.UpdatedAt.UTC(),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
