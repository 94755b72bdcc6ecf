package repository

import (
	"context"
	"errors"

	"devconnect/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository defines persistence operations for profiles.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	Upsert(ctx context.Context, userID uint, fields models.ProfileFields) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Profile", userID)
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

// Upsert inserts the profile or, when one exists for userID, overwrites only
// the provided fields in the same statement.
func (r *profileRepository) Upsert(ctx context.Context, userID uint, fields models.ProfileFields) (*models.Profile, error) {
	profile := models.Profile{UserID: userID}
	var columns []string
	if fields.Bio != nil {
		profile.Bio = *fields.Bio
		columns = append(columns, "bio")
	}
	if fields.Location != nil {
		profile.Location = *fields.Location
		columns = append(columns, "location")
	}
	if fields.Website != nil {
		profile.Website = *fields.Website
		columns = append(columns, "website")
	}

	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}
	if len(columns) > 0 {
		onConflict.DoNothing = false
		onConflict.DoUpdates = clause.AssignmentColumns(append(columns, "updated_at"))
	}

	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(onConflict).
		Create(&profile).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	return r.GetByUserID(ctx, userID)
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	profiles := make([]models.Profile, 0)
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("id ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}
