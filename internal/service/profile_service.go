package service

import (
	"context"
	"strings"

	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/validation"
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

func (s *ProfileService) GetByUser(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

func (s *ProfileService) List(ctx context.Context) ([]models.Profile, error) {
	return s.profileRepo.List(ctx)
}

// Upsert creates the user's profile or merges the provided fields into it.
// Blank values are treated as not provided.
func (s *ProfileService) Upsert(ctx context.Context, userID uint, fields models.ProfileFields) (*models.Profile, error) {
	fields = models.ProfileFields{
		Bio:      provided(fields.Bio),
		Location: provided(fields.Location),
		Website:  provided(fields.Website),
	}
	if errs := validation.ValidateProfile(fields); len(errs) > 0 {
		return nil, models.NewValidationError("Invalid profile", errs...)
	}
	return s.profileRepo.Upsert(ctx, userID, fields)
}

func provided(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
