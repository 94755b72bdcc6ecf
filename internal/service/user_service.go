// Package service contains the business rules between handlers and repositories.
package service

import (
	"context"
	"strings"

	"devconnect/internal/auth"
	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/validation"
)

type UserService struct {
	userRepo repository.UserRepository
	hasher   *auth.Hasher
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

func NewUserService(userRepo repository.UserRepository, hasher *auth.Hasher) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account. The plaintext password is only ever hashed.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if errs := validation.ValidateRegistration(in.Name, in.Email, in.Password); len(errs) > 0 {
		return nil, models.NewValidationError("Invalid registration", errs...)
	}

	email := normalizeEmail(in.Email)
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Avatar:   auth.AvatarURL(email),
		Password: hash,
	}
	// A concurrent registration that wins the race surfaces here as ErrEmailTaken.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate answers ErrInvalidCredentials for an unknown email and for a
// wrong password alike.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if errs := validation.ValidateLogin(email, password); len(errs) > 0 {
		return nil, models.NewValidationError("Invalid login", errs...)
	}

	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.ErrInvalidCredentials
	}

	ok, err := s.hasher.Compare(user.Password, password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !ok {
		return nil, models.ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
