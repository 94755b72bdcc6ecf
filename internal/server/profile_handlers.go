package server

import (
	"devconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

type profileRequest struct {
	Bio      *string `json:"bio"`
	Location *string `json:"location"`
	Website  *string `json:"website"`
}

// GetMyProfile handles GET /api/profile/me
// @Summary Current user's profile
// @Tags profile
// @Produce json
// @Security TokenAuth
// @Success 200 {object} models.Profile
// @Failure 404 {object} models.ErrorResponse
// @Router /profile/me [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	profile, err := s.profileService.GetByUser(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// UpsertProfile handles POST /api/profile
// @Summary Create or update profile
// @Description Omitted or blank fields keep their stored value
// @Tags profile
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body object{bio=string,location=string,website=string} true "Profile fields"
// @Success 200 {object} models.Profile
// @Failure 400 {object} models.ErrorResponse
// @Router /profile [post]
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	var req profileRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	profile, err := s.profileService.Upsert(c.UserContext(), userID, models.ProfileFields{
		Bio:      req.Bio,
		Location: req.Location,
		Website:  req.Website,
	})
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// ListProfiles handles GET /api/profile
// @Summary List profiles
// @Tags profile
// @Produce json
// @Security TokenAuth
// @Success 200 {array} models.Profile
// @Router /profile [get]
func (s *Server) ListProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(profiles)
}

// GetProfileByUser handles GET /api/profile/user/:user_id
// @Summary Profile by user ID
// @Tags profile
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} models.Profile
// @Failure 404 {object} models.ErrorResponse
// @Router /profile/user/{user_id} [get]
func (s *Server) GetProfileByUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "user_id")
	if err != nil {
		return err
	}
	profile, err := s.profileService.GetByUser(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}
