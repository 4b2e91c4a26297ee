package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"syllabus-tracker/backend/config"
	"syllabus-tracker/backend/models"
	"syllabus-tracker/backend/services"
	"syllabus-tracker/backend/utils"
)

type UserController struct {
	Auth *services.AuthService
	Cfg  *config.Config
}

func NewUserController(auth *services.AuthService, cfg *config.Config) *UserController {
	return &UserController{Auth: auth, Cfg: cfg}
}

// UpdateProfile godoc
// @Summary Update user profile
// @Description Merges name, email and avatar into the session user and reissues the token
// @Tags user
// @Accept json
// @Produce json
// @Param profile body models.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} utils.SuccessResponse{data=models.LoginResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [put]
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	var input models.UpdateProfileRequest
	if ok, err := parseAndValidate(c, &input); !ok {
		return err
	}

	current, err := uc.Auth.CurrentUser(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	if current != nil && current.ID != requestUser(c).ID {
		return utils.Forbidden(c, "Session belongs to another user")
	}

	user, err := uc.Auth.UpdateProfile(c.UserContext(), input)
	if errors.Is(err, services.ErrNoSession) {
		return utils.Unauthorized(c, "Session expired, please log in again")
	}
	if err != nil {
		return serviceError(c, err)
	}

	token, err := utils.GenerateJWTToken(*user, uc.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}
	return utils.OK(c, "Profile updated", models.LoginResponse{Token: token, User: *user})
}
