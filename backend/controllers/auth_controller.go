package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"syllabus-tracker/backend/config"
	"syllabus-tracker/backend/models"
	"syllabus-tracker/backend/services"
	"syllabus-tracker/backend/utils"
)

type AuthController struct {
	Auth     *services.AuthService
	Notifier *services.Notifier
	Cfg      *config.Config
}

func NewAuthController(auth *services.AuthService, notifier *services.Notifier, cfg *config.Config) *AuthController {
	return &AuthController{Auth: auth, Notifier: notifier, Cfg: cfg}
}

// [+] Login godoc
// @Summary User login
// @Description Checks the demo credentials after a simulated delay and returns a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} utils.SuccessResponse{data=models.LoginResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input models.LoginRequest
	if ok, err := parseAndValidate(c, &input); !ok {
		return err
	}

	user, err := ac.Auth.Login(c.UserContext(), input.Email, input.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		return utils.Unauthorized(c, err.Error())
	}
	if err != nil {
		return serviceError(c, err)
	}

	token, err := utils.GenerateJWTToken(*user, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	ac.Notifier.Push(models.NotificationSuccess, "Welcome!", "Logged in as "+user.Name)
	return utils.OK(c, "Login successful", models.LoginResponse{Token: token, User: *user})
}

// Logout godoc
// @Summary User logout
// @Description Clears the persisted session
// @Tags auth
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /auth/logout [post]
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if err := ac.Auth.Logout(c.UserContext()); err != nil {
		return serviceError(c, err)
	}
	ac.Notifier.Push(models.NotificationInfo, "Logged out", "You have been successfully logged out")
	return utils.OK(c, "Logged out", nil)
}

// Me godoc
// @Summary Current user
// @Description Returns the session user, falling back to the identity in the token
// @Tags auth
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=models.User}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /auth/me [get]
func (ac *AuthController) Me(c *fiber.Ctx) error {
	tokenUser := requestUser(c)

	current, err := ac.Auth.CurrentUser(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	if current != nil && current.ID == tokenUser.ID {
		return utils.Success(c, fiber.StatusOK, current)
	}
	return utils.Success(c, fiber.StatusOK, tokenUser)
}
