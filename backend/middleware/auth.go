package middleware

import (
	"syllabus-tracker/backend/config"
	"syllabus-tracker/backend/models"
	"syllabus-tracker/backend/utils"

	"github.com/gofiber/fiber/v2"
)

const userLocalsKey = "user"

// AuthMiddleware rejects requests without a valid token and stores the
// token's user for the handlers.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := utils.ExtractUserFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, err.Error())
		}
		c.Locals(userLocalsKey, user)
		return c.Next()
	}
}

// FacultyMiddleware must run after AuthMiddleware. Students can read the
// syllabus but not change it.
func FacultyMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return utils.Unauthorized(c, "Unauthorized")
		}
		if !user.IsFaculty() {
			return utils.Forbidden(c, "Faculty access required")
		}
		return c.Next()
	}
}

// CurrentUser returns the user AuthMiddleware stored on the request.
func CurrentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals(userLocalsKey).(models.User)
	return user, ok
}
