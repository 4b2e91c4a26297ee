package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syllabus-tracker/backend/config"
	"syllabus-tracker/backend/models"
	"syllabus-tracker/backend/utils"
)

func TestAuthAndFacultyMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}

	app := fiber.New()
	app.Get("/any", AuthMiddleware(cfg), func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return c.SendStatus(fiber.StatusTeapot)
		}
		return c.SendString(user.Name)
	})
	app.Get("/faculty", AuthMiddleware(cfg), FacultyMiddleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	facultyToken, err := utils.GenerateJWTToken(models.User{ID: "1", Name: "Dr. Sarah Johnson", Role: models.RoleFaculty}, cfg)
	require.NoError(t, err)
	studentToken, err := utils.GenerateJWTToken(models.User{ID: "2", Name: "John Smith", Role: models.RoleStudent}, cfg)
	require.NoError(t, err)

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{name: "no token", path: "/any", want: fiber.StatusUnauthorized},
		{name: "bad token", path: "/any", header: "Bearer nope", want: fiber.StatusUnauthorized},
		{name: "student reads", path: "/any", header: "Bearer " + studentToken, want: fiber.StatusOK},
		{name: "bare token", path: "/any", header: studentToken, want: fiber.StatusOK},
		{name: "student blocked", path: "/faculty", header: "Bearer " + studentToken, want: fiber.StatusForbidden},
		{name: "faculty allowed", path: "/faculty", header: "Bearer " + facultyToken, want: fiber.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestFacultyMiddlewareWithoutAuth(t *testing.T) {
	app := fiber.New()
	app.Get("/", FacultyMiddleware(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
