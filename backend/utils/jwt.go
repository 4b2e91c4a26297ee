package utils

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"syllabus-tracker/backend/config"
	"syllabus-tracker/backend/models"
)

const tokenTTL = 72 * time.Hour

// GenerateJWTToken signs a token carrying the user identity and role.
func GenerateJWTToken(user models.User, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"uid":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ExtractUserFromToken reads the Authorization header, with or without the
// Bearer prefix, and returns the user the token was issued to.
func ExtractUserFromToken(c *fiber.Ctx, cfg *config.Config) (models.User, error) {
	tokenString := strings.TrimSpace(strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer "))
	if tokenString == "" {
		return models.User{}, fiber.NewError(fiber.StatusUnauthorized, "Missing authorization token")
	}
	return ParseJWTToken(tokenString, cfg)
}

// ParseJWTToken verifies tokenString and rebuilds the user it was issued to.
func ParseJWTToken(tokenString string, cfg *config.Config) (models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return models.User{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return models.User{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}

	uid, _ := claims["uid"].(string)
	role, _ := claims["role"].(string)
	if uid == "" || role == "" {
		return models.User{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid user in token")
	}
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)

	return models.User{ID: uid, Name: name, Email: email, Role: models.Role(role)}, nil
}
