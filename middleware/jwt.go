package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"talyouth/config"
	"talyouth/database"
	"talyouth/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Token lifetimes. The remember flag on login stretches the session the way
// the original "remember me" checkbox did.
const (
	sessionLifetime  = 24 * time.Hour
	rememberLifetime = 30 * 24 * time.Hour
)

// GenerateJWT generates a session token for the user. Each token carries a
// unique jti so logout can revoke it individually.
func GenerateJWT(user *models.User, remember bool) (string, error) {
	lifetime := sessionLifetime
	if remember {
		lifetime = rememberLifetime
	}

	claims := jwt.MapClaims{
		"userId": user.ID,
		"name":   user.FullName(),
		"role":   user.Role.String(),
		"email":  user.Email,
		"jti":    uuid.NewString(),
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(lifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.SessionSecret)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware is a middleware to check for a valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	// Get the token from the Authorization header
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Missing or invalid Authorization header",
		})
	}

	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Invalid Authorization header format",
		})
	}

	// Extract the token part
	tokenString := authHeader[len("Bearer "):]

	// Parse and validate the token
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		jwtSecret := []byte(config.AppConfig.SessionSecret)
		return jwtSecret, nil
	})

	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Invalid or expired token",
		})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Invalid token payload",
		})
	}

	// Reject tokens revoked by logout. The lookup fails closed: if the
	// logout list cannot be read, the token is not trusted either.
	if jti, ok := claims["jti"].(string); ok {
		var revoked models.RevokedToken
		err := database.Database.Db.Where("jti = ?", jti).First(&revoked).Error
		if err == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Session has been logged out",
			})
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  false,
				"message": "Unable to verify session",
			})
		}
		c.Locals("jti", jti)
	}

	// Stash identity details for handlers
	userID := claims["userId"].(float64) // JWT claims are typically stored as float64
	c.Locals("userId", uint(userID))

	if roleStr, ok := claims["role"].(string); ok {
		role, _ := models.ParseRole(roleStr)
		c.Locals("role", role)
	}
	if email, ok := claims["email"].(string); ok {
		c.Locals("email", email)
	}
	if exp, ok := claims["exp"].(float64); ok {
		c.Locals("tokenExpiresAt", time.Unix(int64(exp), 0))
	}

	return c.Next()
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
