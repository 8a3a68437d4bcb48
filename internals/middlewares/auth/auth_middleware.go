package auth

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"schoolhub_backend/internals/configs"
	"schoolhub_backend/internals/constants"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

// AuthJWT verifies the bearer credential and hydrates the subject id and role
// locals. Any verification failure terminates the request before a handler
// runs.
func AuthJWT(cfg *configs.Config) fiber.Handler {
	if cfg.JWTSecret == "" {
		panic("AuthJWT: JWT secret must be configured")
	}

	return func(c *fiber.Ctx) error {
		raw := helper.GetRawAccessToken(c)
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing token")
		}

		claims := jwt.MapClaims{}
		tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid signing method")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !tok.Valid {
			log.Printf("[WARN] token rejected: %v", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: invalid token")
		}

		sub, ok := numClaim(claims, "sub")
		if !ok || sub == 0 {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: invalid subject")
		}

		role, _ := claims["role"].(string)
		if !knownRole(role) {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: unknown role")
		}

		c.Locals(helperAuth.LocSubjectID, sub)
		c.Locals(helperAuth.LocRole, role)
		if role == constants.RoleTeacher {
			c.Locals(helperAuth.LocStaffID, sub)
		}
		return c.Next()
	}
}

// NewClaims builds the standard access-token claims for a subject.
func NewClaims(subjectID uint, role string, ttl time.Duration) jwt.MapClaims {
	now := time.Now().UTC()
	return jwt.MapClaims{
		"sub":  float64(subjectID),
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
}

// SignToken issues an HMAC-signed access token.
func SignToken(cfg *configs.Config, subjectID uint, role string, ttl time.Duration) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, NewClaims(subjectID, role, ttl))
	return tok.SignedString([]byte(cfg.JWTSecret))
}

func numClaim(m jwt.MapClaims, key string) (uint, bool) {
	switch v := m[key].(type) {
	case float64:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	}
	return 0, false
}

func knownRole(role string) bool {
	for _, r := range constants.AllRoles {
		if role == r {
			return true
		}
	}
	return false
}
