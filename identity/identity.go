// Package identity is the explicit session/identity service. It owns JWT
// issuing and parsing, exposes the current user and role for a request, and
// lets interested components subscribe to role changes. It is constructed
// once in main and passed to anything that needs identity; nothing in this
// package is a framework global.
package identity

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleSchool  Role = "school"
	RoleAdmin   Role = "admin"
)

// ParseRole converts a raw string to a Role, returning an error for unknown
// values.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	switch r {
	case RoleTeacher, RoleSchool, RoleAdmin:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// RoleChangeFunc is invoked after a user's role has been changed.
type RoleChangeFunc func(userID uuid.UUID, newRole Role)

type Service struct {
	secret   []byte
	tokenTTL time.Duration

	mu   sync.RWMutex
	subs []RoleChangeFunc
}

func New(secret string) *Service {
	return &Service{
		secret:   []byte(secret),
		tokenTTL: 72 * time.Hour,
	}
}

// Middleware returns the Fiber handler that rejects requests without a valid
// token and stores the parsed token in locals for CurrentUser/CurrentRole.
func (s *Service) Middleware() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: s.secret,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if err.Error() == "Missing or malformed JWT" {
				return c.Status(fiber.StatusBadRequest).
					JSON(fiber.Map{"status": "error", "message": "Missing or malformed JWT", "data": nil})
			}
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT", "data": nil})
		},
	})
}

// IssueToken signs a token carrying the user's id and role.
func (s *Service) IssueToken(userID uuid.UUID, role Role) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"role":    string(role),
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken validates a raw token string (used by the websocket handshake,
// which cannot go through the HTTP middleware).
func (s *Service) ParseToken(raw string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

func requestClaims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil, errors.New("no authenticated user on request")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("malformed token claims")
	}
	return claims, nil
}

// CurrentUser returns the authenticated user's id for the request.
func (s *Service) CurrentUser(c *fiber.Ctx) (uuid.UUID, error) {
	claims, err := requestClaims(c)
	if err != nil {
		return uuid.Nil, err
	}
	raw, _ := claims["user_id"].(string)
	return uuid.Parse(raw)
}

// CurrentRole returns the authenticated user's role for the request.
func (s *Service) CurrentRole(c *fiber.Ctx) (Role, error) {
	claims, err := requestClaims(c)
	if err != nil {
		return "", err
	}
	raw, _ := claims["role"].(string)
	return ParseRole(raw)
}

// OnRoleChange registers a callback fired whenever NotifyRoleChange is
// called (e.g. on admin promotion).
func (s *Service) OnRoleChange(fn RoleChangeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// NotifyRoleChange informs all subscribers of a role change. Callers invoke
// it after the new role has been persisted.
func (s *Service) NotifyRoleChange(userID uuid.UUID, newRole Role) {
	s.mu.RLock()
	subs := make([]RoleChangeFunc, len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(userID, newRole)
	}
}
