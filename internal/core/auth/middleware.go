package auth

import (
	"errors"
	"strings"

	"storefront-checkout/internal/core/logger"
	"storefront-checkout/internal/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	principalKey = "principal"
	// TokenCookie is the cookie the storefront UI stores the bearer token in.
	TokenCookie = "token"
)

// ErrorResponse is the body returned when authentication cannot be resolved.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// LoginRequired tells the UI to open the login prompt.
	LoginRequired bool `json:"login_required,omitempty"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// New returns a middleware that resolves the caller's token into a Principal.
// Requests without a token, or with a rejected one, continue as anonymous.
func New(provider ProfileProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			SetPrincipal(c, Principal{})
			return c.Next()
		}

		profile, err := provider.GetProfile(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, ErrInvalidToken) {
				SetPrincipal(c, Principal{})
				return c.Next()
			}

			rayID := server.RayID(c)
			logger.ForRequest(rayID).Error("Failed to resolve profile", zap.Error(err))
			return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
				Message: "could not verify session",
				RayID:   rayID,
			})
		}

		SetPrincipal(c, Principal{Token: token, Profile: profile})
		return c.Next()
	}
}

// SetPrincipal stores p on the request.
func SetPrincipal(c *fiber.Ctx, p Principal) {
	c.Locals(principalKey, p)
}

// FromCtx returns the Principal stored by the middleware, or an anonymous one.
func FromCtx(c *fiber.Ctx) Principal {
	if p, ok := c.Locals(principalKey).(Principal); ok {
		return p
	}
	return Principal{}
}

// LoginPrompt writes the 401 body that asks the UI to open its login prompt.
func LoginPrompt(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
		Message:       "Please log in to continue",
		LoginRequired: true,
		RayID:         server.RayID(c),
	})
}

func extractToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return c.Cookies(TokenCookie)
}
