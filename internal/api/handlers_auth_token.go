package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclelens/internal/security"
)

const passwordTokenSubject = "owner"

type tokenRequest struct {
	Password string `json:"password"`
}

type tokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// IssueAuthToken trades the configured password for a bearer token. It shares
// the failure budget of AuthRequired.
func (handler *Handler) IssueAuthToken(c *fiber.Ctx) error {
	if len(handler.secretKey) == 0 || handler.password == "" {
		return apiError(c, fiber.StatusNotFound, "password login disabled")
	}

	key := requestLimiterKey(c)
	now := handler.now()
	if handler.authLimiter.blocked(key, now) {
		return apiError(c, fiber.StatusTooManyRequests, "too many attempts")
	}

	var request tokenRequest
	if err := c.BodyParser(&request); err != nil || strings.TrimSpace(request.Password) == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if !security.CheckPassword(handler.password, request.Password) {
		handler.authLimiter.fail(key, now)
		handler.logger.Info().Str("ip", key).Msg("rejected password login")
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := IssueToken(handler.secretKey, passwordTokenSubject, DefaultTokenTTL, now)
	if err != nil {
		handler.logger.Error().Err(err).Msg("issue token failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to issue token")
	}
	handler.authLimiter.reset(key)
	return c.Status(fiber.StatusCreated).JSON(tokenResponse{
		Token:     token,
		ExpiresAt: now.Add(DefaultTokenTTL).UTC().Format(time.RFC3339),
	})
}
