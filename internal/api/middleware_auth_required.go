package api

import (
	"github.com/gofiber/fiber/v2"
)

const contextSubjectKey = "auth_subject"

// AuthRequired checks the bearer token on API routes. With no secret
// configured every request passes.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	if len(handler.secretKey) == 0 {
		return c.Next()
	}

	key := requestLimiterKey(c)
	now := handler.now()
	if handler.authLimiter.blocked(key, now) {
		return apiError(c, fiber.StatusTooManyRequests, "too many attempts")
	}

	raw, err := bearerToken(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		handler.authLimiter.fail(key, now)
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	claims, err := parseToken(handler.secretKey, raw, now)
	if err != nil {
		handler.authLimiter.fail(key, now)
		handler.logger.Debug().Str("ip", key).Msg("rejected bearer token")
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.authLimiter.reset(key)
	c.Locals(contextSubjectKey, claims.Subject)
	return c.Next()
}
