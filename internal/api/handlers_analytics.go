package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclelens/internal/services"
)

func (handler *Handler) GetAnalytics(c *fiber.Ctx) error {
	window, err := services.ParseWindow(c.Query("window"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid window")
	}

	now := handler.today()
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		now, err = parseDayParam(raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
	}

	report, err := handler.analytics.BuildReport(c.UserContext(), window, now)
	if err != nil {
		var recordErr *services.RecordError
		if errors.As(err, &recordErr) {
			handler.logger.Warn().Err(err).Msg("analytics rejected stored records")
			return apiError(c, fiber.StatusUnprocessableEntity, recordErr.Error())
		}
		handler.logger.Error().Err(err).Msg("build analytics report failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to build analytics")
	}
	return c.JSON(report)
}

func (handler *Handler) GetAnalyticsChanges(c *fiber.Ctx) error {
	var since int64
	if raw := strings.TrimSpace(c.Query("since")); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			return apiError(c, fiber.StatusBadRequest, "invalid since token")
		}
		since = parsed
	}

	changed, token, err := handler.analytics.HasChangedSince(c.UserContext(), services.ChangeToken(since))
	if err != nil {
		handler.logger.Error().Err(err).Msg("load store revision failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to load revision")
	}
	return c.JSON(fiber.Map{"changed": changed, "token": token})
}
