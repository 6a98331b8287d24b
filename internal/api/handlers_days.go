package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclelens/internal/models"
	"github.com/terraincognita07/cyclelens/internal/services"
)

type dayPayload struct {
	Flow     string   `json:"flow"`
	Mood     string   `json:"mood"`
	Symptoms []string `json:"symptoms"`
	Notes    string   `json:"notes"`
}

type dayResponse struct {
	Date     string   `json:"date"`
	Flow     string   `json:"flow"`
	Mood     string   `json:"mood"`
	Symptoms []string `json:"symptoms"`
	Notes    string   `json:"notes"`
}

func newDayResponse(entry models.DailyLog) dayResponse {
	symptoms := entry.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}
	return dayResponse{
		Date:     services.FormatDay(entry.Date),
		Flow:     entry.Flow,
		Mood:     entry.Mood,
		Symptoms: symptoms,
		Notes:    entry.Notes,
	}
}

func (handler *Handler) GetDays(c *fiber.Ctx) error {
	from, to, err := services.ParseDayRange(c.Query("from"), c.Query("to"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDayRangeFromInvalid):
			return apiError(c, fiber.StatusBadRequest, "invalid from date")
		case errors.Is(err, services.ErrDayRangeToInvalid):
			return apiError(c, fiber.StatusBadRequest, "invalid to date")
		default:
			return apiError(c, fiber.StatusBadRequest, "invalid range")
		}
	}

	logs, err := handler.days.FetchLogs(c.UserContext(), from, to)
	if err != nil {
		if errors.Is(err, models.ErrStoredDataCorrupted) {
			return apiError(c, fiber.StatusConflict, "stored data corrupted")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch logs")
	}

	response := make([]dayResponse, 0, len(logs))
	for _, entry := range logs {
		response = append(response, newDayResponse(entry))
	}
	return c.JSON(response)
}

func (handler *Handler) UpsertDay(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	if day.After(handler.today()) {
		return apiError(c, fiber.StatusBadRequest, "date is in the future")
	}

	payload := dayPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	entry, err := handler.days.UpsertDayEntry(c.UserContext(), day, services.DayEntryInput{
		Flow:     payload.Flow,
		Mood:     payload.Mood,
		Symptoms: payload.Symptoms,
		Notes:    payload.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDayFlow):
			return apiError(c, fiber.StatusBadRequest, "invalid flow value")
		case errors.Is(err, services.ErrInvalidDaySymptom):
			return apiError(c, fiber.StatusBadRequest, "invalid symptoms")
		case errors.Is(err, services.ErrSyncLastPeriodFailed):
			return apiError(c, fiber.StatusInternalServerError, "failed to sync last period date")
		default:
			handler.logger.Error().Err(err).Str("date", services.FormatDay(day)).Msg("save day failed")
			return apiError(c, fiber.StatusInternalServerError, "failed to save day")
		}
	}
	return c.JSON(newDayResponse(entry))
}

func (handler *Handler) DeleteDay(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	deleted, err := handler.days.DeleteDay(c.UserContext(), day)
	if err != nil {
		handler.logger.Error().Err(err).Str("date", services.FormatDay(day)).Msg("delete day failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to delete day")
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "day not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
