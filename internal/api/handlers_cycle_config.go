package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclelens/internal/models"
	"github.com/terraincognita07/cyclelens/internal/services"
)

type cycleConfigPayload struct {
	LastPeriodDate      string `json:"last_period_date"`
	AverageCycleLength  int    `json:"average_cycle_length"`
	AveragePeriodLength int    `json:"average_period_length"`
}

func newCycleConfigPayload(config models.CycleConfig) cycleConfigPayload {
	return cycleConfigPayload{
		LastPeriodDate:      services.FormatDay(config.LastPeriodDate),
		AverageCycleLength:  config.AverageCycleLength,
		AveragePeriodLength: config.AveragePeriodLength,
	}
}

func (handler *Handler) GetCycleConfig(c *fiber.Ctx) error {
	config, err := handler.settings.LoadCycleConfig(c.UserContext())
	if err != nil {
		if errors.Is(err, models.ErrStoredDataCorrupted) {
			return apiError(c, fiber.StatusConflict, "stored data corrupted")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycle config")
	}
	if config == nil {
		return apiError(c, fiber.StatusNotFound, "cycle config not set")
	}
	return c.JSON(newCycleConfigPayload(*config))
}

func (handler *Handler) UpdateCycleConfig(c *fiber.Ctx) error {
	payload := cycleConfigPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	config, err := handler.settings.SaveCycleSettings(c.UserContext(), services.CycleSettingsInput{
		CycleLength:        payload.AverageCycleLength,
		PeriodLength:       payload.AveragePeriodLength,
		LastPeriodStartRaw: payload.LastPeriodDate,
	}, handler.today())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSettingsCycleLengthOutOfRange):
			return apiError(c, fiber.StatusBadRequest, "cycle length out of range")
		case errors.Is(err, services.ErrSettingsPeriodLengthOutOfRange):
			return apiError(c, fiber.StatusBadRequest, "period length out of range")
		case errors.Is(err, services.ErrSettingsPeriodLengthIncompatible):
			return apiError(c, fiber.StatusBadRequest, "period length incompatible with cycle length")
		case errors.Is(err, services.ErrSettingsCycleStartDateInvalid):
			return apiError(c, fiber.StatusBadRequest, "invalid last period date")
		default:
			handler.logger.Error().Err(err).Msg("save cycle config failed")
			return apiError(c, fiber.StatusInternalServerError, "failed to save cycle config")
		}
	}
	return c.JSON(newCycleConfigPayload(config))
}
