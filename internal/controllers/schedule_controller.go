package controllers

import (
	"github.com/mockdesk/mockdesk/internal/domain"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

// ScheduleController exposes read access to persisted schedule records.
type ScheduleController struct {
	schedules domain.ScheduleRepository
}

type ScheduleControllerDependencies struct {
	Schedules domain.ScheduleRepository
}

func NewScheduleController(deps ScheduleControllerDependencies) *ScheduleController {
	return &ScheduleController{schedules: deps.Schedules}
}

// ListByDate returns every record whose interviewDate equals the path
// parameter exactly.
func (c *ScheduleController) ListByDate(ctx fiber.Ctx) error {
	date := ctx.Params("date")

	records, err := c.schedules.FindByDate(ctx.RequestCtx(), date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("Failed to list schedules")
		return fiber.NewError(fiber.StatusInternalServerError, "Something went wrong")
	}

	return ctx.JSON(records)
}
