package controllers

import (
	"errors"

	"github.com/mockdesk/mockdesk/internal/domain"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

// AdminController handles the shared-secret administrative routes. The key
// check itself runs in middlewares.AdminKey before these handlers.
type AdminController struct {
	workspaces domain.WorkspaceRepository
	settings   domain.SettingRepository
}

type AdminControllerDependencies struct {
	Workspaces domain.WorkspaceRepository
	Settings   domain.SettingRepository
}

func NewAdminController(deps AdminControllerDependencies) *AdminController {
	return &AdminController{
		workspaces: deps.Workspaces,
		settings:   deps.Settings,
	}
}

type appendCompaniesRequest struct {
	Companies []string `json:"companies"`
	TeamID    string   `json:"teamId"`
}

func (c *AdminController) AppendCompanies(ctx fiber.Ctx) error {
	var req appendCompaniesRequest
	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	err := c.workspaces.AppendCompanies(ctx.RequestCtx(), req.TeamID, req.Companies)

	var limitErr *domain.CompanyLimitError
	switch {
	case errors.As(err, &limitErr):
		return fiber.NewError(fiber.StatusBadRequest, limitErr.Error())
	case errors.Is(err, domain.ErrWorkspaceNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Workspace not found")
	case err != nil:
		log.Error().Err(err).Str("team_id", req.TeamID).Msg("Failed to append companies")
		return fiber.NewError(fiber.StatusInternalServerError, "Something went wrong")
	}

	return ctx.SendString("Updated!")
}

type setCalendarRequest struct {
	CalendarID string `json:"calendarId"`
}

func (c *AdminController) SetCalendar(ctx fiber.Ctx) error {
	var req setCalendarRequest
	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	teamID := ctx.Params("teamId")

	err := c.workspaces.SetCalendar(ctx.RequestCtx(), teamID, req.CalendarID)
	switch {
	case errors.Is(err, domain.ErrWorkspaceNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Workspace not found")
	case err != nil:
		log.Error().Err(err).Str("team_id", teamID).Msg("Failed to set calendar")
		return fiber.NewError(fiber.StatusInternalServerError, "Something went wrong")
	}

	return ctx.SendString("Updated!")
}

type upsertGlobalDataRequest struct {
	ArrayValue  []string `json:"arrayValue"`
	StringValue string   `json:"stringValue"`
}

func (c *AdminController) UpsertGlobalData(ctx fiber.Ctx) error {
	var req upsertGlobalDataRequest
	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	name := ctx.Params("name")

	if err := c.settings.Upsert(ctx.RequestCtx(), name, req.ArrayValue, req.StringValue); err != nil {
		log.Error().Err(err).Str("name", name).Msg("Failed to upsert global setting")
		return fiber.NewError(fiber.StatusInternalServerError, "Something went wrong")
	}

	return ctx.SendString("Updated!")
}
