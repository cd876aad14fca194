package controllers

import (
	"github.com/mockdesk/mockdesk/internal/domain"
	"github.com/mockdesk/mockdesk/internal/slackbot"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

// SlackController handles the OAuth redirect and the interactive endpoint.
type SlackController struct {
	exchanger  slackbot.TokenExchanger
	workspaces domain.WorkspaceRepository
	router     *slackbot.Router
}

type SlackControllerDependencies struct {
	TokenExchanger slackbot.TokenExchanger
	Workspaces     domain.WorkspaceRepository
	Router         *slackbot.Router
}

func NewSlackController(deps SlackControllerDependencies) *SlackController {
	return &SlackController{
		exchanger:  deps.TokenExchanger,
		workspaces: deps.Workspaces,
		router:     deps.Router,
	}
}

// OAuthCallback exchanges the authorization code and upserts the workspace.
// The workspace is not touched when the exchange fails.
func (c *SlackController) OAuthCallback(ctx fiber.Ctx) error {
	code := ctx.Query("code")

	result, err := c.exchanger.ExchangeCode(ctx.RequestCtx(), code)
	if err != nil {
		log.Error().Err(err).Msg("OAuth token exchange failed")
		return fiber.NewError(fiber.StatusInternalServerError, "Something went wrong: "+err.Error())
	}

	if err := c.workspaces.UpsertOnAuth(ctx.RequestCtx(), result.TeamID, result.TeamName, result.AccessToken); err != nil {
		log.Error().Err(err).Str("team_id", result.TeamID).Msg("Failed to upsert workspace")
		return fiber.NewError(fiber.StatusInternalServerError, "Something went wrong: "+err.Error())
	}

	log.Info().Str("team_id", result.TeamID).Str("team_name", result.TeamName).Msg("Workspace authorized")
	return ctx.SendString("success")
}

// Interactive consumes one interaction payload per call. Slack sends the JSON
// in a form-encoded `payload` field.
func (c *SlackController) Interactive(ctx fiber.Ctx) error {
	payload := ctx.FormValue("payload")
	if payload == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing payload")
	}

	ack, err := c.router.HandleInteraction(ctx.RequestCtx(), payload)
	if err != nil {
		log.Error().Err(err).Msg("Failed to handle interaction")
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}

	if ack.CloseView {
		return ctx.JSON(fiber.Map{"response_action": "clear"})
	}
	return ctx.SendString("ok")
}
