package slackbot

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mockdesk/mockdesk/internal/domain"

	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
)

// ModalOpener posts a rendered view to Slack's views.open call.
type ModalOpener interface {
	OpenView(ctx context.Context, accessToken, triggerID string, view slack.ModalViewRequest) error
}

type slackModalOpener struct{}

// NewModalOpener returns the production opener backed by the Slack Web API.
func NewModalOpener() ModalOpener {
	return slackModalOpener{}
}

func (slackModalOpener) OpenView(ctx context.Context, accessToken, triggerID string, view slack.ModalViewRequest) error {
	client := slack.New(accessToken)
	if _, err := client.OpenViewContext(ctx, triggerID, view); err != nil {
		return fmt.Errorf("views.open failed: %w", err)
	}
	return nil
}

// ScheduleMirror is the best-effort calendar push for persisted schedules.
// Implementations must never block the caller or surface their errors.
type ScheduleMirror interface {
	PushAsync(record domain.ScheduleRecord, calendarID string)
}

// Acknowledgement is the body the interactive endpoint returns to Slack.
// CloseView means `{"response_action":"clear"}`, otherwise a plain `ok`.
type Acknowledgement struct {
	CloseView bool
}

// Router dispatches every interactive-endpoint payload: shortcuts open a
// rendered form, view submissions persist a record.
type Router struct {
	workspaces  domain.WorkspaceRepository
	schedules   domain.ScheduleRepository
	experiences domain.ExperienceRepository
	settings    domain.SettingRepository
	opener      ModalOpener
	mirror      ScheduleMirror
}

type RouterDependencies struct {
	Workspaces  domain.WorkspaceRepository
	Schedules   domain.ScheduleRepository
	Experiences domain.ExperienceRepository
	Settings    domain.SettingRepository
	ModalOpener ModalOpener
	Mirror      ScheduleMirror
}

func NewRouter(deps RouterDependencies) *Router {
	return &Router{
		workspaces:  deps.Workspaces,
		schedules:   deps.Schedules,
		experiences: deps.Experiences,
		settings:    deps.Settings,
		opener:      deps.ModalOpener,
		mirror:      deps.Mirror,
	}
}

// HandleInteraction consumes one raw payload. Branch failures are logged and
// swallowed so Slack always gets its acknowledgement; only an unparseable
// payload is an error.
func (r *Router) HandleInteraction(ctx context.Context, payload string) (Acknowledgement, error) {
	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(payload), &callback); err != nil {
		return Acknowledgement{}, fmt.Errorf("failed to parse interaction payload: %w", err)
	}

	switch callback.Type {
	case slack.InteractionTypeShortcut:
		if err := r.openForm(ctx, callback); err != nil {
			log.Error().Err(err).
				Str("team_id", callback.Team.ID).
				Str("callback_id", callback.CallbackID).
				Msg("Failed to open form")
		}
		return Acknowledgement{}, nil

	case slack.InteractionTypeViewSubmission:
		return r.handleSubmission(ctx, callback), nil

	default:
		return Acknowledgement{}, nil
	}
}

func (r *Router) openForm(ctx context.Context, callback slack.InteractionCallback) error {
	workspace, err := r.workspaces.Get(ctx, callback.Team.ID)
	if err != nil {
		return err
	}

	interviewTypes, err := r.settings.Get(ctx, domain.SettingInterviewTypes)
	if err != nil {
		return err
	}

	var view slack.ModalViewRequest

	switch callback.CallbackID {
	case CallbackInterviewSchedule:
		view = NewScheduleModal(workspace.Companies, interviewTypes.ArrayValue)

	case CallbackInterviewExperience:
		codingTopics, err := r.settings.Get(ctx, domain.SettingCodingTopics)
		if err != nil {
			return err
		}
		dsaTopics, err := r.settings.Get(ctx, domain.SettingDSATopics)
		if err != nil {
			return err
		}
		view = NewExperienceModal(workspace.Companies, interviewTypes.ArrayValue, codingTopics.ArrayValue, dsaTopics.ArrayValue)

	default:
		log.Warn().Str("callback_id", callback.CallbackID).Msg("Ignoring unknown shortcut")
		return nil
	}

	return r.opener.OpenView(ctx, workspace.AccessToken, callback.TriggerID, view)
}

// handleSubmission always closes the modal, even when nothing was persisted,
// so the originating client does not retry or hang.
func (r *Router) handleSubmission(ctx context.Context, callback slack.InteractionCallback) Acknowledgement {
	ack := Acknowledgement{CloseView: true}

	switch callback.View.CallbackID {
	case CallbackInterviewSchedule:
		record, err := extractSchedule(callback)
		if err != nil {
			log.Error().Err(err).Str("team_id", callback.Team.ID).Msg("Invalid schedule submission")
			return ack
		}

		if err := r.schedules.Create(ctx, record); err != nil {
			log.Error().Err(err).
				Str("student_code", record.StudentCode).
				Str("company", record.CompanyName).
				Msg("Failed to persist schedule")
			return ack
		}

		r.mirror.PushAsync(record, r.workspaceCalendarID(ctx, callback.Team.ID))
		return ack

	case CallbackInterviewExperience:
		record, err := extractExperience(callback)
		if err != nil {
			log.Error().Err(err).Str("team_id", callback.Team.ID).Msg("Invalid experience submission")
			return ack
		}

		if err := r.experiences.Create(ctx, record); err != nil {
			log.Error().Err(err).
				Str("student_code", record.StudentCode).
				Str("company", record.CompanyName).
				Msg("Failed to persist experience")
		}
		return ack

	default:
		log.Warn().Str("callback_id", callback.View.CallbackID).Msg("Unknown view submission, closing without persistence")
		return ack
	}
}

func (r *Router) workspaceCalendarID(ctx context.Context, teamID string) string {
	workspace, err := r.workspaces.Get(ctx, teamID)
	if err != nil {
		log.Warn().Err(err).Str("team_id", teamID).Msg("No workspace calendar, using default")
		return ""
	}
	return workspace.CalendarID
}
