package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mockdesk/mockdesk/internal/domain"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	gcalendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const pushTimeout = 30 * time.Second

// Reminder overrides attached to every mirrored event.
const (
	emailReminderMinutes = 24 * 60
	popupReminderMinutes = 10
)

type Config struct {
	ServiceAccountEmail string
	PrivateKey          string
	ImpersonateSubject  string
	DefaultCalendarID   string
	Timezone            string
}

// GoogleMirror pushes persisted schedule records onto a shared Google
// Calendar. Pushes are fire-and-forget: outcomes are logged, never returned.
type GoogleMirror struct {
	service           *gcalendar.Service
	defaultCalendarID string
	timezone          string
}

func NewGoogleMirror(ctx context.Context, cfg Config) (*GoogleMirror, error) {
	jwtConfig := &jwt.Config{
		Email: cfg.ServiceAccountEmail,
		// Private keys arrive through the environment with escaped newlines.
		PrivateKey: []byte(strings.ReplaceAll(cfg.PrivateKey, `\n`, "\n")),
		Subject:    cfg.ImpersonateSubject,
		Scopes:     []string{gcalendar.CalendarEventsScope},
		TokenURL:   google.JWTTokenURL,
	}

	service, err := gcalendar.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return &GoogleMirror{
		service:           service,
		defaultCalendarID: cfg.DefaultCalendarID,
		timezone:          cfg.Timezone,
	}, nil
}

// PushAsync inserts the event on its own goroutine with its own deadline, so
// the submission response that is already being prepared is never touched.
func (m *GoogleMirror) PushAsync(record domain.ScheduleRecord, calendarID string) {
	if calendarID == "" {
		calendarID = m.defaultCalendarID
	}
	if calendarID == "" {
		log.Warn().Str("student_code", record.StudentCode).Msg("No calendar configured, skipping event push")
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()

		event := buildEvent(record, m.timezone)

		if _, err := m.service.Events.Insert(calendarID, event).Context(ctx).Do(); err != nil {
			log.Error().Err(err).
				Str("calendar_id", calendarID).
				Str("student_code", record.StudentCode).
				Msg("Calendar push failed")
			return
		}

		log.Info().
			Str("calendar_id", calendarID).
			Str("student_code", record.StudentCode).
			Str("date", record.InterviewDate).
			Msg("Interview mirrored to calendar")
	}()
}

func buildEvent(record domain.ScheduleRecord, timezone string) *gcalendar.Event {
	return &gcalendar.Event{
		Summary: fmt.Sprintf("%s (%s) - %s", record.Name, record.StudentCode, domain.TitleCase(record.CompanyName)),
		Description: fmt.Sprintf("Round: %s\nType: %s",
			record.InterviewRound, strings.Join(record.InterviewType, ", ")),
		Start: &gcalendar.EventDateTime{
			DateTime: fmt.Sprintf("%sT%s:00", record.InterviewDate, record.InterviewStartTime),
			TimeZone: timezone,
		},
		End: &gcalendar.EventDateTime{
			DateTime: fmt.Sprintf("%sT%s:00", record.InterviewDate, record.InterviewEndTime),
			TimeZone: timezone,
		},
		Attendees: []*gcalendar.EventAttendee{
			{Email: record.Email},
		},
		Reminders: &gcalendar.EventReminders{
			UseDefault: false,
			Overrides: []*gcalendar.EventReminder{
				{Method: "email", Minutes: emailReminderMinutes},
				{Method: "popup", Minutes: popupReminderMinutes},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}
}

// DisabledMirror is used when no calendar credentials are configured.
type DisabledMirror struct{}

func (DisabledMirror) PushAsync(record domain.ScheduleRecord, calendarID string) {
	log.Debug().Str("student_code", record.StudentCode).Msg("Calendar mirror disabled, event not pushed")
}
