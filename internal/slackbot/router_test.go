package slackbot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/mockdesk/mockdesk/internal/domain"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWorkspaces struct {
	workspace domain.Workspace
	getErr    error
}

func (f *fakeWorkspaces) UpsertOnAuth(ctx context.Context, teamID, name, accessToken string) error {
	return nil
}

func (f *fakeWorkspaces) AppendCompanies(ctx context.Context, teamID string, names []string) error {
	return nil
}

func (f *fakeWorkspaces) SetCalendar(ctx context.Context, teamID, calendarID string) error {
	return nil
}

func (f *fakeWorkspaces) Get(ctx context.Context, teamID string) (domain.Workspace, error) {
	if f.getErr != nil {
		return domain.Workspace{}, f.getErr
	}
	return f.workspace, nil
}

type fakeSchedules struct {
	created   []domain.ScheduleRecord
	createErr error
}

func (f *fakeSchedules) Create(ctx context.Context, record domain.ScheduleRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, record)
	return nil
}

func (f *fakeSchedules) FindByDate(ctx context.Context, date string) ([]domain.ScheduleRecord, error) {
	records := []domain.ScheduleRecord{}
	for _, record := range f.created {
		if record.InterviewDate == date {
			records = append(records, record)
		}
	}
	return records, nil
}

type fakeExperiences struct {
	created   []domain.ExperienceRecord
	createErr error
}

func (f *fakeExperiences) Create(ctx context.Context, record domain.ExperienceRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, record)
	return nil
}

type fakeSettings struct {
	lists map[string][]string
}

func (f *fakeSettings) Get(ctx context.Context, name string) (domain.GlobalSetting, error) {
	return domain.GlobalSetting{Name: name, ArrayValue: f.lists[name]}, nil
}

func (f *fakeSettings) Upsert(ctx context.Context, name string, listAdd []string, scalar string) error {
	return nil
}

type openedView struct {
	accessToken string
	triggerID   string
	view        slack.ModalViewRequest
}

type fakeOpener struct {
	opened  []openedView
	openErr error
}

func (f *fakeOpener) OpenView(ctx context.Context, accessToken, triggerID string, view slack.ModalViewRequest) error {
	if f.openErr != nil {
		return f.openErr
	}
	f.opened = append(f.opened, openedView{accessToken: accessToken, triggerID: triggerID, view: view})
	return nil
}

type pushedEvent struct {
	record     domain.ScheduleRecord
	calendarID string
}

type fakeMirror struct {
	pushed []pushedEvent
	failed bool
}

func (f *fakeMirror) PushAsync(record domain.ScheduleRecord, calendarID string) {
	if f.failed {
		// A failing push logs and drops the event; nothing reaches the caller.
		return
	}
	f.pushed = append(f.pushed, pushedEvent{record: record, calendarID: calendarID})
}

type routerFixture struct {
	router      *Router
	workspaces  *fakeWorkspaces
	schedules   *fakeSchedules
	experiences *fakeExperiences
	opener      *fakeOpener
	mirror      *fakeMirror
}

func newRouterFixture() *routerFixture {
	workspaces := &fakeWorkspaces{
		workspace: domain.Workspace{
			TeamID:      "T1",
			Name:        "Masai",
			AccessToken: "xoxb-test",
			Companies:   []string{"acme", "globex"},
			CalendarID:  "team-calendar@example.com",
		},
	}
	schedules := &fakeSchedules{}
	experiences := &fakeExperiences{}
	opener := &fakeOpener{}
	mirror := &fakeMirror{}

	router := NewRouter(RouterDependencies{
		Workspaces:  workspaces,
		Schedules:   schedules,
		Experiences: experiences,
		Settings: &fakeSettings{lists: map[string][]string{
			domain.SettingInterviewTypes: {"dsa", "system design"},
			domain.SettingCodingTopics:   {"arrays"},
			domain.SettingDSATopics:      {"graphs"},
		}},
		ModalOpener: opener,
		Mirror:      mirror,
	})

	return &routerFixture{
		router:      router,
		workspaces:  workspaces,
		schedules:   schedules,
		experiences: experiences,
		opener:      opener,
		mirror:      mirror,
	}
}

func shortcutPayload(callbackID string) string {
	return fmt.Sprintf(`{
		"type": "shortcut",
		"callback_id": %q,
		"trigger_id": "123.456.789",
		"team": {"id": "T1", "name": "Masai"},
		"user": {"id": "U1"}
	}`, callbackID)
}

func submissionPayload(t *testing.T, callback slack.InteractionCallback) string {
	t.Helper()

	// Interaction payloads arrive as raw JSON; build the fixture from the
	// pieces the router actually reads.
	payload := map[string]any{
		"type": string(callback.Type),
		"team": map[string]string{"id": callback.Team.ID},
		"user": map[string]string{"id": callback.User.ID},
		"view": map[string]any{
			"callback_id": callback.View.CallbackID,
			"state":       callback.View.State,
		},
	}

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return string(raw)
}

func TestRouter_ShortcutOpensScheduleForm(t *testing.T) {
	f := newRouterFixture()

	ack, err := f.router.HandleInteraction(context.Background(), shortcutPayload(CallbackInterviewSchedule))
	require.NoError(t, err)
	assert.False(t, ack.CloseView)

	require.Len(t, f.opener.opened, 1)
	opened := f.opener.opened[0]
	assert.Equal(t, "xoxb-test", opened.accessToken)
	assert.Equal(t, "123.456.789", opened.triggerID)
	assert.Equal(t, CallbackInterviewSchedule, opened.view.CallbackID)

	options := companyOptions(t, opened.view)
	require.Len(t, options, 2)
	assert.Equal(t, "acme", options[0].Value)
}

func TestRouter_ShortcutOpensExperienceForm(t *testing.T) {
	f := newRouterFixture()

	ack, err := f.router.HandleInteraction(context.Background(), shortcutPayload(CallbackInterviewExperience))
	require.NoError(t, err)
	assert.False(t, ack.CloseView)

	require.Len(t, f.opener.opened, 1)
	assert.Equal(t, CallbackInterviewExperience, f.opener.opened[0].view.CallbackID)
}

func TestRouter_ShortcutUnknownWorkspace(t *testing.T) {
	f := newRouterFixture()
	f.workspaces.getErr = domain.ErrWorkspaceNotFound

	ack, err := f.router.HandleInteraction(context.Background(), shortcutPayload(CallbackInterviewSchedule))
	require.NoError(t, err, "handler failures are logged, not surfaced")
	assert.False(t, ack.CloseView)
	assert.Empty(t, f.opener.opened)
}

func TestRouter_ScheduleSubmissionPersistsAndMirrors(t *testing.T) {
	f := newRouterFixture()

	ack, err := f.router.HandleInteraction(context.Background(), submissionPayload(t, scheduleSubmission()))
	require.NoError(t, err)
	assert.True(t, ack.CloseView)

	require.Len(t, f.schedules.created, 1)
	record := f.schedules.created[0]
	assert.Equal(t, "MS1023", record.StudentCode)
	assert.Equal(t, "acme", record.CompanyName)

	require.Len(t, f.mirror.pushed, 1)
	assert.Equal(t, "team-calendar@example.com", f.mirror.pushed[0].calendarID)
}

func TestRouter_ScheduleSubmissionMissingField(t *testing.T) {
	f := newRouterFixture()

	callback := scheduleSubmission()
	delete(callback.View.State.Values, blockCompany)

	ack, err := f.router.HandleInteraction(context.Background(), submissionPayload(t, callback))
	require.NoError(t, err)
	assert.True(t, ack.CloseView, "modal still closes on invalid submission")
	assert.Empty(t, f.schedules.created, "no partial record persisted")
	assert.Empty(t, f.mirror.pushed)
}

func TestRouter_ScheduleSubmissionDuplicate(t *testing.T) {
	f := newRouterFixture()
	f.schedules.createErr = fmt.Errorf("schedule: %w", domain.ErrDuplicateRecord)

	ack, err := f.router.HandleInteraction(context.Background(), submissionPayload(t, scheduleSubmission()))
	require.NoError(t, err)
	assert.True(t, ack.CloseView)
	assert.Empty(t, f.mirror.pushed, "rejected record must not reach the calendar")
}

func TestRouter_ScheduleSubmissionMirrorFailure(t *testing.T) {
	f := newRouterFixture()
	f.mirror.failed = true

	ack, err := f.router.HandleInteraction(context.Background(), submissionPayload(t, scheduleSubmission()))
	require.NoError(t, err)
	assert.True(t, ack.CloseView, "calendar failure never changes the acknowledgement")
	require.Len(t, f.schedules.created, 1)
}

func TestRouter_ExperienceSubmissionPersists(t *testing.T) {
	f := newRouterFixture()

	ack, err := f.router.HandleInteraction(context.Background(), submissionPayload(t, experienceSubmission()))
	require.NoError(t, err)
	assert.True(t, ack.CloseView)

	require.Len(t, f.experiences.created, 1)
	record := f.experiences.created[0]
	assert.Equal(t, "arrays, strings", record.CodingTopicsAsked)
	assert.Equal(t, "yes", record.MovedToNextRoundOrAnOffer)
	assert.Empty(t, f.mirror.pushed, "experience submissions are not mirrored")
}

func TestRouter_ExperienceSubmissionDuplicate(t *testing.T) {
	f := newRouterFixture()
	f.experiences.createErr = fmt.Errorf("experience: %w", domain.ErrDuplicateRecord)

	ack, err := f.router.HandleInteraction(context.Background(), submissionPayload(t, experienceSubmission()))
	require.NoError(t, err)
	assert.True(t, ack.CloseView)
	assert.Empty(t, f.experiences.created)
}

func TestRouter_UnknownViewSubmissionStillCloses(t *testing.T) {
	f := newRouterFixture()

	callback := scheduleSubmission()
	callback.View.CallbackID = "lecture_feedback"

	ack, err := f.router.HandleInteraction(context.Background(), submissionPayload(t, callback))
	require.NoError(t, err)
	assert.True(t, ack.CloseView)
	assert.Empty(t, f.schedules.created)
	assert.Empty(t, f.experiences.created)
}

func TestRouter_OtherInteractionTypeIsNoOp(t *testing.T) {
	f := newRouterFixture()

	ack, err := f.router.HandleInteraction(context.Background(), `{"type":"block_actions","team":{"id":"T1"}}`)
	require.NoError(t, err)
	assert.False(t, ack.CloseView)
	assert.Empty(t, f.opener.opened)
	assert.Empty(t, f.schedules.created)
}

func TestRouter_MalformedPayload(t *testing.T) {
	f := newRouterFixture()

	_, err := f.router.HandleInteraction(context.Background(), "{not json")
	require.Error(t, err)
}

func TestRouter_OpenViewFailureIsSwallowed(t *testing.T) {
	f := newRouterFixture()
	f.opener.openErr = errors.New("trigger_id expired")

	ack, err := f.router.HandleInteraction(context.Background(), shortcutPayload(CallbackInterviewSchedule))
	require.NoError(t, err)
	assert.False(t, ack.CloseView)
}
