package domain

import "context"

// WorkspaceRepository persists one record per installed Slack workspace.
type WorkspaceRepository interface {
	// UpsertOnAuth creates the workspace on first authorization or refreshes
	// only the access token on re-authorization. Safe to call repeatedly.
	UpsertOnAuth(ctx context.Context, teamID, name, accessToken string) error

	// AppendCompanies unions the normalized names into the company list.
	// Returns *CompanyLimitError, without mutating, if the union would exceed
	// MaxCompanies.
	AppendCompanies(ctx context.Context, teamID string, names []string) error

	// SetCalendar unconditionally overwrites the workspace calendar id.
	SetCalendar(ctx context.Context, teamID, calendarID string) error

	// Get returns ErrWorkspaceNotFound if the team was never authorized.
	Get(ctx context.Context, teamID string) (Workspace, error)
}

// ScheduleRepository stores immutable interview-schedule records.
type ScheduleRepository interface {
	// Create returns ErrDuplicateRecord when the uniqueness key
	// (studentCode, companyName, interviewDate, start, end) already exists.
	Create(ctx context.Context, record ScheduleRecord) error

	// FindByDate returns all records whose interviewDate equals date exactly.
	FindByDate(ctx context.Context, date string) ([]ScheduleRecord, error)
}

// ExperienceRepository stores immutable interview-feedback records.
type ExperienceRepository interface {
	// Create returns ErrDuplicateRecord when the uniqueness key
	// (studentCode, companyName, interviewRound) already exists.
	Create(ctx context.Context, record ExperienceRecord) error
}

// SettingRepository stores named global settings.
type SettingRepository interface {
	// Get returns a zero-valued setting (empty list, empty scalar) when the
	// name is absent.
	Get(ctx context.Context, name string) (GlobalSetting, error)

	// Upsert creates the setting if absent, otherwise unions listAdd into the
	// list and replaces the scalar.
	Upsert(ctx context.Context, name string, listAdd []string, scalar string) error
}
