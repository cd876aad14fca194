package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrWorkspaceNotFound is returned when a team id was never authorized.
	ErrWorkspaceNotFound = errors.New("workspace not found")

	// ErrDuplicateRecord is returned when a unique index rejects a record.
	ErrDuplicateRecord = errors.New("record already exists")
)

// MaxCompanies caps the company list of a workspace.
const MaxCompanies = 100

// CompanyLimitError rejects a company append that would exceed MaxCompanies.
// The stored list is left untouched when this is returned.
type CompanyLimitError struct {
	Remaining int
}

func (e *CompanyLimitError) Error() string {
	return fmt.Sprintf("company list is limited to %d entries, only %d slots remaining", MaxCompanies, e.Remaining)
}
