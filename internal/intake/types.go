package intake

import "time"

// Status is the intake verdict for one practice.
type Status string

const (
	StatusAccepting    Status = "Accepting"
	StatusNotAccepting Status = "Not Accepting"
	StatusUnclear      Status = "Unclear"
)

// PracticeTarget is one clinic website to check, as configured for the run.
type PracticeTarget struct {
	Name string `mapstructure:"name" json:"name" validate:"required"`
	URL  string `mapstructure:"url" json:"url" validate:"required,url"`
}

// IntakeResult is the structured outcome for one practice. The agent service
// produces status/evidence/contact_email; practice, url and checked_at are
// pinned by the dispatcher after the response arrives.
type IntakeResult struct {
	Practice     string    `json:"practice" validate:"required"`
	URL          string    `json:"url" validate:"required,url"`
	Status       Status    `json:"status" validate:"required,oneof=Accepting 'Not Accepting' Unclear"`
	Evidence     string    `json:"evidence"`
	ContactEmail *string   `json:"contact_email" validate:"omitempty,email"`
	CheckedAt    time.Time `json:"checked_at" validate:"required"`
}
