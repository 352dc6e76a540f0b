package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EnquirerRole classifies who is filling out the contact/demo form.
type EnquirerRole string

const (
	RoleIndividual  EnquirerRole = "individual"
	RoleInstitution EnquirerRole = "institution"
	RolePartner     EnquirerRole = "partner"
)

func (r EnquirerRole) Valid() bool {
	switch r {
	case RoleIndividual, RoleInstitution, RolePartner:
		return true
	}
	return false
}

// SubmissionStatus is the lead lifecycle. The pipeline only ever creates
// submissions as "new"; the later states are set by the admin area.
type SubmissionStatus string

const (
	StatusNew        SubmissionStatus = "new"
	StatusContacted  SubmissionStatus = "contacted"
	StatusInProgress SubmissionStatus = "in_progress"
	StatusClosed     SubmissionStatus = "closed"
)

func (s SubmissionStatus) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

type FormSubmission struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone,omitempty"`
	Institution string       `json:"institution"`
	Message     string       `json:"message"`
	Role        EnquirerRole `json:"role"`

	Status      SubmissionStatus `json:"status"`
	SubmittedAt time.Time        `json:"submitted_at"`
	IsRead      bool             `json:"is_read"`

	// Admin-side fields, never written by the submission pipeline.
	Notes        string     `json:"notes,omitempty"`
	FollowUpDate *time.Time `json:"follow_up_date,omitempty"`
	AssignedTo   string     `json:"assigned_to,omitempty"`
}

// Factory
func NewFormSubmission(name, email, phone, institution, message string, role EnquirerRole) *FormSubmission {
	return &FormSubmission{
		ID:          uuid.New().String(),
		Name:        name,
		Email:       email,
		Phone:       phone,
		Institution: institution,
		Message:     message,
		Role:        role,
		Status:      StatusNew,
		SubmittedAt: time.Now(),
		IsRead:      false,
	}
}

type SubmissionRepositoryInterface interface {
	Create(ctx context.Context, s *FormSubmission) error
	List(ctx context.Context) ([]FormSubmission, error)
	MarkRead(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status SubmissionStatus) error
}
