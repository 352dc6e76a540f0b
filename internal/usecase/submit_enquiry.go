package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/edgeup/edgeup-api/internal/entity"
	"github.com/edgeup/edgeup-api/internal/infra/queue"
)

// SubmitEnquiryUseCase validates an inbound contact/demo form, persists it as
// a FormSubmission and queues a best-effort notification email.
type SubmitEnquiryUseCase struct {
	Repo              entity.SubmissionRepositoryInterface
	Settings          SettingsReaderInterface
	Queue             QueueProducerInterface
	DefaultRecipients []string

	// OnNotifyError observes notification publish failures (metrics hook).
	OnNotifyError func()
}

func NewSubmitEnquiryUseCase(
	repo entity.SubmissionRepositoryInterface,
	settings SettingsReaderInterface,
	producer QueueProducerInterface,
	defaultRecipients []string,
) *SubmitEnquiryUseCase {
	return &SubmitEnquiryUseCase{
		Repo:              repo,
		Settings:          settings,
		Queue:             producer,
		DefaultRecipients: defaultRecipients,
	}
}

func (uc *SubmitEnquiryUseCase) Execute(ctx context.Context, input SubmitEnquiryInput) (*SubmitEnquiryOutput, error) {
	if errs := ValidateEnquiryInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: "VALIDATION", Message: MsgMissingFields}
	}

	sub := entity.NewFormSubmission(
		strings.TrimSpace(input.Name),
		strings.TrimSpace(input.Email),
		strings.TrimSpace(input.Phone),
		strings.TrimSpace(input.Institution),
		strings.TrimSpace(input.Message),
		entity.EnquirerRole(strings.TrimSpace(input.Role)),
	)

	if err := uc.Repo.Create(ctx, sub); err != nil {
		log.Printf("[ENQUIRY] insert failed: %v", err)
		return nil, &TechnicalError{Code: "PERSIST", Message: MsgSubmitFailed}
	}

	// Notification is fire-and-forget: a publish failure must never fail the
	// submission the user just made.
	uc.notify(ctx, sub)

	return &SubmitEnquiryOutput{
		ID:          sub.ID,
		Status:      string(sub.Status),
		SubmittedAt: sub.SubmittedAt.Format(time.RFC3339),
	}, nil
}

func (uc *SubmitEnquiryUseCase) notify(ctx context.Context, sub *entity.FormSubmission) {
	if uc.Queue == nil {
		return
	}

	recipients := uc.DefaultRecipients
	if uc.Settings != nil {
		if s, err := uc.Settings.Get(ctx); err == nil && len(s.NotifyRecipients) > 0 {
			recipients = s.NotifyRecipients
		}
	}
	if len(recipients) == 0 {
		return
	}

	payload := queue.NotificationPayload{
		Name:        sub.Name,
		Email:       sub.Email,
		Phone:       sub.Phone,
		Institution: sub.Institution,
		Message:     sub.Message,
		Role:        string(sub.Role),
		Recipients:  recipients,
	}

	if err := uc.Queue.PublishNotification(ctx, payload); err != nil {
		log.Printf("[ENQUIRY] notification publish failed for %s: %v", sub.ID, err)
		if uc.OnNotifyError != nil {
			uc.OnNotifyError()
		}
	}
}
