package usecase

import (
	"context"

	"github.com/edgeup/edgeup-api/internal/entity"
	"github.com/edgeup/edgeup-api/internal/infra/queue"
)

type QueueProducerInterface interface {
	PublishNotification(ctx context.Context, payload queue.NotificationPayload) error
}

// SettingsReaderInterface supplies the notification recipient list the admin
// area maintains. A nil reader or empty list falls back to the compiled-in
// recipients.
type SettingsReaderInterface interface {
	Get(ctx context.Context) (*entity.SiteSettings, error)
}
