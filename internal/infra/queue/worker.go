package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationSender is the outbound side of the worker (SMTP in production).
type NotificationSender interface {
	SendEnquiryNotification(ctx context.Context, payload NotificationPayload) error
}

// Worker drains the notification queue. It is fully decoupled from the
// submission pipeline: a failed send dead-letters the job and nothing else.
type Worker struct {
	Channel *amqp.Channel
	Sender  NotificationSender

	// OnSendError observes delivery failures (metrics hook).
	OnSendError func()
}

func NewWorker(ch *amqp.Channel, sender NotificationSender) *Worker {
	return &Worker{
		Channel: ch,
		Sender:  sender,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack off, ack manually after the send
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("[WORKER] consume failed: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload NotificationPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[WORKER] malformed notification job: %s", err)
				// Poison message, reject without requeue.
				d.Nack(false, false)
				continue
			}

			if err := w.process(context.Background(), payload); err != nil {
				log.Printf("[WORKER] notification send failed for %s: %s", payload.Email, err)
				if w.OnSendError != nil {
					w.OnSendError()
				}
				d.Nack(false, false)
			} else {
				log.Printf("[WORKER] notification sent for enquiry from %s", payload.Name)
				d.Ack(false)
			}
		}
	}()

	log.Printf("[WORKER] waiting for notification jobs on %q", queueName)
	<-forever
}

func (w *Worker) process(ctx context.Context, payload NotificationPayload) error {
	if len(payload.Recipients) == 0 {
		// Nothing to deliver; ack and move on.
		return nil
	}
	return w.Sender.SendEnquiryNotification(ctx, payload)
}
