package mail

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/edgeup/edgeup-api/internal/infra/queue"
)

var notificationTmpl = template.Must(template.New("notification").Parse(`New Contact Form Submission:

Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}
Institution: {{.Institution}}
Role: {{.Role}}
Message: {{.Message}}
`))

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendEnquiryNotification mails the submitted form to every recipient in a
// single SMTP session.
func (s *EmailSender) SendEnquiryNotification(ctx context.Context, payload queue.NotificationPayload) error {
	body, err := renderNotification(payload)
	if err != nil {
		return fmt.Errorf("render notification email: %w", err)
	}

	subject := fmt.Sprintf("New Contact Form Submission from %s", payload.Name)

	msgs := make([]*gomail.Message, 0, len(payload.Recipients))
	for _, recipient := range payload.Recipients {
		m := gomail.NewMessage()
		m.SetHeader("From", s.From)
		m.SetHeader("To", recipient)
		m.SetHeader("Subject", subject)
		m.SetBody("text/plain", body)
		msgs = append(msgs, m)
	}

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(msgs...); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

func renderNotification(payload queue.NotificationPayload) (string, error) {
	if payload.Phone == "" {
		payload.Phone = "Not provided"
	}

	var body bytes.Buffer
	if err := notificationTmpl.Execute(&body, payload); err != nil {
		return "", err
	}
	return body.String(), nil
}
