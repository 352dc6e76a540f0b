package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration loaded from environment
// variables. AMQP and SMTP are optional: without them submissions still
// persist, only the notification emails are skipped.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
	ServerPort  int    `env:"PORT" envDefault:"8080"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	AMQPURL string `env:"AMQP_URL"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM" envDefault:"no-reply@edgeup.in"`

	// Fallback recipient list when site settings carry none.
	NotifyRecipients []string `env:"NOTIFY_RECIPIENTS" envSeparator:"," envDefault:"info@edgeup.in"`
}

// Load reads .env (when present) and parses the environment.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address in :port format.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.ServerPort)
}

// QueueEnabled reports whether a RabbitMQ URL is configured.
func (c Config) QueueEnabled() bool {
	return c.AMQPURL != ""
}

// MailEnabled reports whether an SMTP host is configured.
func (c Config) MailEnabled() bool {
	return c.SMTPHost != ""
}
