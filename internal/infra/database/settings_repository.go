package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/edgeup/edgeup-api/internal/entity"
)

// SettingsRepository reads and writes the single-row site settings table.
type SettingsRepository struct {
	DB *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

func (r *SettingsRepository) Get(ctx context.Context) (*entity.SiteSettings, error) {
	query := `
		SELECT contact_email, contact_phone, contact_address,
		       notify_recipients, seo_title, seo_description, updated_at
		FROM site_settings
		WHERE id = 1
	`

	var s entity.SiteSettings
	var recipients pq.StringArray

	err := r.DB.QueryRowContext(ctx, query).Scan(
		&s.ContactInfo.Email,
		&s.ContactInfo.Phone,
		&s.ContactInfo.Address,
		&recipients,
		&s.SEOTitle,
		&s.SEODescription,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.NotifyRecipients = []string(recipients)
	return &s, nil
}

func (r *SettingsRepository) Update(ctx context.Context, s *entity.SiteSettings) error {
	query := `
		INSERT INTO site_settings
			(id, contact_email, contact_phone, contact_address,
			 notify_recipients, seo_title, seo_description, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id)
		DO UPDATE SET
			contact_email = EXCLUDED.contact_email,
			contact_phone = EXCLUDED.contact_phone,
			contact_address = EXCLUDED.contact_address,
			notify_recipients = EXCLUDED.notify_recipients,
			seo_title = EXCLUDED.seo_title,
			seo_description = EXCLUDED.seo_description,
			updated_at = EXCLUDED.updated_at
	`

	s.UpdatedAt = time.Now()

	_, err := r.DB.ExecContext(ctx, query,
		s.ContactInfo.Email,
		s.ContactInfo.Phone,
		s.ContactInfo.Address,
		pq.StringArray(s.NotifyRecipients),
		s.SEOTitle,
		s.SEODescription,
		s.UpdatedAt,
	)
	return err
}
