package entity

import (
	"context"
	"time"
)

// Value Object: ContactInfo
type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// SiteSettings is the single-row site configuration edited by the admin area.
// NotifyRecipients drives who receives enquiry notification emails.
type SiteSettings struct {
	ContactInfo      ContactInfo `json:"contact_info"`
	NotifyRecipients []string    `json:"notify_recipients"`
	SEOTitle         string      `json:"seo_title"`
	SEODescription   string      `json:"seo_description"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

type SettingsRepositoryInterface interface {
	Get(ctx context.Context) (*SiteSettings, error)
	Update(ctx context.Context, s *SiteSettings) error
}
