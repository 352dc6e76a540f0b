package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Testimonial is a standalone quote managed by the admin area, independent of
// the testimonials content block a page may carry.
type Testimonial struct {
	ID          string    `json:"id"`
	Quote       string    `json:"quote"`
	Name        string    `json:"name"`
	Position    string    `json:"position"`
	Institution string    `json:"institution"`
	Avatar      string    `json:"avatar,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewTestimonial(quote, name, position, institution, avatar string) *Testimonial {
	return &Testimonial{
		ID:          uuid.New().String(),
		Quote:       quote,
		Name:        name,
		Position:    position,
		Institution: institution,
		Avatar:      avatar,
		CreatedAt:   time.Now(),
	}
}

type TestimonialRepositoryInterface interface {
	Create(ctx context.Context, t *Testimonial) error
	List(ctx context.Context) ([]Testimonial, error)
	Update(ctx context.Context, t *Testimonial) error
	Delete(ctx context.Context, id string) error
}
