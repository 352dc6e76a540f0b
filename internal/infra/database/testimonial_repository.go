package database

import (
	"context"
	"database/sql"

	"github.com/edgeup/edgeup-api/internal/entity"
)

type TestimonialRepository struct {
	DB *sql.DB
}

func NewTestimonialRepository(db *sql.DB) *TestimonialRepository {
	return &TestimonialRepository{DB: db}
}

func (r *TestimonialRepository) Create(ctx context.Context, t *entity.Testimonial) error {
	query := `
		INSERT INTO testimonials (id, quote, name, position, institution, avatar, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, query,
		t.ID, t.Quote, t.Name, t.Position, t.Institution, nullString(t.Avatar), t.CreatedAt)
	return err
}

func (r *TestimonialRepository) List(ctx context.Context) ([]entity.Testimonial, error) {
	query := `
		SELECT id, quote, name, position, institution, avatar, created_at
		FROM testimonials
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Testimonial
	for rows.Next() {
		var t entity.Testimonial
		var avatar sql.NullString
		if err := rows.Scan(&t.ID, &t.Quote, &t.Name, &t.Position, &t.Institution, &avatar, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.Avatar = avatar.String
		out = append(out, t)
	}

	return out, rows.Err()
}

func (r *TestimonialRepository) Update(ctx context.Context, t *entity.Testimonial) error {
	query := `
		UPDATE testimonials
		SET quote = $2, name = $3, position = $4, institution = $5, avatar = $6
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query,
		t.ID, t.Quote, t.Name, t.Position, t.Institution, nullString(t.Avatar))
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
