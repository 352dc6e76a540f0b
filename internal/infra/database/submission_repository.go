package database

import (
	"context"
	"database/sql"

	"github.com/edgeup/edgeup-api/internal/entity"
)

type SubmissionRepository struct {
	DB *sql.DB
}

func NewSubmissionRepository(db *sql.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *entity.FormSubmission) error {
	query := `
		INSERT INTO form_submissions
			(id, name, email, phone, institution, message, role, status, is_read, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		s.ID,
		s.Name,
		s.Email,
		nullString(s.Phone),
		s.Institution,
		s.Message,
		string(s.Role),
		string(s.Status),
		s.IsRead,
		s.SubmittedAt,
	)

	return err
}

func (r *SubmissionRepository) List(ctx context.Context) ([]entity.FormSubmission, error) {
	query := `
		SELECT id, name, email, phone, institution, message, role, status,
		       is_read, submitted_at, notes, follow_up_date, assigned_to
		FROM form_submissions
		ORDER BY submitted_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.FormSubmission
	for rows.Next() {
		var s entity.FormSubmission
		var phone, notes, assignedTo sql.NullString
		var followUp sql.NullTime

		err := rows.Scan(
			&s.ID, &s.Name, &s.Email, &phone, &s.Institution, &s.Message,
			&s.Role, &s.Status, &s.IsRead, &s.SubmittedAt,
			&notes, &followUp, &assignedTo,
		)
		if err != nil {
			return nil, err
		}

		s.Phone = phone.String
		s.Notes = notes.String
		s.AssignedTo = assignedTo.String
		if followUp.Valid {
			t := followUp.Time
			s.FollowUpDate = &t
		}

		out = append(out, s)
	}

	return out, rows.Err()
}

func (r *SubmissionRepository) MarkRead(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE form_submissions SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *SubmissionRepository) UpdateStatus(ctx context.Context, id string, status entity.SubmissionStatus) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE form_submissions SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return err
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
