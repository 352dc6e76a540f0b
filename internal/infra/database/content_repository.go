package database

import (
	"context"
	"database/sql"
	"log"

	"github.com/edgeup/edgeup-api/internal/entity"
)

type ContentRepository struct {
	DB *sql.DB
}

func NewContentRepository(db *sql.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

// FetchAll loads the authored-block snapshot the resolver is built from.
// Rows with an unknown type or a payload that does not decode are skipped
// with a log line; one bad row must not take the whole page set down.
func (r *ContentRepository) FetchAll(ctx context.Context) ([]entity.ContentBlock, error) {
	query := `
		SELECT id, page_key, block_type, payload, order_index
		FROM content_blocks
		ORDER BY page_key, order_index
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.ContentBlock
	for rows.Next() {
		var b entity.ContentBlock
		var raw []byte

		if err := rows.Scan(&b.ID, &b.PageKey, &b.Type, &raw, &b.OrderIndex); err != nil {
			return nil, err
		}

		payload, err := entity.DecodePayload(b.Type, raw)
		if err != nil {
			log.Printf("[CONTENT] skipping block %s (%s/%s): %v", b.ID, b.PageKey, b.Type, err)
			continue
		}
		b.Payload = payload

		out = append(out, b)
	}

	return out, rows.Err()
}
