package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/extract"
)

// ParseRow is one completed parse as persisted in history.
type ParseRow struct {
	ID        uuid.UUID         `json:"id"`
	Filename  string            `json:"filename"`
	Tier      string            `json:"tier"`
	Attempts  int               `json:"attempts"`
	Record    extract.JobRecord `json:"record"`
	CreatedAt time.Time         `json:"created_at"`
}

// ParseRepository records completed parses and lists recent history.
type ParseRepository interface {
	SaveParse(ctx context.Context, row ParseRow) error
	ListParses(ctx context.Context, limit int) ([]ParseRow, error)
}

type parseRepository struct {
	db *DB
}

func NewParseRepository(db *DB) ParseRepository {
	return &parseRepository{db: db}
}

func (r *parseRepository) SaveParse(ctx context.Context, row ParseRow) error {
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	recJSON, err := json.Marshal(row.Record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	const q = `INSERT INTO parses (id, filename, tier, attempts, record_json, created_at)
VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := r.db.Pool.ExecContext(ctx, q,
		row.ID.String(), row.Filename, row.Tier, row.Attempts, string(recJSON), row.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert parse: %w", err)
	}
	return nil
}

func (r *parseRepository) ListParses(ctx context.Context, limit int) ([]ParseRow, error) {
	if limit <= 0 {
		limit = 100
	}
	const q = `SELECT id, filename, tier, attempts, record_json, created_at
FROM parses ORDER BY created_at DESC LIMIT ?`
	rows, err := r.db.Pool.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list parses: %w", err)
	}
	defer rows.Close()

	var out []ParseRow
	for rows.Next() {
		var (
			row     ParseRow
			id      string
			recJSON string
		)
		if err := rows.Scan(&id, &row.Filename, &row.Tier, &row.Attempts, &recJSON, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan parse: %w", err)
		}
		row.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse id %q: %w", id, err)
		}
		if err := json.Unmarshal([]byte(recJSON), &row.Record); err != nil {
			return nil, fmt.Errorf("unmarshal record: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
