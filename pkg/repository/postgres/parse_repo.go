package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"resume-parser/pkg/history"
)

// ParseRepository implements history.Repository backed by PostgreSQL.
// The full resume schema is kept as JSONB so clients can re-fetch
// results without re-running extraction.
type ParseRepository struct {
	pool *pgxpool.Pool
}

func NewParseRepository(pool *pgxpool.Pool) (*ParseRepository, error) {
	r := &ParseRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ParseRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS parses (
	id UUID PRIMARY KEY,
	owner_id UUID,
	filename TEXT NOT NULL,
	file_type TEXT NOT NULL,
	size_bytes BIGINT NOT NULL,
	model TEXT NOT NULL,
	result JSONB NOT NULL,
	warnings TEXT[] NOT NULL DEFAULT '{}',
	input_tokens INT NOT NULL DEFAULT 0,
	output_tokens INT NOT NULL DEFAULT 0,
	total_cost DOUBLE PRECISION NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS parses_owner_created_idx ON parses (owner_id, created_at DESC);
`)
	return err
}

func (r *ParseRepository) Save(ctx context.Context, rec history.Record) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if rec.Warnings == nil {
		rec.Warnings = []string{}
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO parses (id, owner_id, filename, file_type, size_bytes, model, result, warnings, input_tokens, output_tokens, total_cost, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`, rec.ID, rec.OwnerID, rec.Filename, rec.FileType, rec.SizeBytes, rec.Model,
		[]byte(rec.Result), rec.Warnings, rec.InputTokens, rec.OutputTokens, rec.TotalCost, rec.CreatedAt)
	return err
}

const recordColumns = `id, owner_id, filename, file_type, size_bytes, model, result, warnings, input_tokens, output_tokens, total_cost, created_at`

func (r *ParseRepository) Get(ctx context.Context, id uuid.UUID) (history.Record, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+recordColumns+` FROM parses WHERE id = $1`, id)
	return scanRecord(row)
}

func (r *ParseRepository) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (history.Record, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+recordColumns+` FROM parses WHERE id = $1 AND owner_id = $2`, id, ownerID)
	return scanRecord(row)
}

func (r *ParseRepository) ListAll(ctx context.Context, limit, offset int) ([]history.Record, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+recordColumns+` FROM parses
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, normalizeLimit(limit), offset)
	if err != nil {
		return nil, err
	}
	return collectRecords(rows)
}

func (r *ParseRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]history.Record, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+recordColumns+` FROM parses
WHERE owner_id = $3
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, normalizeLimit(limit), offset, ownerID)
	if err != nil {
		return nil, err
	}
	return collectRecords(rows)
}

func (r *ParseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM parses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return history.ErrNotFound
	}
	return nil
}

func (r *ParseRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM parses WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return history.ErrNotFound
	}
	return nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	return limit
}

func scanRecord(row pgx.Row) (history.Record, error) {
	var rec history.Record
	var result []byte
	var created time.Time
	err := row.Scan(&rec.ID, &rec.OwnerID, &rec.Filename, &rec.FileType, &rec.SizeBytes,
		&rec.Model, &result, &rec.Warnings, &rec.InputTokens, &rec.OutputTokens, &rec.TotalCost, &created)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return history.Record{}, history.ErrNotFound
		}
		return history.Record{}, err
	}
	rec.Result = result
	rec.CreatedAt = created.UTC()
	return rec, nil
}

func collectRecords(rows pgx.Rows) ([]history.Record, error) {
	defer rows.Close()
	var out []history.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
