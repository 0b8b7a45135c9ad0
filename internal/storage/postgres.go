package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quiltlab/patchboard/internal/block"
)

const blockColumns = `id, creator_id, forked_from, title, description, tags,
	grid_size, status, published_at, document, created_at, updated_at`

// PostgresStore implements BlockStore on PostgreSQL. The document is
// stored as a JSONB column in the versioned storage shape; the codec in
// this package owns that shape.
type PostgresStore struct {
	pool         *pgxpool.Pool
	queryTimeout time.Duration
}

// NewPostgresStore creates a BlockStore backed by the pool. queryTimeout
// sets the per-query context deadline; zero means no timeout.
func NewPostgresStore(pool *pgxpool.Pool, queryTimeout time.Duration) *PostgresStore {
	return &PostgresStore{pool: pool, queryTimeout: queryTimeout}
}

// withTimeout derives a child context with the configured query timeout.
// If queryTimeout is zero, the parent context is returned unchanged.
func (s *PostgresStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout > 0 {
		return context.WithTimeout(ctx, s.queryTimeout)
	}
	return ctx, func() {}
}

func (s *PostgresStore) CreateBlock(ctx context.Context, req CreateBlockRequest) (*block.Block, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	doc, err := EncodeDocument(req.Document)
	if err != nil {
		return nil, fmt.Errorf("create block: %w", err)
	}

	row := s.pool.QueryRow(ctx, `
		INSERT INTO blocks (creator_id, forked_from, title, description, grid_size, document)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+blockColumns,
		req.CreatorID, req.ForkedFrom, req.Title, req.Description, req.GridSize, doc,
	)
	b, err := scanBlock(row)
	if err != nil {
		return nil, fmt.Errorf("create block: %w", err)
	}
	return b, nil
}

func (s *PostgresStore) GetBlock(ctx context.Context, id uuid.UUID) (*block.Block, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	row := s.pool.QueryRow(ctx, `SELECT `+blockColumns+` FROM blocks WHERE id = $1`, id)
	b, err := scanBlock(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBlockNotFound
		}
		return nil, fmt.Errorf("get block: %w", err)
	}
	return b, nil
}

func (s *PostgresStore) UpdateDocument(ctx context.Context, id uuid.UUID, doc Document) (*block.Block, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	data, err := EncodeDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("update document: %w", err)
	}

	row := s.pool.QueryRow(ctx, `
		UPDATE blocks SET document = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+blockColumns, id, data)
	b, err := scanBlock(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBlockNotFound
		}
		return nil, fmt.Errorf("update document: %w", err)
	}
	return b, nil
}

func (s *PostgresStore) Publish(ctx context.Context, id uuid.UUID, at time.Time, tags []string) (*block.Block, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if tags == nil {
		tags = []string{}
	}
	row := s.pool.QueryRow(ctx, `
		UPDATE blocks SET status = 'published', published_at = $2, tags = $3, updated_at = now()
		WHERE id = $1
		RETURNING `+blockColumns, id, at, tags)
	b, err := scanBlock(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBlockNotFound
		}
		return nil, fmt.Errorf("publish block: %w", err)
	}
	return b, nil
}

func (s *PostgresStore) DeleteBlock(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tag, err := s.pool.Exec(ctx, `DELETE FROM blocks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete block: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBlockNotFound
	}
	return nil
}

func (s *PostgresStore) ListByTag(ctx context.Context, tag string, limit int) ([]block.Block, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if limit <= 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx, `
		SELECT `+blockColumns+` FROM blocks
		WHERE status = 'published' AND $1 = ANY(tags)
		ORDER BY published_at DESC
		LIMIT $2`, tag, limit)
	if err != nil {
		return nil, fmt.Errorf("list by tag: %w", err)
	}
	defer rows.Close()

	var out []block.Block
	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("list by tag: %w", err)
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func scanBlock(row pgx.Row) (*block.Block, error) {
	var (
		b   block.Block
		doc []byte
	)
	err := row.Scan(&b.ID, &b.CreatorID, &b.ForkedFrom, &b.Title, &b.Description, &b.Tags,
		&b.GridSize, &b.Status, &b.PublishedAt, &doc, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}

	parsed, err := DecodeDocument(doc)
	if err != nil {
		return nil, err
	}
	b.Units = parsed.Units
	b.Palette = parsed.Palette
	return &b, nil
}
