package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations creates the blocks table and its discovery indexes.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	ddl := `
		CREATE TABLE IF NOT EXISTS blocks (
			id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			creator_id   TEXT NOT NULL,
			forked_from  UUID,
			title        TEXT NOT NULL,
			description  TEXT,
			tags         TEXT[] NOT NULL DEFAULT '{}',
			grid_size    INT NOT NULL,
			status       TEXT NOT NULL DEFAULT 'draft',
			published_at TIMESTAMPTZ,
			document     JSONB NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE INDEX IF NOT EXISTS idx_blocks_tags
			ON blocks USING GIN (tags);

		CREATE INDEX IF NOT EXISTS idx_blocks_status_published
			ON blocks (status, published_at DESC);
	`
	if _, err := pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("migrate blocks: %w", err)
	}
	return nil
}
