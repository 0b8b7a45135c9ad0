package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/quiltlab/patchboard/internal/block"
)

// ErrBlockNotFound is returned when a block lookup finds no matching row.
var ErrBlockNotFound = errors.New("block not found")

// CreateBlockRequest is what the caller provides to create a new draft.
type CreateBlockRequest struct {
	CreatorID   string
	ForkedFrom  *uuid.UUID
	Title       string
	Description *string
	GridSize    int
	Document    Document
}

// BlockStore is the persistence interface for block documents.
type BlockStore interface {
	// CreateBlock inserts a new draft block and returns it with its
	// assigned ID and timestamps.
	CreateBlock(ctx context.Context, req CreateBlockRequest) (*block.Block, error)

	// GetBlock returns a block by ID.
	GetBlock(ctx context.Context, id uuid.UUID) (*block.Block, error)

	// UpdateDocument replaces a block's units and preview palette.
	UpdateDocument(ctx context.Context, id uuid.UUID, doc Document) (*block.Block, error)

	// Publish marks a block published at the given time and stores its
	// discovery tags.
	Publish(ctx context.Context, id uuid.UUID, at time.Time, tags []string) (*block.Block, error)

	// DeleteBlock removes a block by ID.
	DeleteBlock(ctx context.Context, id uuid.UUID) error

	// ListByTag returns published blocks carrying a discovery tag,
	// newest first.
	ListByTag(ctx context.Context, tag string, limit int) ([]block.Block, error)
}
