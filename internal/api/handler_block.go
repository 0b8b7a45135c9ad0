package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/quiltlab/patchboard/internal/block"
	"github.com/quiltlab/patchboard/internal/metrics"
	"github.com/quiltlab/patchboard/internal/registry"
	"github.com/quiltlab/patchboard/internal/storage"
	"github.com/quiltlab/patchboard/internal/unit"
)

// --- Huma Input/Output types ---

type CreateBlockBody struct {
	CreatorID   string          `json:"creator_id" doc:"Creator user ID" required:"true" minLength:"1"`
	Title       string          `json:"title" doc:"Block title" required:"true" minLength:"1"`
	Description *string         `json:"description,omitempty" doc:"Optional description; hashtags become discovery tags on publish"`
	GridSize    int             `json:"grid_size" doc:"Grid size (cells per side)" required:"true"`
	ForkedFrom  *uuid.UUID      `json:"forked_from,omitempty" doc:"Block this design was forked from"`
	Document    json.RawMessage `json:"document,omitempty" doc:"Design document (units and palette); empty starts a blank draft"`
}

type CreateBlockInput struct {
	Body CreateBlockBody
}

type BlockResponse struct {
	ID          uuid.UUID       `json:"id" doc:"Block ID"`
	CreatorID   string          `json:"creator_id" doc:"Creator user ID"`
	ForkedFrom  *uuid.UUID      `json:"forked_from,omitempty" doc:"Block this design was forked from"`
	Title       string          `json:"title" doc:"Block title"`
	Description *string         `json:"description,omitempty" doc:"Description"`
	Tags        []string        `json:"tags" doc:"Discovery tags (set on publish)"`
	GridSize    int             `json:"grid_size" doc:"Grid size (cells per side)"`
	Status      string          `json:"status" doc:"Lifecycle status" enum:"draft,published"`
	PublishedAt *time.Time      `json:"published_at,omitempty" doc:"Publish timestamp"`
	Document    json.RawMessage `json:"document" doc:"Design document (units and palette)"`
	CreatedAt   time.Time       `json:"created_at" doc:"Creation timestamp"`
	UpdatedAt   time.Time       `json:"updated_at" doc:"Last update timestamp"`
}

type CreateBlockOutput struct {
	Body BlockResponse
}

type GetBlockInput struct {
	BlockID string `path:"block_id" doc:"Block ID" format:"uuid"`
}

type GetBlockOutput struct {
	Body BlockResponse
}

type UpdateDocumentBody struct {
	Document json.RawMessage `json:"document" doc:"Replacement design document" required:"true"`
}

type UpdateDocumentInput struct {
	BlockID string `path:"block_id" doc:"Block ID" format:"uuid"`
	Body    UpdateDocumentBody
}

type UpdateDocumentOutput struct {
	Body BlockResponse
}

type PublishBlockInput struct {
	BlockID string `path:"block_id" doc:"Block ID" format:"uuid"`
}

type PublishBlockOutput struct {
	Body BlockResponse
}

type DeleteBlockInput struct {
	BlockID string `path:"block_id" doc:"Block ID" format:"uuid"`
}

type DeleteBlockOutput struct{}

type ListBlocksInput struct {
	Tag   string `query:"tag" doc:"Discovery tag to filter by" required:"true" minLength:"1"`
	Limit int    `query:"limit" doc:"Maximum number of blocks to return" required:"false"`
}

type ListBlocksOutput struct {
	Body []BlockResponse
}

// --- Handler ---

type BlockHandler struct {
	store     storage.BlockStore
	reg       *registry.Registry
	logger    *slog.Logger
	listLimit int
}

func NewBlockHandler(store storage.BlockStore, reg *registry.Registry, logger *slog.Logger, listLimit int) *BlockHandler {
	return &BlockHandler{store: store, reg: reg, logger: logger, listLimit: listLimit}
}

func registerBlockRoutes(api huma.API, h *BlockHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-block",
		Method:        http.MethodPost,
		Path:          "/v1/blocks",
		Summary:       "Create a draft block",
		Tags:          []string{"blocks"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateBlock)

	huma.Register(api, huma.Operation{
		OperationID: "get-block",
		Method:      http.MethodGet,
		Path:        "/v1/blocks/{block_id}",
		Summary:     "Get a block",
		Tags:        []string{"blocks"},
	}, h.GetBlock)

	huma.Register(api, huma.Operation{
		OperationID: "update-block-document",
		Method:      http.MethodPut,
		Path:        "/v1/blocks/{block_id}/document",
		Summary:     "Replace a block's design document",
		Tags:        []string{"blocks"},
	}, h.UpdateDocument)

	huma.Register(api, huma.Operation{
		OperationID: "publish-block",
		Method:      http.MethodPost,
		Path:        "/v1/blocks/{block_id}/publish",
		Summary:     "Publish a completed block",
		Tags:        []string{"blocks"},
	}, h.Publish)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-block",
		Method:        http.MethodDelete,
		Path:          "/v1/blocks/{block_id}",
		Summary:       "Delete a block",
		Tags:          []string{"blocks"},
		DefaultStatus: http.StatusNoContent,
	}, h.DeleteBlock)

	huma.Register(api, huma.Operation{
		OperationID: "list-blocks",
		Method:      http.MethodGet,
		Path:        "/v1/blocks",
		Summary:     "List published blocks by tag",
		Tags:        []string{"blocks"},
	}, h.ListBlocks)
}

func (h *BlockHandler) CreateBlock(ctx context.Context, input *CreateBlockInput) (*CreateBlockOutput, error) {
	if input.Body.GridSize < block.MinGridSize || input.Body.GridSize > block.MaxGridSize {
		return nil, huma.Error400BadRequest(
			fmt.Sprintf("grid_size must be between %d and %d", block.MinGridSize, block.MaxGridSize))
	}

	doc, err := h.parseDocument(input.Body.Document, input.Body.GridSize)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	b, err := h.store.CreateBlock(ctx, storage.CreateBlockRequest{
		CreatorID:   input.Body.CreatorID,
		ForkedFrom:  input.Body.ForkedFrom,
		Title:       input.Body.Title,
		Description: input.Body.Description,
		GridSize:    input.Body.GridSize,
		Document:    doc,
	})
	if err != nil {
		h.logger.Error("failed to create block", "creator_id", input.Body.CreatorID, "request_id", RequestIDFrom(ctx), "error", err)
		return nil, huma.Error500InternalServerError("failed to create block")
	}

	return &CreateBlockOutput{Body: blockToResponse(b)}, nil
}

func (h *BlockHandler) GetBlock(ctx context.Context, input *GetBlockInput) (*GetBlockOutput, error) {
	id, err := uuid.Parse(input.BlockID)
	if err != nil {
		return nil, huma.Error400BadRequest("invalid block_id")
	}

	b, err := h.store.GetBlock(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrBlockNotFound) {
			return nil, huma.Error404NotFound("block not found")
		}
		h.logger.Error("failed to get block", "block_id", id, "request_id", RequestIDFrom(ctx), "error", err)
		return nil, huma.Error500InternalServerError("failed to get block")
	}

	return &GetBlockOutput{Body: blockToResponse(b)}, nil
}

func (h *BlockHandler) UpdateDocument(ctx context.Context, input *UpdateDocumentInput) (*UpdateDocumentOutput, error) {
	id, err := uuid.Parse(input.BlockID)
	if err != nil {
		return nil, huma.Error400BadRequest("invalid block_id")
	}

	current, err := h.store.GetBlock(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrBlockNotFound) {
			return nil, huma.Error404NotFound("block not found")
		}
		h.logger.Error("failed to get block", "block_id", id, "request_id", RequestIDFrom(ctx), "error", err)
		return nil, huma.Error500InternalServerError("failed to get block")
	}

	doc, err := h.parseDocument(input.Body.Document, current.GridSize)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	b, err := h.store.UpdateDocument(ctx, id, doc)
	if err != nil {
		if errors.Is(err, storage.ErrBlockNotFound) {
			return nil, huma.Error404NotFound("block not found")
		}
		h.logger.Error("failed to update document", "block_id", id, "request_id", RequestIDFrom(ctx), "error", err)
		return nil, huma.Error500InternalServerError("failed to update document")
	}

	return &UpdateDocumentOutput{Body: blockToResponse(b)}, nil
}

func (h *BlockHandler) Publish(ctx context.Context, input *PublishBlockInput) (*PublishBlockOutput, error) {
	id, err := uuid.Parse(input.BlockID)
	if err != nil {
		return nil, huma.Error400BadRequest("invalid block_id")
	}

	b, err := h.store.GetBlock(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrBlockNotFound) {
			return nil, huma.Error404NotFound("block not found")
		}
		h.logger.Error("failed to get block", "block_id", id, "request_id", RequestIDFrom(ctx), "error", err)
		return nil, huma.Error500InternalServerError("failed to get block")
	}

	if check := block.ValidateForPublish(b.Units, b.GridSize); !check.Valid {
		return nil, huma.Error422UnprocessableEntity(check.Error)
	}

	var tags []string
	if b.Description != nil {
		tags = block.ExtractHashtags(*b.Description)
	}

	published, err := h.store.Publish(ctx, id, time.Now().UTC(), tags)
	if err != nil {
		if errors.Is(err, storage.ErrBlockNotFound) {
			return nil, huma.Error404NotFound("block not found")
		}
		h.logger.Error("failed to publish block", "block_id", id, "request_id", RequestIDFrom(ctx), "error", err)
		return nil, huma.Error500InternalServerError("failed to publish block")
	}

	metrics.BlocksPublished.Inc()
	return &PublishBlockOutput{Body: blockToResponse(published)}, nil
}

func (h *BlockHandler) DeleteBlock(ctx context.Context, input *DeleteBlockInput) (*DeleteBlockOutput, error) {
	id, err := uuid.Parse(input.BlockID)
	if err != nil {
		return nil, huma.Error400BadRequest("invalid block_id")
	}

	if err := h.store.DeleteBlock(ctx, id); err != nil {
		if errors.Is(err, storage.ErrBlockNotFound) {
			return nil, huma.Error404NotFound("block not found")
		}
		h.logger.Error("failed to delete block", "block_id", id, "request_id", RequestIDFrom(ctx), "error", err)
		return nil, huma.Error500InternalServerError("failed to delete block")
	}

	return &DeleteBlockOutput{}, nil
}

func (h *BlockHandler) ListBlocks(ctx context.Context, input *ListBlocksInput) (*ListBlocksOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > h.listLimit {
		limit = h.listLimit
	}

	blocks, err := h.store.ListByTag(ctx, input.Tag, limit)
	if err != nil {
		h.logger.Error("failed to list blocks", "tag", input.Tag, "request_id", RequestIDFrom(ctx), "error", err)
		return nil, huma.Error500InternalServerError("failed to list blocks")
	}

	resp := make([]BlockResponse, len(blocks))
	for i := range blocks {
		resp[i] = blockToResponse(&blocks[i])
	}
	return &ListBlocksOutput{Body: resp}, nil
}

// parseDocument decodes and validates an incoming design document. Empty
// input starts a blank document. Every unit must be a registered type and
// fit inside the grid.
func (h *BlockHandler) parseDocument(raw json.RawMessage, gridSize int) (storage.Document, error) {
	if len(raw) == 0 {
		return storage.Document{Version: storage.DocumentVersion}, nil
	}

	doc, err := storage.DecodeDocument(raw)
	if err != nil {
		return storage.Document{}, fmt.Errorf("invalid document: %w", err)
	}
	for _, u := range doc.Units {
		if !h.reg.Has(u.Type()) {
			return storage.Document{}, fmt.Errorf("invalid document: unknown unit type %q", u.Type())
		}
		if !unit.InBounds(u, gridSize) {
			pos := u.Position()
			return storage.Document{}, fmt.Errorf(
				"invalid document: unit at row %d col %d does not fit a %dx%d grid",
				pos.Row, pos.Col, gridSize, gridSize)
		}
	}
	return doc, nil
}

func blockToResponse(b *block.Block) BlockResponse {
	doc, err := storage.EncodeDocument(storage.Document{
		Version: storage.DocumentVersion,
		Units:   b.Units,
		Palette: b.Palette,
	})
	if err != nil {
		// Encoding a decoded document cannot fail; keep the response shape.
		doc = []byte(`{}`)
	}
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	return BlockResponse{
		ID:          b.ID,
		CreatorID:   b.CreatorID,
		ForkedFrom:  b.ForkedFrom,
		Title:       b.Title,
		Description: b.Description,
		Tags:        tags,
		GridSize:    b.GridSize,
		Status:      string(b.Status),
		PublishedAt: b.PublishedAt,
		Document:    doc,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
