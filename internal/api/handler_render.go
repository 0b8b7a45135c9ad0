package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/quiltlab/patchboard/internal/border"
	"github.com/quiltlab/patchboard/internal/bridge"
	"github.com/quiltlab/patchboard/internal/geom"
	"github.com/quiltlab/patchboard/internal/metrics"
	"github.com/quiltlab/patchboard/internal/palette"
	"github.com/quiltlab/patchboard/internal/storage"
)

// --- Huma Input/Output types ---

type RenderBody struct {
	CellSize float64 `json:"cell_size,omitempty" doc:"Pixel size of one grid cell; server default when omitted"`
	// PPI converts border widths (inches) to pixels. Defaults to the
	// cell size, which renders one grid cell as one inch.
	PPI     float64       `json:"ppi,omitempty" doc:"Pixels per inch for border widths"`
	Borders []border.Spec `json:"borders,omitempty" doc:"Border rings, innermost first" maxItems:"4"`
	// Overrides maps unit ID to patch ID to hex color, overriding the
	// palette for individual patches.
	Overrides map[string]map[string]string `json:"overrides,omitempty" doc:"Per-unit patch color overrides"`
}

type RenderBlockInput struct {
	BlockID string `path:"block_id" doc:"Block ID" format:"uuid"`
	Body    RenderBody
}

type RenderTriangle struct {
	UnitID uuid.UUID    `json:"unit_id" doc:"Unit this triangle belongs to"`
	Patch  string       `json:"patch" doc:"Patch ID within the unit"`
	Color  string       `json:"color" doc:"Resolved hex color"`
	Points []geom.Point `json:"points" doc:"Triangle vertices in canvas coordinates"`
}

type RenderResponse struct {
	Width     float64          `json:"width" doc:"Canvas width in pixels"`
	Height    float64          `json:"height" doc:"Canvas height in pixels"`
	Triangles []RenderTriangle `json:"triangles" doc:"Colored unit triangles"`
	Borders   []border.Shape   `json:"borders,omitempty" doc:"Border fills, seam guides, and outer stroke"`
}

type RenderBlockOutput struct {
	Body RenderResponse
}

// --- Handler ---

type RenderHandler struct {
	store           storage.BlockStore
	bridge          *bridge.Bridge
	logger          *slog.Logger
	defaultCellSize float64
}

func NewRenderHandler(store storage.BlockStore, br *bridge.Bridge, logger *slog.Logger, defaultCellSize float64) *RenderHandler {
	return &RenderHandler{store: store, bridge: br, logger: logger, defaultCellSize: defaultCellSize}
}

func registerRenderRoutes(api huma.API, h *RenderHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "render-block",
		Method:      http.MethodPost,
		Path:        "/v1/blocks/{block_id}/render",
		Summary:     "Render a block to colored geometry",
		Tags:        []string{"render"},
	}, h.RenderBlock)
}

func (h *RenderHandler) RenderBlock(ctx context.Context, input *RenderBlockInput) (*RenderBlockOutput, error) {
	id, err := uuid.Parse(input.BlockID)
	if err != nil {
		return nil, huma.Error400BadRequest("invalid block_id")
	}
	if len(input.Body.Borders) > border.MaxBorders {
		return nil, huma.Error400BadRequest("too many borders")
	}

	b, err := h.store.GetBlock(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrBlockNotFound) {
			return nil, huma.Error404NotFound("block not found")
		}
		metrics.RendersTotal.WithLabelValues("error").Inc()
		h.logger.Error("failed to get block for render", "block_id", id, "request_id", RequestIDFrom(ctx), "error", err)
		return nil, huma.Error500InternalServerError("failed to render block")
	}

	cellSize := input.Body.CellSize
	if cellSize <= 0 {
		cellSize = h.defaultCellSize
	}
	ppi := input.Body.PPI
	if ppi <= 0 {
		ppi = cellSize
	}

	// The grid is offset by the total border width so the outermost
	// border ring starts at the canvas origin.
	var borderWidth float64
	for _, ring := range input.Body.Borders {
		borderWidth += ring.WidthInches * ppi
	}
	gridSide := float64(b.GridSize) * cellSize

	var tris []RenderTriangle
	for _, u := range b.Units {
		pos := u.Position()
		dx := borderWidth + float64(pos.Col)*cellSize
		dy := borderWidth + float64(pos.Row)*cellSize

		for _, ct := range h.bridge.TrianglesWithColors(u, cellSize, b.Palette, input.Body.Overrides[u.UnitID().String()]) {
			pts := make([]geom.Point, len(ct.P))
			for i, p := range ct.P {
				pts[i] = geom.Point{X: p.X + dx, Y: p.Y + dy}
			}
			tris = append(tris, RenderTriangle{
				UnitID: u.UnitID(),
				Patch:  ct.Patch,
				Color:  ct.Color,
				Points: pts,
			})
		}
	}

	resolve := func(roleID string) string {
		if c, ok := b.Palette.ColorOf(roleID); ok {
			return c
		}
		return palette.FallbackColor
	}
	grid := geom.Rect{X: borderWidth, Y: borderWidth, W: gridSide, H: gridSide}
	shapes := border.Render(input.Body.Borders, grid, ppi, resolve)

	metrics.RendersTotal.WithLabelValues("ok").Inc()
	return &RenderBlockOutput{Body: RenderResponse{
		Width:     gridSide + 2*borderWidth,
		Height:    gridSide + 2*borderWidth,
		Triangles: tris,
		Borders:   shapes,
	}}, nil
}
