package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/quiltlab/patchboard/internal/palette"
	"github.com/quiltlab/patchboard/internal/unit"
)

func renderVia(t *testing.T, server http.Handler, blockID string, body map[string]any) (*httptest.ResponseRecorder, RenderResponse) {
	t.Helper()
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/v1/blocks/"+blockID+"/render", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	var resp RenderResponse
	if w.Code == http.StatusOK {
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return w, resp
}

func TestRenderBlock_Triangles(t *testing.T) {
	store := newMockBlockStore()
	server := setupTestServer(t, store)

	created := createBlockVia(t, server, map[string]any{
		"creator_id": "maker-1",
		"title":      "Flying South",
		"grid_size":  2,
		"document":   documentJSON(t, fullGrid()...),
	})

	w, resp := renderVia(t, server, created.ID.String(), map[string]any{"cell_size": 10})
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200\nbody: %s", w.Code, w.Body.String())
	}

	// One geese (3 triangles) and two squares (2 each).
	if len(resp.Triangles) != 7 {
		t.Errorf("triangles: got %d, want 7", len(resp.Triangles))
	}
	if resp.Width != 20 || resp.Height != 20 {
		t.Errorf("canvas: got %gx%g, want 20x20", resp.Width, resp.Height)
	}
	if len(resp.Borders) != 0 {
		t.Errorf("borders: got %d shapes, want 0", len(resp.Borders))
	}

	// Every vertex stays on the canvas.
	for _, tr := range resp.Triangles {
		for _, p := range tr.Points {
			if p.X < 0 || p.X > resp.Width || p.Y < 0 || p.Y > resp.Height {
				t.Errorf("vertex (%g,%g) outside canvas", p.X, p.Y)
			}
		}
	}

	// Square patches resolve through the palette.
	def := palette.Default()
	bg, _ := def.ColorOf(palette.RoleBackground)
	found := false
	for _, tr := range resp.Triangles {
		if tr.Color == bg {
			found = true
		}
	}
	if !found {
		t.Errorf("expected at least one triangle in the background color %s", bg)
	}
}

func TestRenderBlock_Overrides(t *testing.T) {
	store := newMockBlockStore()
	server := setupTestServer(t, store)

	sq := unit.NewSquare(unit.Position{Row: 0, Col: 0}, palette.RoleBackground)
	created := createBlockVia(t, server, map[string]any{
		"creator_id": "maker-1",
		"title":      "One Square",
		"grid_size":  2,
		"document":   documentJSON(t, sq),
	})

	w, resp := renderVia(t, server, created.ID.String(), map[string]any{
		"cell_size": 10,
		"overrides": map[string]any{
			sq.ID.String(): map[string]string{"fill": "#123456"},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d\nbody: %s", w.Code, w.Body.String())
	}
	for _, tr := range resp.Triangles {
		if tr.UnitID == sq.ID && tr.Color != "#123456" {
			t.Errorf("override not applied: got color %s", tr.Color)
		}
	}
}

func TestRenderBlock_WithBorders(t *testing.T) {
	store := newMockBlockStore()
	server := setupTestServer(t, store)

	created := createBlockVia(t, server, map[string]any{
		"creator_id": "maker-1",
		"title":      "Framed",
		"grid_size":  2,
		"document":   documentJSON(t, fullGrid()...),
	})

	w, resp := renderVia(t, server, created.ID.String(), map[string]any{
		"cell_size": 10,
		"ppi":       10,
		"borders": []map[string]any{
			{"id": "b1", "widthInches": 1, "cornerStyle": "butted", "colorRole": palette.RoleFeature},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d\nbody: %s", w.Code, w.Body.String())
	}

	// Grid 2x2 at 10px plus a 10px border on each side.
	if resp.Width != 40 || resp.Height != 40 {
		t.Errorf("canvas: got %gx%g, want 40x40", resp.Width, resp.Height)
	}
	if len(resp.Borders) == 0 {
		t.Fatal("expected border shapes")
	}

	// Unit triangles are shifted inside the frame.
	for _, tr := range resp.Triangles {
		for _, p := range tr.Points {
			if p.X < 10 || p.X > 30 || p.Y < 10 || p.Y > 30 {
				t.Errorf("vertex (%g,%g) outside the framed grid", p.X, p.Y)
			}
		}
	}
}

func TestRenderBlock_TooManyBorders(t *testing.T) {
	store := newMockBlockStore()
	server := setupTestServer(t, store)

	created := createBlockVia(t, server, map[string]any{
		"creator_id": "maker-1",
		"title":      "Over-framed",
		"grid_size":  2,
	})

	borders := make([]map[string]any, 5)
	for i := range borders {
		borders[i] = map[string]any{"id": "b", "widthInches": 1, "cornerStyle": "butted", "colorRole": palette.RoleFeature}
	}
	w, _ := renderVia(t, server, created.ID.String(), map[string]any{"borders": borders})
	if w.Code == http.StatusOK {
		t.Errorf("expected rejection of %d borders, got 200", len(borders))
	}
}

func TestRenderBlock_NotFound(t *testing.T) {
	store := newMockBlockStore()
	server := setupTestServer(t, store)

	w, _ := renderVia(t, server, uuid.NewString(), map[string]any{})
	if w.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", w.Code)
	}
}
