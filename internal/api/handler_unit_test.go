package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quiltlab/patchboard/internal/unit"
)

func TestListUnitTypes(t *testing.T) {
	server := setupTestServer(t, newMockBlockStore())

	req := httptest.NewRequest(http.MethodGet, "/v1/units", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200\nbody: %s", w.Code, w.Body.String())
	}

	var resp []UnitTypeResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp) != 4 {
		t.Fatalf("types: got %d, want 4", len(resp))
	}

	byID := make(map[string]UnitTypeResponse)
	for _, u := range resp {
		byID[u.TypeID] = u
	}

	sq, ok := byID[unit.TypeSquare]
	if !ok {
		t.Fatal("missing square type")
	}
	if sq.PlacementMode != "single_tap" {
		t.Errorf("square placement mode: got %q", sq.PlacementMode)
	}
	if len(sq.Patches) != 1 {
		t.Errorf("square patches: got %d, want 1", len(sq.Patches))
	}

	hst, ok := byID[unit.TypeHST]
	if !ok {
		t.Fatal("missing hst type")
	}
	if len(hst.Variants) != 4 {
		t.Errorf("hst variants: got %d, want 4", len(hst.Variants))
	}
	if hst.DefaultVariant == "" {
		t.Error("hst has no default variant")
	}

	geese, ok := byID[unit.TypeFlyingGeese]
	if !ok {
		t.Fatal("missing flying_geese type")
	}
	if geese.SpanBehavior != "variant_dependent" {
		t.Errorf("geese span behavior: got %q", geese.SpanBehavior)
	}
	if geese.PlacementMode != "two_tap" {
		t.Errorf("geese placement mode: got %q", geese.PlacementMode)
	}

	qst, ok := byID[unit.TypeQST]
	if !ok {
		t.Fatal("missing qst type")
	}
	if len(qst.Patches) != 4 {
		t.Errorf("qst patches: got %d, want 4", len(qst.Patches))
	}
	if len(qst.Variants) != 0 {
		t.Errorf("qst variants: got %d, want 0", len(qst.Variants))
	}
}
