package bridge

import (
	"github.com/quiltlab/patchboard/internal/geom"
	"github.com/quiltlab/patchboard/internal/palette"
	"github.com/quiltlab/patchboard/internal/registry"
	"github.com/quiltlab/patchboard/internal/unit"
)

// ColoredTriangle is one renderable triangle with its resolved hex color.
type ColoredTriangle struct {
	geom.Triangle
	Color string `json:"color"`
}

// TrianglesWithColors computes a unit's triangles at cellSize pixels per
// grid cell and resolves each patch to a color: a per-instance override
// wins, then the palette, then the neutral fallback. A missing color
// never fails a render. Overrides are keyed by patch ID.
func (b *Bridge) TrianglesWithColors(u unit.Unit, cellSize float64, pal palette.Palette, overrides map[string]string) []ColoredTriangle {
	def, ok := b.reg.Get(u.Type())
	if !ok {
		return nil
	}

	span := u.Span()
	w := float64(span.Cols) * cellSize
	h := float64(span.Rows) * cellSize

	cfg := ToConfig(u)
	tris := def.GetTriangles(cfg, w, h)

	out := make([]ColoredTriangle, len(tris))
	for i, tr := range tris {
		out[i] = ColoredTriangle{Triangle: tr, Color: b.resolveColor(cfg, tr.Patch, pal, overrides)}
	}
	return out
}

func (b *Bridge) resolveColor(cfg registry.Config, patchID string, pal palette.Palette, overrides map[string]string) string {
	if c, ok := overrides[patchID]; ok && c != "" {
		return c
	}
	if c, ok := pal.ColorOf(cfg.PatchRoles[patchID]); ok {
		return c
	}
	return palette.FallbackColor
}
