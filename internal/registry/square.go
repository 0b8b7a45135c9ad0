package registry

import (
	"github.com/quiltlab/patchboard/internal/geom"
	"github.com/quiltlab/patchboard/internal/palette"
	"github.com/quiltlab/patchboard/internal/unit"
)

// squareDefinition is the solid one-patch square. It has no variants and
// no transforms: rotating or flipping a solid square changes nothing.
func squareDefinition() *Definition {
	return &Definition{
		TypeID:       unit.TypeSquare,
		DisplayName:  "Square",
		Category:     "basics",
		DefaultSpan:  unit.Span{Rows: 1, Cols: 1},
		SpanBehavior: SpanFixed,
		Patches: []Patch{
			{ID: geom.PatchFill, Name: "Fill", DefaultColorRole: palette.RoleFeature},
		},
		GetTriangles: func(cfg Config, w, h float64) []geom.Triangle {
			return geom.SquareTriangles(w, h)
		},
		ConfigSchema: map[string]string{
			"colorRole": "color_role",
		},
		Thumbnail: Thumbnail{
			PatchRoles: map[string]string{geom.PatchFill: palette.RoleFeature},
		},
		PlacementMode:          PlacementSingleTap,
		SupportsBatchPlacement: true,
	}
}
