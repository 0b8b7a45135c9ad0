package registry

import (
	"maps"

	"github.com/quiltlab/patchboard/internal/geom"
	"github.com/quiltlab/patchboard/internal/palette"
	"github.com/quiltlab/patchboard/internal/unit"
)

// qstDefinition is the quarter-square triangle. The silhouette is
// rotation-symmetric, so there is no variant: rotation and flips permute
// the four side colors instead of changing geometry.
func qstDefinition() *Definition {
	return &Definition{
		TypeID:       unit.TypeQST,
		DisplayName:  "Quarter-Square Triangle",
		Category:     "triangles",
		DefaultSpan:  unit.Span{Rows: 1, Cols: 1},
		SpanBehavior: SpanFixed,
		Patches: []Patch{
			{ID: geom.PatchTop, Name: "Top", DefaultColorRole: palette.RoleFeature},
			{ID: geom.PatchRight, Name: "Right", DefaultColorRole: palette.RoleBackground},
			{ID: geom.PatchBottom, Name: "Bottom", DefaultColorRole: palette.RoleAccent1},
			{ID: geom.PatchLeft, Name: "Left", DefaultColorRole: palette.RoleBackground},
		},
		GetTriangles: func(cfg Config, w, h float64) []geom.Triangle {
			return geom.QSTTriangles(w, h)
		},
		RotatePatchRoles: func(roles map[string]string) map[string]string {
			// Clockwise quarter turn of the four side colors.
			out := maps.Clone(roles)
			out[geom.PatchRight] = roles[geom.PatchTop]
			out[geom.PatchBottom] = roles[geom.PatchRight]
			out[geom.PatchLeft] = roles[geom.PatchBottom]
			out[geom.PatchTop] = roles[geom.PatchLeft]
			return out
		},
		FlipHorizontalPatchRoles: func(roles map[string]string) map[string]string {
			out := maps.Clone(roles)
			out[geom.PatchLeft], out[geom.PatchRight] = roles[geom.PatchRight], roles[geom.PatchLeft]
			return out
		},
		FlipVerticalPatchRoles: func(roles map[string]string) map[string]string {
			out := maps.Clone(roles)
			out[geom.PatchTop], out[geom.PatchBottom] = roles[geom.PatchBottom], roles[geom.PatchTop]
			return out
		},
		ConfigSchema: map[string]string{
			"patchFabricRoles": "role_map",
		},
		Thumbnail: Thumbnail{
			PatchRoles: map[string]string{
				geom.PatchTop:    palette.RoleFeature,
				geom.PatchRight:  palette.RoleBackground,
				geom.PatchBottom: palette.RoleAccent1,
				geom.PatchLeft:   palette.RoleBackground,
			},
		},
		PlacementMode:          PlacementSingleTap,
		SupportsBatchPlacement: true,
	}
}
