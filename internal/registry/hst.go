package registry

import (
	"github.com/quiltlab/patchboard/internal/geom"
	"github.com/quiltlab/patchboard/internal/palette"
	"github.com/quiltlab/patchboard/internal/unit"
)

// hstDefinition is the half-square triangle. All four orientations share
// the same two patches; transforms change the variant, never the colors.
func hstDefinition() *Definition {
	return &Definition{
		TypeID:       unit.TypeHST,
		DisplayName:  "Half-Square Triangle",
		Category:     "triangles",
		DefaultSpan:  unit.Span{Rows: 1, Cols: 1},
		SpanBehavior: SpanFixed,
		Patches: []Patch{
			{ID: geom.PatchPrimary, Name: "Primary", DefaultColorRole: palette.RoleFeature},
			{ID: geom.PatchSecondary, Name: "Secondary", DefaultColorRole: palette.RoleBackground},
		},
		Variants:       []string{unit.VariantNW, unit.VariantNE, unit.VariantSW, unit.VariantSE},
		DefaultVariant: unit.VariantNW,
		GetTriangles: func(cfg Config, w, h float64) []geom.Triangle {
			return geom.HSTTriangles(cfg.Variant, w, h)
		},
		RotateVariant: func(v string) string {
			// Clockwise quarter turn: nw→ne→se→sw→nw.
			switch v {
			case unit.VariantNW:
				return unit.VariantNE
			case unit.VariantNE:
				return unit.VariantSE
			case unit.VariantSE:
				return unit.VariantSW
			default:
				return unit.VariantNW
			}
		},
		FlipHorizontalVariant: func(v string) string {
			switch v {
			case unit.VariantNW:
				return unit.VariantNE
			case unit.VariantNE:
				return unit.VariantNW
			case unit.VariantSW:
				return unit.VariantSE
			default:
				return unit.VariantSW
			}
		},
		FlipVerticalVariant: func(v string) string {
			switch v {
			case unit.VariantNW:
				return unit.VariantSW
			case unit.VariantSW:
				return unit.VariantNW
			case unit.VariantNE:
				return unit.VariantSE
			default:
				return unit.VariantNE
			}
		},
		ConfigSchema: map[string]string{
			"variant":            "variant",
			"colorRole":          "color_role",
			"secondaryColorRole": "color_role",
		},
		Thumbnail: Thumbnail{
			Variant: unit.VariantNW,
			PatchRoles: map[string]string{
				geom.PatchPrimary:   palette.RoleFeature,
				geom.PatchSecondary: palette.RoleBackground,
			},
		},
		PlacementMode:          PlacementSingleTap,
		SupportsBatchPlacement: true,
	}
}
