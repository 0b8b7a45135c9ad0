package registry

import (
	"maps"

	"github.com/quiltlab/patchboard/internal/geom"
	"github.com/quiltlab/patchboard/internal/palette"
	"github.com/quiltlab/patchboard/internal/unit"
)

// flyingGeeseDefinition spans two cells, tall or wide depending on its
// direction. Horizontal flips of a left/right goose are geometric; flips
// that leave the direction unchanged swap the two sky colors instead.
func flyingGeeseDefinition() *Definition {
	return &Definition{
		TypeID:       unit.TypeFlyingGeese,
		DisplayName:  "Flying Geese",
		Category:     "triangles",
		DefaultSpan:  unit.Span{Rows: 1, Cols: 2},
		SpanBehavior: SpanVariantDependent,
		SpanForVariant: func(direction string) unit.Span {
			return unit.GeeseSpan(direction)
		},
		Patches: []Patch{
			{ID: geom.PatchGoose, Name: "Goose", DefaultColorRole: palette.RoleFeature},
			{ID: geom.PatchSky1, Name: "Sky 1", DefaultColorRole: palette.RoleBackground},
			{ID: geom.PatchSky2, Name: "Sky 2", DefaultColorRole: palette.RoleBackground},
		},
		Variants:       []string{unit.DirectionUp, unit.DirectionDown, unit.DirectionLeft, unit.DirectionRight},
		DefaultVariant: unit.DirectionRight,
		GetTriangles: func(cfg Config, w, h float64) []geom.Triangle {
			return geom.FlyingGeeseTriangles(cfg.Variant, w, h)
		},
		RotateVariant: func(v string) string {
			// Clockwise: up→right→down→left→up.
			switch v {
			case unit.DirectionUp:
				return unit.DirectionRight
			case unit.DirectionRight:
				return unit.DirectionDown
			case unit.DirectionDown:
				return unit.DirectionLeft
			default:
				return unit.DirectionUp
			}
		},
		FlipHorizontalVariant: func(v string) string {
			switch v {
			case unit.DirectionLeft:
				return unit.DirectionRight
			case unit.DirectionRight:
				return unit.DirectionLeft
			default:
				return v
			}
		},
		FlipVerticalVariant: func(v string) string {
			switch v {
			case unit.DirectionUp:
				return unit.DirectionDown
			case unit.DirectionDown:
				return unit.DirectionUp
			default:
				return v
			}
		},
		// When a flip leaves the direction unchanged the two flanking
		// skies trade places; the bridge applies this only in that case.
		FlipHorizontalPatchRoles: swapSkies,
		FlipVerticalPatchRoles:   swapSkies,
		ValidatePlacement: func(pos unit.Position, gridSize int, isOccupied func(unit.Position) bool) PlacementResult {
			var free []unit.Position
			neighbors := []unit.Position{
				{Row: pos.Row - 1, Col: pos.Col},
				{Row: pos.Row + 1, Col: pos.Col},
				{Row: pos.Row, Col: pos.Col - 1},
				{Row: pos.Row, Col: pos.Col + 1},
			}
			for _, n := range neighbors {
				if n.Row < 0 || n.Col < 0 || n.Row >= gridSize || n.Col >= gridSize {
					continue
				}
				if isOccupied != nil && isOccupied(n) {
					continue
				}
				free = append(free, n)
			}
			if len(free) == 0 {
				return PlacementResult{Valid: false, Reason: "flying geese needs a free adjacent cell"}
			}
			return PlacementResult{Valid: true, ValidAdjacentCells: free}
		},
		ConfigSchema: map[string]string{
			"direction":        "variant",
			"patchFabricRoles": "role_map",
		},
		Thumbnail: Thumbnail{
			Variant: unit.DirectionRight,
			PatchRoles: map[string]string{
				geom.PatchGoose: palette.RoleFeature,
				geom.PatchSky1:  palette.RoleBackground,
				geom.PatchSky2:  palette.RoleBackground,
			},
		},
		PlacementMode:          PlacementTwoTap,
		SupportsBatchPlacement: false,
	}
}

func swapSkies(roles map[string]string) map[string]string {
	out := maps.Clone(roles)
	out[geom.PatchSky1], out[geom.PatchSky2] = roles[geom.PatchSky2], roles[geom.PatchSky1]
	return out
}
