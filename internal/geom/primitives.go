package geom

// Patch IDs shared between the geometry builders and the unit definitions
// that embed them.
const (
	PatchFill      = "fill"
	PatchPrimary   = "primary"
	PatchSecondary = "secondary"
	PatchGoose     = "goose"
	PatchSky1      = "sky1"
	PatchSky2      = "sky2"
	PatchTop       = "top"
	PatchRight     = "right"
	PatchBottom    = "bottom"
	PatchLeft      = "left"
)

// SquareTriangles splits the rectangle along one diagonal into two fill
// triangles. A solid square has a single colorable patch; two triangles
// are returned because the rendering surface draws triangles only.
func SquareTriangles(w, h float64) []Triangle {
	return []Triangle{
		tri(PatchFill, Point{0, 0}, Point{w, 0}, Point{w, h}),
		tri(PatchFill, Point{0, 0}, Point{w, h}, Point{0, h}),
	}
}

// HSTTriangles splits the rectangle along a diagonal into a primary and a
// secondary triangle. The corner argument names the corner the primary
// triangle occupies: "nw", "ne", "sw" or "se". The primary triangle has
// its right angle at that corner; the secondary fills the rest.
// An unknown corner falls back to "nw".
func HSTTriangles(corner string, w, h float64) []Triangle {
	nw, ne := Point{0, 0}, Point{w, 0}
	sw, se := Point{0, h}, Point{w, h}
	switch corner {
	case "ne":
		return []Triangle{
			tri(PatchPrimary, ne, nw, se),
			tri(PatchSecondary, nw, sw, se),
		}
	case "sw":
		return []Triangle{
			tri(PatchPrimary, sw, nw, se),
			tri(PatchSecondary, nw, ne, se),
		}
	case "se":
		return []Triangle{
			tri(PatchPrimary, se, ne, sw),
			tri(PatchSecondary, nw, ne, sw),
		}
	default: // nw
		return []Triangle{
			tri(PatchPrimary, nw, ne, sw),
			tri(PatchSecondary, ne, se, sw),
		}
	}
}

// FlyingGeeseTriangles returns the goose triangle pointing in the given
// direction plus the two flanking sky triangles. For "up" and "down" the
// rectangle is tall (2 rows × 1 col in grid terms) and sky1 is the left
// flank; for "left" and "right" it is wide and sky1 is the top flank.
// An unknown direction falls back to "right".
func FlyingGeeseTriangles(direction string, w, h float64) []Triangle {
	nw, ne := Point{0, 0}, Point{w, 0}
	sw, se := Point{0, h}, Point{w, h}
	switch direction {
	case "up":
		apex := Point{w / 2, 0}
		return []Triangle{
			tri(PatchGoose, sw, se, apex),
			tri(PatchSky1, nw, sw, apex),
			tri(PatchSky2, ne, se, apex),
		}
	case "down":
		apex := Point{w / 2, h}
		return []Triangle{
			tri(PatchGoose, nw, ne, apex),
			tri(PatchSky1, nw, sw, apex),
			tri(PatchSky2, ne, se, apex),
		}
	case "left":
		apex := Point{0, h / 2}
		return []Triangle{
			tri(PatchGoose, ne, se, apex),
			tri(PatchSky1, nw, ne, apex),
			tri(PatchSky2, sw, se, apex),
		}
	default: // right
		apex := Point{w, h / 2}
		return []Triangle{
			tri(PatchGoose, nw, sw, apex),
			tri(PatchSky1, nw, ne, apex),
			tri(PatchSky2, sw, se, apex),
		}
	}
}

// QSTTriangles returns the four quarter-square triangles meeting at the
// center of the rectangle, one per side patch.
func QSTTriangles(w, h float64) []Triangle {
	nw, ne := Point{0, 0}, Point{w, 0}
	sw, se := Point{0, h}, Point{w, h}
	center := Point{w / 2, h / 2}
	return []Triangle{
		tri(PatchTop, nw, ne, center),
		tri(PatchRight, ne, se, center),
		tri(PatchBottom, se, sw, center),
		tri(PatchLeft, sw, nw, center),
	}
}
