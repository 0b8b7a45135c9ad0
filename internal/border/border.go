// Package border computes the nested frame geometry around a block grid.
// Borders are stored innermost first; geometry is computed outermost
// first by walking the reversed list and shrinking a working rectangle.
package border

import (
	"github.com/quiltlab/patchboard/internal/geom"
)

// MaxBorders bounds the number of rings on a document.
const MaxBorders = 4

// CornerStyle selects how a border ring treats its corners.
type CornerStyle string

const (
	CornerButted      CornerStyle = "butted"
	CornerMitered     CornerStyle = "mitered"
	CornerCornerstone CornerStyle = "cornerstone"
)

// Spec is one border ring. CornerstoneColorRole is only meaningful for
// the cornerstone style and falls back to ColorRole when unset.
type Spec struct {
	ID                   string      `json:"id"`
	WidthInches          float64     `json:"widthInches"`
	CornerStyle          CornerStyle `json:"cornerStyle"`
	ColorRole            string      `json:"colorRole"`
	CornerstoneColorRole string      `json:"cornerstoneColorRole,omitempty"`
}

// ShapeKind discriminates the emitted geometry.
type ShapeKind string

const (
	ShapeFill        ShapeKind = "fill"
	ShapeSeamLine    ShapeKind = "seam_line"
	ShapeOuterStroke ShapeKind = "outer_stroke"
)

// Shape is one emitted polygon, line, or stroke. Fills carry a resolved
// color; seam lines and the outer stroke do not.
type Shape struct {
	Kind   ShapeKind    `json:"kind"`
	Color  string       `json:"color,omitempty"`
	Points []geom.Point `json:"points"`
}

// Resolver maps a color role ID to a hex color.
type Resolver func(roleID string) string

// Render computes the frame geometry for the given borders around the
// grid rectangle. The borders slice is ordered innermost first; ppi
// converts border widths to pixels. For each ring the emitted fills
// exactly cover the annulus between its outer and inner rectangles,
// whatever the corner style. The final shape is an unfilled stroke of
// the outermost rectangle.
func Render(borders []Spec, grid geom.Rect, ppi float64, resolve Resolver) []Shape {
	if len(borders) == 0 {
		return nil
	}

	var total float64
	for _, b := range borders {
		total += b.WidthInches * ppi
	}

	outer := grid.Expand(total)
	outermost := outer

	var shapes []Shape
	for i := len(borders) - 1; i >= 0; i-- {
		b := borders[i]
		w := b.WidthInches * ppi
		inner := outer.Inset(w)

		switch b.CornerStyle {
		case CornerMitered:
			shapes = append(shapes, mitered(outer, inner, resolve(b.ColorRole))...)
		case CornerCornerstone:
			corner := b.CornerstoneColorRole
			if corner == "" {
				corner = b.ColorRole
			}
			shapes = append(shapes, cornerstone(outer, w, resolve(b.ColorRole), resolve(corner))...)
		default:
			shapes = append(shapes, butted(outer, w, resolve(b.ColorRole))...)
		}

		outer = inner
	}

	shapes = append(shapes, Shape{
		Kind: ShapeOuterStroke,
		Points: []geom.Point{
			{X: outermost.X, Y: outermost.Y},
			{X: outermost.X + outermost.W, Y: outermost.Y},
			{X: outermost.X + outermost.W, Y: outermost.Y + outermost.H},
			{X: outermost.X, Y: outermost.Y + outermost.H},
		},
	})
	return shapes
}

func quad(color string, a, b, c, d geom.Point) Shape {
	return Shape{Kind: ShapeFill, Color: color, Points: []geom.Point{a, b, c, d}}
}

func rectFill(color string, r geom.Rect) Shape {
	return quad(color,
		geom.Point{X: r.X, Y: r.Y},
		geom.Point{X: r.X + r.W, Y: r.Y},
		geom.Point{X: r.X + r.W, Y: r.Y + r.H},
		geom.Point{X: r.X, Y: r.Y + r.H},
	)
}

func seam(a, b geom.Point) Shape {
	return Shape{Kind: ShapeSeamLine, Points: []geom.Point{a, b}}
}

// butted: top and bottom strips span the full outer width; the side
// strips fill only the height between them. Seam guides mark the four
// strip joints.
func butted(outer geom.Rect, w float64, color string) []Shape {
	inner := outer.Inset(w)
	return []Shape{
		rectFill(color, geom.Rect{X: outer.X, Y: outer.Y, W: outer.W, H: w}),
		rectFill(color, geom.Rect{X: outer.X, Y: inner.Y + inner.H, W: outer.W, H: w}),
		rectFill(color, geom.Rect{X: outer.X, Y: inner.Y, W: w, H: inner.H}),
		rectFill(color, geom.Rect{X: inner.X + inner.W, Y: inner.Y, W: w, H: inner.H}),
		seam(geom.Point{X: outer.X, Y: inner.Y}, geom.Point{X: outer.X + outer.W, Y: inner.Y}),
		seam(geom.Point{X: outer.X, Y: inner.Y + inner.H}, geom.Point{X: outer.X + outer.W, Y: inner.Y + inner.H}),
		seam(geom.Point{X: inner.X, Y: inner.Y}, geom.Point{X: inner.X, Y: inner.Y + inner.H}),
		seam(geom.Point{X: inner.X + inner.W, Y: inner.Y}, geom.Point{X: inner.X + inner.W, Y: inner.Y + inner.H}),
	}
}

// mitered: four trapezoids, one per side, meeting on the classic 45°
// diagonal seams from each outer corner to its inner corner.
func mitered(outer, inner geom.Rect, color string) []Shape {
	onw := geom.Point{X: outer.X, Y: outer.Y}
	one := geom.Point{X: outer.X + outer.W, Y: outer.Y}
	ose := geom.Point{X: outer.X + outer.W, Y: outer.Y + outer.H}
	osw := geom.Point{X: outer.X, Y: outer.Y + outer.H}
	inw := geom.Point{X: inner.X, Y: inner.Y}
	ine := geom.Point{X: inner.X + inner.W, Y: inner.Y}
	ise := geom.Point{X: inner.X + inner.W, Y: inner.Y + inner.H}
	isw := geom.Point{X: inner.X, Y: inner.Y + inner.H}
	return []Shape{
		quad(color, onw, one, ine, inw),
		quad(color, one, ose, ise, ine),
		quad(color, ose, osw, isw, ise),
		quad(color, osw, onw, inw, isw),
		seam(onw, inw),
		seam(one, ine),
		seam(ose, ise),
		seam(osw, isw),
	}
}

// cornerstone: four w×w corner squares in the cornerstone color plus
// four strips between them in the border's main color.
func cornerstone(outer geom.Rect, w float64, color, cornerColor string) []Shape {
	inner := outer.Inset(w)
	return []Shape{
		rectFill(cornerColor, geom.Rect{X: outer.X, Y: outer.Y, W: w, H: w}),
		rectFill(cornerColor, geom.Rect{X: inner.X + inner.W, Y: outer.Y, W: w, H: w}),
		rectFill(cornerColor, geom.Rect{X: inner.X + inner.W, Y: inner.Y + inner.H, W: w, H: w}),
		rectFill(cornerColor, geom.Rect{X: outer.X, Y: inner.Y + inner.H, W: w, H: w}),
		rectFill(color, geom.Rect{X: inner.X, Y: outer.Y, W: inner.W, H: w}),
		rectFill(color, geom.Rect{X: inner.X, Y: inner.Y + inner.H, W: inner.W, H: w}),
		rectFill(color, geom.Rect{X: outer.X, Y: inner.Y, W: w, H: inner.H}),
		rectFill(color, geom.Rect{X: inner.X + inner.W, Y: inner.Y, W: w, H: inner.H}),
		seam(geom.Point{X: inner.X, Y: outer.Y}, geom.Point{X: inner.X, Y: outer.Y + w}),
		seam(geom.Point{X: inner.X + inner.W, Y: outer.Y}, geom.Point{X: inner.X + inner.W, Y: outer.Y + w}),
		seam(geom.Point{X: inner.X, Y: inner.Y + inner.H}, geom.Point{X: inner.X, Y: outer.Y + outer.H}),
		seam(geom.Point{X: inner.X + inner.W, Y: inner.Y + inner.H}, geom.Point{X: inner.X + inner.W, Y: outer.Y + outer.H}),
	}
}
