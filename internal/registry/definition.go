// Package registry is the catalog of unit definitions. Each geometric
// primitive self-describes its span, colorable patches, geometry, and
// transform behavior here, so the bridge and renderer never special-case
// a unit type. New primitives are added by registering a Definition, not
// by modifying downstream code.
package registry

import (
	"github.com/quiltlab/patchboard/internal/geom"
	"github.com/quiltlab/patchboard/internal/unit"
)

// Config is the generic per-unit state a definition operates on: an
// optional orientation variant plus a patch-ID→color-role map. The bridge
// translates typed unit records to and from this shape.
type Config struct {
	Variant    string            `json:"variant,omitempty"`
	PatchRoles map[string]string `json:"patchRoles"`
}

// SpanBehavior says whether a definition's span is constant or a function
// of its variant.
type SpanBehavior string

const (
	SpanFixed            SpanBehavior = "fixed"
	SpanVariantDependent SpanBehavior = "variant_dependent"
)

// PlacementMode selects the placement interaction for a unit type.
type PlacementMode string

const (
	PlacementSingleTap PlacementMode = "single_tap"
	PlacementTwoTap    PlacementMode = "two_tap"
)

// Patch declares one colorable region of a unit type.
type Patch struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	DefaultColorRole string `json:"defaultColorRole"`
}

// PlacementResult reports whether a unit may be placed at a position, and
// for two-tap units, which adjacent cells may complete the placement.
type PlacementResult struct {
	Valid              bool
	Reason             string
	ValidAdjacentCells []unit.Position
}

// Thumbnail describes how pickers preview a unit type: the variant to
// render and the roles to color it with.
type Thumbnail struct {
	Variant    string            `json:"variant,omitempty"`
	PatchRoles map[string]string `json:"patchRoles"`
}

// Definition is one entry in the registry: everything the engine needs to
// render, transform, validate, and persist a unit type.
//
// GetTriangles must tile the full w×h rectangle with no gaps or overlaps
// and keep every vertex inside [0,w]×[0,h].
//
// The transform fields are optional. Rotate/flip of the variant changes
// geometry; rotate/flip of the patch roles cycles colors instead, for
// shapes like the QST whose silhouette is rotation-symmetric. A type
// defining neither does not transform (the square).
type Definition struct {
	TypeID      string
	DisplayName string
	Category    string

	DefaultSpan  unit.Span
	SpanBehavior SpanBehavior
	// SpanForVariant is required when SpanBehavior is variant_dependent.
	SpanForVariant func(variant string) unit.Span

	Patches []Patch

	Variants       []string
	DefaultVariant string

	GetTriangles func(cfg Config, w, h float64) []geom.Triangle

	RotateVariant        func(variant string) string
	FlipHorizontalVariant func(variant string) string
	FlipVerticalVariant   func(variant string) string

	RotatePatchRoles         func(roles map[string]string) map[string]string
	FlipHorizontalPatchRoles func(roles map[string]string) map[string]string
	FlipVerticalPatchRoles   func(roles map[string]string) map[string]string

	// ValidatePlacement is optional; types with no special placement
	// needs leave it nil and any in-bounds free cell is acceptable.
	ValidatePlacement func(pos unit.Position, gridSize int, isOccupied func(unit.Position) bool) PlacementResult

	// ConfigSchema names the structural fields of the type's config for
	// the API catalog (field → kind).
	ConfigSchema map[string]string

	Thumbnail              Thumbnail
	PlacementMode          PlacementMode
	SupportsBatchPlacement bool
}

// Span returns the span for a variant, honoring the span behavior.
func (d *Definition) Span(variant string) unit.Span {
	if d.SpanBehavior == SpanVariantDependent && d.SpanForVariant != nil {
		return d.SpanForVariant(variant)
	}
	return d.DefaultSpan
}

// HasVariant reports whether v is one of the definition's variants.
func (d *Definition) HasVariant(v string) bool {
	for _, have := range d.Variants {
		if have == v {
			return true
		}
	}
	return false
}

// FirstPatch returns the first declared patch ID, the default target for
// color assignment when no patch is named.
func (d *Definition) FirstPatch() string {
	if len(d.Patches) == 0 {
		return ""
	}
	return d.Patches[0].ID
}
