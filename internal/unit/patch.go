package unit

import (
	"maps"

	"github.com/quiltlab/patchboard/internal/geom"
)

// Patch is a partial update to a unit. Nil fields are untouched; Roles
// reassigns color roles by patch ID for only the patches listed. Patches
// come in prev/next pairs on update operations so every change has an
// exact inverse.
type Patch struct {
	Position *Position
	Variant  *string
	Roles    map[string]string
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.Position == nil && p.Variant == nil && len(p.Roles) == 0
}

// Merge returns a patch applying p then q. Later values win per field.
func (p Patch) Merge(q Patch) Patch {
	out := Patch{Position: p.Position, Variant: p.Variant}
	if q.Position != nil {
		out.Position = q.Position
	}
	if q.Variant != nil {
		out.Variant = q.Variant
	}
	if len(p.Roles) > 0 || len(q.Roles) > 0 {
		out.Roles = make(map[string]string, len(p.Roles)+len(q.Roles))
		maps.Copy(out.Roles, p.Roles)
		maps.Copy(out.Roles, q.Roles)
	}
	return out
}

// Apply returns a copy of u with the patch applied. Unknown patch IDs in
// Roles are ignored; the input unit is never mutated.
func Apply(u Unit, p Patch) Unit {
	return u.apply(p)
}

func (s Square) apply(p Patch) Unit {
	if p.Position != nil {
		s.Pos = *p.Position
	}
	if r, ok := p.Roles[geom.PatchFill]; ok {
		s.ColorRole = r
	}
	return s
}

func (h HST) apply(p Patch) Unit {
	if p.Position != nil {
		h.Pos = *p.Position
	}
	if p.Variant != nil {
		h.Variant = *p.Variant
	}
	if r, ok := p.Roles[geom.PatchPrimary]; ok {
		h.ColorRole = r
	}
	if r, ok := p.Roles[geom.PatchSecondary]; ok {
		h.SecondaryColorRole = r
	}
	return h
}

func (g FlyingGeese) apply(p Patch) Unit {
	if p.Position != nil {
		g.Pos = *p.Position
	}
	if p.Variant != nil {
		g.Direction = *p.Variant
	}
	if r, ok := p.Roles[geom.PatchGoose]; ok {
		g.Goose = r
	}
	if r, ok := p.Roles[geom.PatchSky1]; ok {
		g.Sky1 = r
	}
	if r, ok := p.Roles[geom.PatchSky2]; ok {
		g.Sky2 = r
	}
	return g
}

func (q QST) apply(p Patch) Unit {
	if p.Position != nil {
		q.Pos = *p.Position
	}
	if r, ok := p.Roles[geom.PatchTop]; ok {
		q.Top = r
	}
	if r, ok := p.Roles[geom.PatchRight]; ok {
		q.Right = r
	}
	if r, ok := p.Roles[geom.PatchBottom]; ok {
		q.Bottom = r
	}
	if r, ok := p.Roles[geom.PatchLeft]; ok {
		q.Left = r
	}
	return q
}

// StrPtr is a convenience for building Patch.Variant values.
func StrPtr(s string) *string { return &s }

// PosPtr is a convenience for building Patch.Position values.
func PosPtr(p Position) *Position { return &p }
