// Package bridge translates between typed unit records and the registry's
// generic variant/patch-role representation. It is the single place that
// knows which struct field backs which patch; no other code may hardcode
// per-type field access.
package bridge

import (
	"github.com/quiltlab/patchboard/internal/geom"
	"github.com/quiltlab/patchboard/internal/registry"
	"github.com/quiltlab/patchboard/internal/unit"
)

// Bridge resolves unit definitions from a registry and produces the
// prev/next patch pairs the operation log records.
type Bridge struct {
	reg *registry.Registry
}

func New(reg *registry.Registry) *Bridge {
	return &Bridge{reg: reg}
}

// ToConfig converts a typed unit to generic config. The switch is
// exhaustive over the closed Unit sum type.
func ToConfig(u unit.Unit) registry.Config {
	switch v := u.(type) {
	case unit.Square:
		return registry.Config{PatchRoles: map[string]string{
			geom.PatchFill: v.ColorRole,
		}}
	case unit.HST:
		return registry.Config{Variant: v.Variant, PatchRoles: map[string]string{
			geom.PatchPrimary:   v.ColorRole,
			geom.PatchSecondary: v.SecondaryColorRole,
		}}
	case unit.FlyingGeese:
		return registry.Config{Variant: v.Direction, PatchRoles: map[string]string{
			geom.PatchGoose: v.Goose,
			geom.PatchSky1:  v.Sky1,
			geom.PatchSky2:  v.Sky2,
		}}
	case unit.QST:
		return registry.Config{PatchRoles: map[string]string{
			geom.PatchTop:    v.Top,
			geom.PatchRight:  v.Right,
			geom.PatchBottom: v.Bottom,
			geom.PatchLeft:   v.Left,
		}}
	default:
		return registry.Config{}
	}
}

// Update is a prev/next patch pair: apply Next to perform the change,
// Prev to undo it.
type Update struct {
	Prev unit.Patch
	Next unit.Patch
}

// ApplyRotation computes the rotation update for a unit. Exactly one of
// variant change or color change applies per call: a definition that
// rotates its variant never also cycles colors. Units whose definition
// defines neither (the square) report no change.
func (b *Bridge) ApplyRotation(u unit.Unit) (Update, bool) {
	def, ok := b.reg.Get(u.Type())
	if !ok {
		return Update{}, false
	}
	cfg := ToConfig(u)
	if def.RotateVariant != nil && cfg.Variant != "" {
		next := def.RotateVariant(cfg.Variant)
		if next == cfg.Variant {
			return Update{}, false
		}
		return variantUpdate(cfg.Variant, next), true
	}
	if def.RotatePatchRoles != nil {
		return rolesUpdate(cfg.PatchRoles, def.RotatePatchRoles(cfg.PatchRoles)), true
	}
	return Update{}, false
}

// ApplyFlipHorizontal computes the horizontal-flip update. If the flip is
// achieved geometrically (the variant changes) the patch-role swap must
// not also run; colors swap only when the variant survives the flip
// unchanged. This keeps a flip from applying twice.
func (b *Bridge) ApplyFlipHorizontal(u unit.Unit) (Update, bool) {
	return b.applyFlip(u, func(d *registry.Definition) (func(string) string, func(map[string]string) map[string]string) {
		return d.FlipHorizontalVariant, d.FlipHorizontalPatchRoles
	})
}

// ApplyFlipVertical is the vertical mirror of ApplyFlipHorizontal.
func (b *Bridge) ApplyFlipVertical(u unit.Unit) (Update, bool) {
	return b.applyFlip(u, func(d *registry.Definition) (func(string) string, func(map[string]string) map[string]string) {
		return d.FlipVerticalVariant, d.FlipVerticalPatchRoles
	})
}

func (b *Bridge) applyFlip(u unit.Unit, pick func(*registry.Definition) (func(string) string, func(map[string]string) map[string]string)) (Update, bool) {
	def, ok := b.reg.Get(u.Type())
	if !ok {
		return Update{}, false
	}
	cfg := ToConfig(u)
	variantFn, rolesFn := pick(def)

	if variantFn != nil && cfg.Variant != "" {
		if next := variantFn(cfg.Variant); next != cfg.Variant {
			return variantUpdate(cfg.Variant, next), true
		}
	}
	if rolesFn != nil {
		next := rolesFn(cfg.PatchRoles)
		if equalRoles(cfg.PatchRoles, next) {
			return Update{}, false
		}
		return rolesUpdate(cfg.PatchRoles, next), true
	}
	return Update{}, false
}

// AssignPatchRole computes the update that points one patch at a color
// role. An empty patchID targets the definition's first declared patch.
func (b *Bridge) AssignPatchRole(u unit.Unit, colorRoleID, patchID string) (Update, bool) {
	def, ok := b.reg.Get(u.Type())
	if !ok {
		return Update{}, false
	}
	if patchID == "" {
		patchID = def.FirstPatch()
	}
	cfg := ToConfig(u)
	current, ok := cfg.PatchRoles[patchID]
	if !ok {
		return Update{}, false
	}
	if current == colorRoleID {
		return Update{}, false
	}
	return Update{
		Prev: unit.Patch{Roles: map[string]string{patchID: current}},
		Next: unit.Patch{Roles: map[string]string{patchID: colorRoleID}},
	}, true
}

// ReplaceRole rewrites every patch currently pointing at oldRoleID to
// newRoleID. Units with no matching patch report no change, so applying
// the result is idempotent.
func (b *Bridge) ReplaceRole(u unit.Unit, oldRoleID, newRoleID string) (Update, bool) {
	cfg := ToConfig(u)
	prev := make(map[string]string)
	next := make(map[string]string)
	for patchID, roleID := range cfg.PatchRoles {
		if roleID == oldRoleID {
			prev[patchID] = oldRoleID
			next[patchID] = newRoleID
		}
	}
	if len(next) == 0 {
		return Update{}, false
	}
	return Update{
		Prev: unit.Patch{Roles: prev},
		Next: unit.Patch{Roles: next},
	}, true
}

func variantUpdate(prev, next string) Update {
	return Update{
		Prev: unit.Patch{Variant: unit.StrPtr(prev)},
		Next: unit.Patch{Variant: unit.StrPtr(next)},
	}
}

func rolesUpdate(prev, next map[string]string) Update {
	return Update{
		Prev: unit.Patch{Roles: prev},
		Next: unit.Patch{Roles: next},
	}
}

func equalRoles(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
