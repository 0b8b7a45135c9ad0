package oplog

import (
	"github.com/quiltlab/patchboard/internal/palette"
	"github.com/quiltlab/patchboard/internal/unit"
)

// Builders capture the before-state an operation needs for exact
// inversion. They read the state without modifying it; the caller applies
// and records the returned op.

// NewResizeGrid builds a resize op. When shrinking, every unit whose
// position or position+span exceeds the target grid in either axis is
// captured so the shrink is losslessly undoable. Growth captures nothing
// and trims nothing.
func NewResizeGrid(s State, nextSize int) ResizeGrid {
	op := ResizeGrid{PrevSize: s.GridSize, NextSize: nextSize}
	if nextSize < s.GridSize {
		for _, u := range s.Units {
			if !unit.InBounds(u, nextSize) {
				op.RemovedUnits = append(op.RemovedUnits, u)
			}
		}
	}
	return op
}

// NewUpdatePalette builds a recolor op, reading the current color from
// the state. ok is false for an unknown role.
func NewUpdatePalette(s State, roleID, nextColor string) (UpdatePalette, bool) {
	i := s.Palette.IndexOf(roleID)
	if i < 0 {
		return UpdatePalette{}, false
	}
	return UpdatePalette{RoleID: roleID, PrevColor: s.Palette[i].Color, NextColor: nextColor}, true
}

// NewRenameRole builds a rename op. ok is false for an unknown role.
func NewRenameRole(s State, roleID, nextName string) (RenameRole, bool) {
	i := s.Palette.IndexOf(roleID)
	if i < 0 {
		return RenameRole{}, false
	}
	return RenameRole{RoleID: roleID, PrevName: s.Palette[i].Name, NextName: nextName}, true
}

// NewAddRole builds an append-at-end role addition, honoring the palette
// size bound.
func NewAddRole(s State, role palette.Role) (AddRole, bool) {
	if len(s.Palette) >= palette.MaxRoles || s.Palette.Has(role.ID) {
		return AddRole{}, false
	}
	return AddRole{Role: role, Index: len(s.Palette)}, true
}

// NewRemoveRole builds a role removal. rolesOf reports a unit's current
// patch-ID→role-ID map (the bridge's ToConfig supplies it); every unit
// with a patch on the doomed role is recorded with its prior assignments
// and will be reassigned to fallbackRoleID on apply. ok is false for an
// unknown role, a role equal to its own fallback, or a palette already at
// its minimum size.
func NewRemoveRole(s State, roleID, fallbackRoleID string, rolesOf func(unit.Unit) map[string]string) (RemoveRole, bool) {
	i := s.Palette.IndexOf(roleID)
	if i < 0 || roleID == fallbackRoleID || len(s.Palette) <= palette.MinRoles {
		return RemoveRole{}, false
	}
	op := RemoveRole{Role: s.Palette[i], Index: i, FallbackRoleID: fallbackRoleID}
	for _, u := range s.Units {
		var prev map[string]string
		for patchID, r := range rolesOf(u) {
			if r == roleID {
				if prev == nil {
					prev = make(map[string]string)
				}
				prev[patchID] = r
			}
		}
		if prev != nil {
			op.Affected = append(op.Affected, AffectedUnit{UnitID: u.UnitID(), PrevRoles: prev})
		}
	}
	return op, true
}
