package oplog

import (
	"github.com/google/uuid"

	"github.com/quiltlab/patchboard/internal/unit"
)

// Apply runs one operation against a state and returns the new state.
// The input state is never mutated. Malformed references (an unknown
// unit or role ID) are no-ops rather than faults: the log is only ever
// applied against states it produced.
func Apply(s State, op Op) State {
	switch o := op.(type) {
	case AddUnit:
		out := s.Clone()
		out.Units = append(out.Units, o.Unit)
		return out

	case RemoveUnit:
		out := s.Clone()
		out.Units = removeByID(out.Units, o.Unit.UnitID())
		return out

	case UpdateUnit:
		out := s.Clone()
		for i, u := range out.Units {
			if u.UnitID() == o.UnitID {
				out.Units[i] = unit.Apply(u, o.Next)
				break
			}
		}
		return out

	case UpdatePalette:
		out := s.Clone()
		if i := out.Palette.IndexOf(o.RoleID); i >= 0 {
			out.Palette[i].Color = o.NextColor
		}
		return out

	case ResizeGrid:
		return applyResize(s, o)

	case AddRole:
		out := s.Clone()
		if out.Palette.Has(o.Role.ID) {
			return out
		}
		out.Palette = out.Palette.Insert(o.Role, o.Index)
		return out

	case RemoveRole:
		return applyRemoveRole(s, o)

	case RenameRole:
		out := s.Clone()
		if i := out.Palette.IndexOf(o.RoleID); i >= 0 {
			out.Palette[i].Name = o.NextName
		}
		return out

	case Batch:
		out := s
		for _, member := range o.Ops {
			out = Apply(out, member)
		}
		return out

	default:
		return s
	}
}

// applyResize grows or shrinks the grid. A shrink removes exactly the
// units captured in RemovedUnits; a grow appends them back. Units that
// fit the target size are never trimmed on growth.
func applyResize(s State, o ResizeGrid) State {
	out := s.Clone()
	out.GridSize = o.NextSize

	if o.NextSize < o.PrevSize {
		kept := out.Units[:0]
		for _, u := range out.Units {
			if unit.InBounds(u, o.NextSize) {
				kept = append(kept, u)
			}
		}
		out.Units = kept
		return out
	}

	out.Units = append(out.Units, o.RemovedUnits...)
	return out
}

// applyRemoveRole removes the role from the palette and reassigns every
// affected unit's matching patches to the fallback role.
func applyRemoveRole(s State, o RemoveRole) State {
	out := s.Clone()
	out.Palette = out.Palette.Remove(o.Role.ID)

	for _, aff := range o.Affected {
		reassign := make(map[string]string, len(aff.PrevRoles))
		for patchID := range aff.PrevRoles {
			reassign[patchID] = o.FallbackRoleID
		}
		for i, u := range out.Units {
			if u.UnitID() == aff.UnitID {
				out.Units[i] = unit.Apply(u, unit.Patch{Roles: reassign})
				break
			}
		}
	}
	return out
}

func removeByID(units []unit.Unit, id uuid.UUID) []unit.Unit {
	out := units[:0]
	for _, u := range units {
		if u.UnitID() != id {
			out = append(out, u)
		}
	}
	return out
}
