package oplog

import "github.com/quiltlab/patchboard/internal/unit"

// Invert returns the operation that exactly undoes op: applying op then
// its inverse to any state yields the original state back.
func Invert(op Op) Op {
	switch o := op.(type) {
	case AddUnit:
		return RemoveUnit{Unit: o.Unit}

	case RemoveUnit:
		return AddUnit{Unit: o.Unit}

	case UpdateUnit:
		return UpdateUnit{UnitID: o.UnitID, Prev: o.Next, Next: o.Prev}

	case UpdatePalette:
		return UpdatePalette{RoleID: o.RoleID, PrevColor: o.NextColor, NextColor: o.PrevColor}

	case ResizeGrid:
		// The removed-units list rides along: undoing a shrink is a grow
		// that re-appends exactly those units.
		return ResizeGrid{PrevSize: o.NextSize, NextSize: o.PrevSize, RemovedUnits: o.RemovedUnits}

	case AddRole:
		// Undoing an add never touched any unit.
		return RemoveRole{Role: o.Role, Index: o.Index, Affected: nil}

	case RemoveRole:
		return invertRemoveRole(o)

	case RenameRole:
		return RenameRole{RoleID: o.RoleID, PrevName: o.NextName, NextName: o.PrevName}

	case Batch:
		inverted := make([]Op, len(o.Ops))
		for i, member := range o.Ops {
			inverted[len(o.Ops)-1-i] = Invert(member)
		}
		return Batch{Ops: inverted}

	default:
		return op
	}
}

// invertRemoveRole must both re-add the role and restore every affected
// unit's original per-patch assignment, so it expands into a batch: one
// AddRole followed by one UpdateUnit per previously affected patch per
// unit. It is never a single flat operation.
func invertRemoveRole(o RemoveRole) Op {
	ops := []Op{AddRole{Role: o.Role, Index: o.Index}}
	for _, aff := range o.Affected {
		for patchID, prevRole := range aff.PrevRoles {
			ops = append(ops, UpdateUnit{
				UnitID: aff.UnitID,
				Prev:   unit.Patch{Roles: map[string]string{patchID: o.FallbackRoleID}},
				Next:   unit.Patch{Roles: map[string]string{patchID: prevRole}},
			})
		}
	}
	return Batch{Ops: ops}
}
