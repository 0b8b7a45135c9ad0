// Package oplog is the invertible operation log behind undo/redo. Every
// mutation of the unit collection, the palette, or the grid size is
// expressed as an Op; applying an op returns fresh state, and Invert
// produces the exact reverse. Ops are immutable once recorded.
package oplog

import (
	"github.com/google/uuid"

	"github.com/quiltlab/patchboard/internal/palette"
	"github.com/quiltlab/patchboard/internal/unit"
)

// State is the mutable aggregate the log operates over. Apply never
// mutates a State in place; it returns a new one sharing no containers
// with the input.
type State struct {
	Units    []unit.Unit
	Palette  palette.Palette
	GridSize int
}

// Clone returns a deep-enough copy: the containers are fresh, the unit
// values are immutable records.
func (s State) Clone() State {
	units := make([]unit.Unit, len(s.Units))
	copy(units, s.Units)
	return State{Units: units, Palette: s.Palette.Clone(), GridSize: s.GridSize}
}

// Op is one undoable change: a closed sum over the nine operation kinds.
type Op interface {
	isOp()
}

// AddUnit inserts a unit. It carries the full unit so its inverse is a
// pure deletion.
type AddUnit struct {
	Unit unit.Unit
}

// RemoveUnit deletes a unit. It carries the full unit so its inverse is
// a pure re-insertion.
type RemoveUnit struct {
	Unit unit.Unit
}

// UpdateUnit patches one unit's fields. Prev captures the old values of
// exactly the fields Next touches.
type UpdateUnit struct {
	UnitID uuid.UUID
	Prev   unit.Patch
	Next   unit.Patch
}

// UpdatePalette recolors one role.
type UpdatePalette struct {
	RoleID    string
	PrevColor string
	NextColor string
}

// ResizeGrid changes the grid size. RemovedUnits holds the units a
// shrink displaced, so growing back restores them.
type ResizeGrid struct {
	PrevSize     int
	NextSize     int
	RemovedUnits []unit.Unit
}

// AddRole inserts a palette role at Index. Adding a role never touches
// units.
type AddRole struct {
	Role  palette.Role
	Index int
}

// RemoveRole deletes a palette role. Every unit that referenced it is
// reassigned to FallbackRoleID; Affected records the prior per-patch
// assignments so the inverse can restore them.
type RemoveRole struct {
	Role           palette.Role
	Index          int
	FallbackRoleID string
	Affected       []AffectedUnit
}

// AffectedUnit records one unit's per-patch role assignments before a
// role removal touched it.
type AffectedUnit struct {
	UnitID    uuid.UUID
	PrevRoles map[string]string
}

// RenameRole changes a role's display name.
type RenameRole struct {
	RoleID   string
	PrevName string
	NextName string
}

// Batch groups operations into one undo step. Members apply in order;
// the inverse applies the member inverses in reverse order.
type Batch struct {
	Ops []Op
}

func (AddUnit) isOp()       {}
func (RemoveUnit) isOp()    {}
func (UpdateUnit) isOp()    {}
func (UpdatePalette) isOp() {}
func (ResizeGrid) isOp()    {}
func (AddRole) isOp()       {}
func (RemoveRole) isOp()    {}
func (RenameRole) isOp()    {}
func (Batch) isOp()         {}
