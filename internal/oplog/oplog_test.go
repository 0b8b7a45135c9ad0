package oplog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quiltlab/patchboard/internal/bridge"
	"github.com/quiltlab/patchboard/internal/palette"
	"github.com/quiltlab/patchboard/internal/unit"
)

// rolesOf adapts the bridge's generic conversion for role-removal ops.
func rolesOf(u unit.Unit) map[string]string {
	return bridge.ToConfig(u).PatchRoles
}

func testState() State {
	units := []unit.Unit{
		unit.NewSquare(unit.Position{Row: 0, Col: 0}, palette.RoleBackground),
		unit.NewHST(unit.Position{Row: 0, Col: 1}, unit.VariantNW, palette.RoleFeature, palette.RoleBackground),
		unit.NewFlyingGeese(unit.Position{Row: 1, Col: 0}, unit.DirectionRight, palette.RoleFeature, palette.RoleAccent1, palette.RoleAccent1),
	}
	return State{Units: units, Palette: palette.Default(), GridSize: 3}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	s := testState()
	unitsBefore := len(s.Units)
	paletteBefore := s.Palette.Clone()

	_ = Apply(s, AddUnit{Unit: unit.NewSquare(unit.Position{Row: 2, Col: 2}, palette.RoleAccent2)})
	_ = Apply(s, UpdatePalette{RoleID: palette.RoleFeature, PrevColor: "#B03A2E", NextColor: "#000000"})
	_ = Apply(s, RemoveUnit{Unit: s.Units[0]})

	assert.Len(t, s.Units, unitsBefore)
	assert.Equal(t, paletteBefore, s.Palette)
}

// apply(apply(s, op), invert(op)) == s for every operation kind.
func TestInversionRoundTrip(t *testing.T) {
	s := testState()
	hstID := s.Units[1].UnitID()

	removeRole, ok := NewRemoveRole(s, palette.RoleAccent1, palette.RoleBackground, rolesOf)
	require.True(t, ok)
	recolor, ok := NewUpdatePalette(s, palette.RoleFeature, "#112233")
	require.True(t, ok)
	rename, ok := NewRenameRole(s, palette.RoleAccent2, "Trim")
	require.True(t, ok)
	addRole, ok := NewAddRole(s, palette.Role{ID: "binding", Name: "Binding", Color: "#222222"})
	require.True(t, ok)

	ops := map[string]Op{
		"add_unit":    AddUnit{Unit: unit.NewQST(unit.Position{Row: 2, Col: 2}, "a", "b", "c", "d")},
		"remove_unit": RemoveUnit{Unit: s.Units[0]},
		"update_unit": UpdateUnit{
			UnitID: hstID,
			Prev:   unit.Patch{Variant: unit.StrPtr(unit.VariantNW)},
			Next:   unit.Patch{Variant: unit.StrPtr(unit.VariantSE)},
		},
		"update_palette": recolor,
		"resize_shrink":  NewResizeGrid(s, 2),
		"resize_grow":    NewResizeGrid(s, 5),
		"add_role":       addRole,
		"remove_role":    removeRole,
		"rename_role":    rename,
		"batch": Batch{Ops: []Op{
			AddUnit{Unit: unit.NewSquare(unit.Position{Row: 2, Col: 0}, palette.RoleFeature)},
			recolor,
		}},
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			applied := Apply(s, op)
			restored := Apply(applied, Invert(op))
			assert.Equal(t, s.GridSize, restored.GridSize)
			assert.Equal(t, s.Palette, restored.Palette)
			assert.ElementsMatch(t, s.Units, restored.Units)
		})
	}
}

func TestInvert_Batch_ReversesOrder(t *testing.T) {
	a := AddUnit{Unit: unit.NewSquare(unit.Position{}, "x")}
	b := RenameRole{RoleID: "feature", PrevName: "Feature", NextName: "Main"}

	inv := Invert(Batch{Ops: []Op{a, b}}).(Batch)
	require.Len(t, inv.Ops, 2)
	assert.Equal(t, Invert(b), inv.Ops[0])
	assert.Equal(t, Invert(a), inv.Ops[1])
}

func TestInvert_AddRole_EmptyAffected(t *testing.T) {
	op := AddRole{Role: palette.Role{ID: "x", Name: "X", Color: "#fff"}, Index: 2}
	inv := Invert(op).(RemoveRole)
	assert.Empty(t, inv.Affected)
	assert.Equal(t, 2, inv.Index)
}

func TestInvert_RemoveRole_ExpandsToBatch(t *testing.T) {
	s := testState()
	op, ok := NewRemoveRole(s, palette.RoleAccent1, palette.RoleBackground, rolesOf)
	require.True(t, ok)
	require.Len(t, op.Affected, 1) // only the geese uses accent1

	inv, isBatch := Invert(op).(Batch)
	require.True(t, isBatch, "remove_role inverse must be a batch, never flat")

	_, first := inv.Ops[0].(AddRole)
	require.True(t, first, "batch must lead with the role re-add")
	// One UpdateUnit per affected patch: the geese has accent1 on both skies.
	assert.Len(t, inv.Ops, 3)
}

func TestRemoveRole_RoundTripRestoresPositionAndAssignments(t *testing.T) {
	s := testState()

	op, ok := NewRemoveRole(s, palette.RoleAccent1, palette.RoleBackground, rolesOf)
	require.True(t, ok)

	removed := Apply(s, op)
	assert.False(t, removed.Palette.Has(palette.RoleAccent1))
	geese := findUnit(t, removed, s.Units[2].UnitID()).(unit.FlyingGeese)
	assert.Equal(t, palette.RoleBackground, geese.Sky1)
	assert.Equal(t, palette.RoleBackground, geese.Sky2)

	restored := Apply(removed, Invert(op))
	// Original list position, not just membership.
	assert.Equal(t, 2, restored.Palette.IndexOf(palette.RoleAccent1))
	geese = findUnit(t, restored, s.Units[2].UnitID()).(unit.FlyingGeese)
	assert.Equal(t, palette.RoleAccent1, geese.Sky1)
	assert.Equal(t, palette.RoleAccent1, geese.Sky2)
}

func TestResizeGrid_ShrinkCapturesOutOfBounds(t *testing.T) {
	s := testState()
	op := NewResizeGrid(s, 2)
	// The geese at (1,0)-(1,1) fits 2x2; nothing else is out of bounds... the
	// HST at (0,1) fits too. Shrinking to 1 removes both of those.
	assert.Empty(t, op.RemovedUnits)

	op = NewResizeGrid(s, 1)
	assert.Len(t, op.RemovedUnits, 2)

	shrunk := Apply(s, op)
	assert.Equal(t, 1, shrunk.GridSize)
	assert.Len(t, shrunk.Units, 1)

	regrown := Apply(shrunk, Invert(op))
	assert.Equal(t, 3, regrown.GridSize)
	assert.ElementsMatch(t, s.Units, regrown.Units)
}

func TestResizeGrid_GrowthNeverTrims(t *testing.T) {
	s := testState()
	grown := Apply(s, NewResizeGrid(s, 9))
	assert.Equal(t, 9, grown.GridSize)
	assert.Len(t, grown.Units, len(s.Units))
}

func TestApply_UnknownIDsAreNoOps(t *testing.T) {
	s := testState()

	out := Apply(s, UpdateUnit{UnitID: uuid.New(), Next: unit.Patch{Variant: unit.StrPtr("se")}})
	assert.ElementsMatch(t, s.Units, out.Units)

	out = Apply(s, UpdatePalette{RoleID: "ghost", NextColor: "#000"})
	assert.Equal(t, s.Palette, out.Palette)

	out = Apply(s, RenameRole{RoleID: "ghost", NextName: "X"})
	assert.Equal(t, s.Palette, out.Palette)
}

func TestPaletteOpsNeverTouchUnits(t *testing.T) {
	s := testState()
	op, _ := NewUpdatePalette(s, palette.RoleFeature, "#101010")
	out := Apply(s, op)
	assert.ElementsMatch(t, s.Units, out.Units)

	addRole, _ := NewAddRole(s, palette.Role{ID: "extra", Color: "#fff"})
	out = Apply(s, addRole)
	assert.ElementsMatch(t, s.Units, out.Units)
}

func TestNewAddRole_Bounds(t *testing.T) {
	s := testState()
	for i := len(s.Palette); i < palette.MaxRoles; i++ {
		op, ok := NewAddRole(s, palette.Role{ID: string(rune('a' + i)), Color: "#fff"})
		require.True(t, ok)
		s = Apply(s, op)
	}
	_, ok := NewAddRole(s, palette.Role{ID: "overflow", Color: "#fff"})
	assert.False(t, ok)
}

func TestNewRemoveRole_Guards(t *testing.T) {
	s := testState()
	_, ok := NewRemoveRole(s, "ghost", palette.RoleBackground, rolesOf)
	assert.False(t, ok)
	_, ok = NewRemoveRole(s, palette.RoleFeature, palette.RoleFeature, rolesOf)
	assert.False(t, ok, "fallback must differ from the removed role")
}

func TestHistory_UndoRedo(t *testing.T) {
	h := NewHistory()
	s := testState()
	origUnits := len(s.Units)

	s = h.Record(s, AddUnit{Unit: unit.NewSquare(unit.Position{Row: 2, Col: 2}, palette.RoleFeature)})
	assert.Len(t, s.Units, origUnits+1)
	assert.True(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	s = h.Undo(s)
	assert.Len(t, s.Units, origUnits)
	assert.True(t, h.CanRedo())

	s = h.Redo(s)
	assert.Len(t, s.Units, origUnits+1)

	// Recording clears redo.
	s = h.Undo(s)
	s = h.Record(s, NewResizeGrid(s, 4))
	assert.False(t, h.CanRedo())
	assert.Equal(t, 4, s.GridSize)
}

func TestHistory_EmptyStacksAreNoOps(t *testing.T) {
	h := NewHistory()
	s := testState()
	assert.Equal(t, s.GridSize, h.Undo(s).GridSize)
	assert.Equal(t, s.GridSize, h.Redo(s).GridSize)
}

func findUnit(t *testing.T, s State, id uuid.UUID) unit.Unit {
	t.Helper()
	for _, u := range s.Units {
		if u.UnitID() == id {
			return u
		}
	}
	t.Fatalf("unit %s not found", id)
	return nil
}
