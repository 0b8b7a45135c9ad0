package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quiltlab/patchboard/internal/geom"
)

func TestFlyingGeese_SpanFollowsDirection(t *testing.T) {
	cases := map[string]Span{
		DirectionUp:    {Rows: 2, Cols: 1},
		DirectionDown:  {Rows: 2, Cols: 1},
		DirectionLeft:  {Rows: 1, Cols: 2},
		DirectionRight: {Rows: 1, Cols: 2},
	}
	for dir, want := range cases {
		g := NewFlyingGeese(Position{}, dir, "feature", "background", "background")
		assert.Equal(t, want, g.Span(), dir)
		assert.Equal(t, want, GeeseSpan(dir), dir)
	}
}

func TestSingleCellSpans(t *testing.T) {
	assert.Equal(t, Span{1, 1}, NewSquare(Position{}, "background").Span())
	assert.Equal(t, Span{1, 1}, NewHST(Position{}, VariantNW, "a", "b").Span())
	assert.Equal(t, Span{1, 1}, NewQST(Position{}, "a", "b", "c", "d").Span())
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	h := NewHST(Position{Row: 1, Col: 1}, VariantNW, "feature", "background")
	out := Apply(h, Patch{Variant: StrPtr(VariantSE), Roles: map[string]string{geom.PatchPrimary: "accent1"}})

	assert.Equal(t, VariantNW, h.Variant)
	assert.Equal(t, "feature", h.ColorRole)

	got := out.(HST)
	assert.Equal(t, VariantSE, got.Variant)
	assert.Equal(t, "accent1", got.ColorRole)
	assert.Equal(t, "background", got.SecondaryColorRole)
	assert.Equal(t, h.ID, got.ID)
}

func TestApply_UnknownPatchIDIgnored(t *testing.T) {
	s := NewSquare(Position{}, "feature")
	out := Apply(s, Patch{Roles: map[string]string{"goose": "accent1"}})
	assert.Equal(t, s, out.(Square))
}

func TestApply_Position(t *testing.T) {
	q := NewQST(Position{}, "a", "b", "c", "d")
	out := Apply(q, Patch{Position: PosPtr(Position{Row: 2, Col: 3})})
	assert.Equal(t, Position{Row: 2, Col: 3}, out.Position())
}

func TestPatch_Merge(t *testing.T) {
	p := Patch{Variant: StrPtr("nw"), Roles: map[string]string{"primary": "a"}}
	q := Patch{Variant: StrPtr("se"), Roles: map[string]string{"secondary": "b"}}
	m := p.Merge(q)
	assert.Equal(t, "se", *m.Variant)
	assert.Equal(t, map[string]string{"primary": "a", "secondary": "b"}, m.Roles)
}

func TestInBounds(t *testing.T) {
	g := NewFlyingGeese(Position{Row: 1, Col: 1}, DirectionRight, "f", "b", "b")
	assert.True(t, InBounds(g, 3))  // occupies (1,1)-(1,2)
	assert.False(t, InBounds(g, 2)) // col 2 exceeds a 2x2 grid
	assert.False(t, InBounds(Apply(g, Patch{Position: PosPtr(Position{Row: -1, Col: 0})}), 3))
}

func TestPatch_IsZero(t *testing.T) {
	assert.True(t, Patch{}.IsZero())
	assert.False(t, Patch{Variant: StrPtr("nw")}.IsZero())
	assert.False(t, Patch{Roles: map[string]string{"fill": "x"}}.IsZero())
}
