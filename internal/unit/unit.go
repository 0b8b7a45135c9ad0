// Package unit defines the domain records for placed quilt primitives.
// Unit is a closed sum type: exactly four variants exist (Square, HST,
// FlyingGeese, QST) and every switch over them can be exhaustive.
package unit

import (
	"github.com/google/uuid"
)

// Unit type identifiers. These double as the registry type IDs.
const (
	TypeSquare      = "square"
	TypeHST         = "hst"
	TypeFlyingGeese = "flying_geese"
	TypeQST         = "qst"
)

// HST variants name the corner the primary triangle occupies.
const (
	VariantNW = "nw"
	VariantNE = "ne"
	VariantSW = "sw"
	VariantSE = "se"
)

// Flying geese directions. Horizontal directions span 1×2 cells,
// vertical directions 2×1.
const (
	DirectionUp    = "up"
	DirectionDown  = "down"
	DirectionLeft  = "left"
	DirectionRight = "right"
)

// Position is the grid cell of a unit's top-left corner, zero-indexed.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Span is the rectangular cell footprint a unit occupies.
type Span struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Unit is one placed geometric primitive. Span is derived from the
// variant rather than stored, so it can never drift from what the unit's
// definition computes.
type Unit interface {
	UnitID() uuid.UUID
	Type() string
	Position() Position
	Span() Span

	apply(Patch) Unit
	isUnit()
}

// Square is a solid single-cell square with one color role.
type Square struct {
	ID        uuid.UUID
	Pos       Position
	ColorRole string
}

// HST is a half-square triangle. Variant names the corner the primary
// triangle occupies.
type HST struct {
	ID                 uuid.UUID
	Pos                Position
	Variant            string
	ColorRole          string
	SecondaryColorRole string
}

// FlyingGeese is a two-cell unit: one goose triangle pointing in
// Direction plus two flanking sky triangles.
type FlyingGeese struct {
	ID        uuid.UUID
	Pos       Position
	Direction string
	Goose     string
	Sky1      string
	Sky2      string
}

// QST is a quarter-square triangle: four triangles meeting at the center,
// one color role per side. The shape has 2-fold rotational symmetry, so
// there is no variant; variety comes from the colors alone.
type QST struct {
	ID     uuid.UUID
	Pos    Position
	Top    string
	Right  string
	Bottom string
	Left   string
}

func NewSquare(pos Position, colorRole string) Square {
	return Square{ID: uuid.New(), Pos: pos, ColorRole: colorRole}
}

func NewHST(pos Position, variant, primary, secondary string) HST {
	return HST{ID: uuid.New(), Pos: pos, Variant: variant, ColorRole: primary, SecondaryColorRole: secondary}
}

func NewFlyingGeese(pos Position, direction, goose, sky1, sky2 string) FlyingGeese {
	return FlyingGeese{ID: uuid.New(), Pos: pos, Direction: direction, Goose: goose, Sky1: sky1, Sky2: sky2}
}

func NewQST(pos Position, top, right, bottom, left string) QST {
	return QST{ID: uuid.New(), Pos: pos, Top: top, Right: right, Bottom: bottom, Left: left}
}

func (s Square) UnitID() uuid.UUID      { return s.ID }
func (h HST) UnitID() uuid.UUID         { return h.ID }
func (g FlyingGeese) UnitID() uuid.UUID { return g.ID }
func (q QST) UnitID() uuid.UUID         { return q.ID }

func (Square) Type() string      { return TypeSquare }
func (HST) Type() string         { return TypeHST }
func (FlyingGeese) Type() string { return TypeFlyingGeese }
func (QST) Type() string         { return TypeQST }

func (s Square) Position() Position      { return s.Pos }
func (h HST) Position() Position         { return h.Pos }
func (g FlyingGeese) Position() Position { return g.Pos }
func (q QST) Position() Position         { return q.Pos }

func (Square) Span() Span { return Span{Rows: 1, Cols: 1} }
func (HST) Span() Span    { return Span{Rows: 1, Cols: 1} }
func (QST) Span() Span    { return Span{Rows: 1, Cols: 1} }

// Span of a flying geese unit follows its direction: tall for vertical,
// wide for horizontal.
func (g FlyingGeese) Span() Span {
	switch g.Direction {
	case DirectionUp, DirectionDown:
		return Span{Rows: 2, Cols: 1}
	default:
		return Span{Rows: 1, Cols: 2}
	}
}

// GeeseSpan returns the span a flying geese unit occupies for a given
// direction, without constructing a unit.
func GeeseSpan(direction string) Span {
	return FlyingGeese{Direction: direction}.Span()
}

func (Square) isUnit()      {}
func (HST) isUnit()         {}
func (FlyingGeese) isUnit() {}
func (QST) isUnit()         {}

// InBounds reports whether the unit's full span fits inside a
// gridSize×gridSize grid.
func InBounds(u Unit, gridSize int) bool {
	pos, span := u.Position(), u.Span()
	if pos.Row < 0 || pos.Col < 0 {
		return false
	}
	return pos.Row+span.Rows <= gridSize && pos.Col+span.Cols <= gridSize
}
