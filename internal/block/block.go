// Package block holds the document record for one quilt block design and
// the validation contracts exposed to the API layer.
package block

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quiltlab/patchboard/internal/palette"
	"github.com/quiltlab/patchboard/internal/unit"
)

// Grid size bounds for a block.
const (
	MinGridSize = 2
	MaxGridSize = 9
)

// Status is the block lifecycle state. Lifecycle fields are owned by the
// publishing flow, not the undo log.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Block is the design document: identity, authorship, the unit
// collection, and its preview palette. Description is a pointer because
// an absent description stays null, never an empty string.
type Block struct {
	ID          uuid.UUID
	CreatorID   string
	ForkedFrom  *uuid.UUID
	Title       string
	Description *string
	Tags        []string
	GridSize    int
	Units       []unit.Unit
	Palette     palette.Palette
	Status      Status
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PublishCheck is the result of publish-readiness validation. Failing
// validation is an expected, displayable state, not an error.
type PublishCheck struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// ValidateForPublish checks that the block has at least one unit and that
// the unit spans cover every cell of the grid. Overlaps are prevented at
// placement time and are not re-validated here.
func ValidateForPublish(units []unit.Unit, gridSize int) PublishCheck {
	if len(units) == 0 {
		return PublishCheck{Valid: false, Error: "Add at least one unit before publishing"}
	}

	covered := make([]bool, gridSize*gridSize)
	for _, u := range units {
		pos, span := u.Position(), u.Span()
		for r := pos.Row; r < pos.Row+span.Rows; r++ {
			for c := pos.Col; c < pos.Col+span.Cols; c++ {
				if r >= 0 && r < gridSize && c >= 0 && c < gridSize {
					covered[r*gridSize+c] = true
				}
			}
		}
	}

	empty := 0
	for _, ok := range covered {
		if !ok {
			empty++
		}
	}
	if empty > 0 {
		noun := "cells"
		if empty == 1 {
			noun = "cell"
		}
		return PublishCheck{
			Valid: false,
			Error: fmt.Sprintf("%d empty %s remaining. Fill all cells to publish.", empty, noun),
		}
	}
	return PublishCheck{Valid: true}
}
