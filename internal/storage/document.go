// Package storage persists block documents. The document codec is pure:
// it maps the domain types to the versioned storage record and repairs
// legacy or missing fields on read, so old documents always stay
// loadable.
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/quiltlab/patchboard/internal/geom"
	"github.com/quiltlab/patchboard/internal/palette"
	"github.com/quiltlab/patchboard/internal/unit"
)

// DocumentVersion is the current storage record version.
const DocumentVersion = 1

// Document is the engine-owned part of a block row: the unit collection
// and the preview palette. Surrounding fields (title, grid size, status,
// timestamps) live on the block row itself.
type Document struct {
	Version int
	Units   []unit.Unit
	Palette palette.Palette
}

// unitRecord is the wire shape of one unit, discriminated by Type.
// PartFabricRoles is the legacy name of PatchFabricRoles; it is read and
// migrated, never written.
type unitRecord struct {
	Type               string            `json:"type"`
	ID                 uuid.UUID         `json:"id"`
	Position           unit.Position     `json:"position"`
	ColorRole          string            `json:"colorRole,omitempty"`
	SecondaryColorRole string            `json:"secondaryColorRole,omitempty"`
	Variant            string            `json:"variant,omitempty"`
	Direction          string            `json:"direction,omitempty"`
	PatchFabricRoles   map[string]string `json:"patchFabricRoles,omitempty"`
	PartFabricRoles    map[string]string `json:"partFabricRoles,omitempty"`
}

type documentRecord struct {
	Version int             `json:"version"`
	Units   []unitRecord    `json:"units"`
	Palette palette.Palette `json:"previewPalette,omitempty"`
}

// EncodeDocument serializes a document to its storage representation.
func EncodeDocument(d Document) ([]byte, error) {
	rec := documentRecord{
		Version: DocumentVersion,
		Units:   make([]unitRecord, 0, len(d.Units)),
		Palette: d.Palette,
	}
	for _, u := range d.Units {
		rec.Units = append(rec.Units, encodeUnit(u))
	}
	return json.Marshal(rec)
}

func encodeUnit(u unit.Unit) unitRecord {
	switch v := u.(type) {
	case unit.Square:
		return unitRecord{Type: unit.TypeSquare, ID: v.ID, Position: v.Pos, ColorRole: v.ColorRole}
	case unit.HST:
		return unitRecord{
			Type: unit.TypeHST, ID: v.ID, Position: v.Pos,
			Variant: v.Variant, ColorRole: v.ColorRole, SecondaryColorRole: v.SecondaryColorRole,
		}
	case unit.FlyingGeese:
		return unitRecord{
			Type: unit.TypeFlyingGeese, ID: v.ID, Position: v.Pos, Direction: v.Direction,
			PatchFabricRoles: map[string]string{
				geom.PatchGoose: v.Goose,
				geom.PatchSky1:  v.Sky1,
				geom.PatchSky2:  v.Sky2,
			},
		}
	case unit.QST:
		return unitRecord{
			Type: unit.TypeQST, ID: v.ID, Position: v.Pos,
			PatchFabricRoles: map[string]string{
				geom.PatchTop:    v.Top,
				geom.PatchRight:  v.Right,
				geom.PatchBottom: v.Bottom,
				geom.PatchLeft:   v.Left,
			},
		}
	default:
		return unitRecord{}
	}
}

// DecodeDocument parses a storage record, applying read-side repairs:
// the legacy partFabricRoles key is renamed, absent units default to an
// empty list, and an absent palette defaults to the four standard roles.
func DecodeDocument(data []byte) (Document, error) {
	var rec documentRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return Document{}, fmt.Errorf("decode document: %w", err)
	}

	doc := Document{Version: DocumentVersion, Units: make([]unit.Unit, 0, len(rec.Units))}
	for _, r := range rec.Units {
		u, err := decodeUnit(r)
		if err != nil {
			return Document{}, err
		}
		doc.Units = append(doc.Units, u)
	}

	doc.Palette = rec.Palette
	if len(doc.Palette) == 0 {
		doc.Palette = palette.Default()
	}
	return doc, nil
}

func decodeUnit(r unitRecord) (unit.Unit, error) {
	// Legacy documents stored the role map as partFabricRoles.
	roles := r.PatchFabricRoles
	if roles == nil {
		roles = r.PartFabricRoles
	}

	switch r.Type {
	case unit.TypeSquare:
		return unit.Square{ID: r.ID, Pos: r.Position, ColorRole: r.ColorRole}, nil
	case unit.TypeHST:
		return unit.HST{
			ID: r.ID, Pos: r.Position, Variant: r.Variant,
			ColorRole: r.ColorRole, SecondaryColorRole: r.SecondaryColorRole,
		}, nil
	case unit.TypeFlyingGeese:
		return unit.FlyingGeese{
			ID: r.ID, Pos: r.Position, Direction: r.Direction,
			Goose: roles[geom.PatchGoose],
			Sky1:  roles[geom.PatchSky1],
			Sky2:  roles[geom.PatchSky2],
		}, nil
	case unit.TypeQST:
		return unit.QST{
			ID: r.ID, Pos: r.Position,
			Top:    roles[geom.PatchTop],
			Right:  roles[geom.PatchRight],
			Bottom: roles[geom.PatchBottom],
			Left:   roles[geom.PatchLeft],
		}, nil
	default:
		return nil, fmt.Errorf("decode document: unknown unit type %q", r.Type)
	}
}
