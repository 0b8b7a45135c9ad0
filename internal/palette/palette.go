// Package palette holds the color roles a block's patches reference.
// Patches store role IDs, never raw colors, so recoloring a role restyles
// every unit that uses it.
package palette

import "slices"

// Document-level bounds on the number of roles.
const (
	MinRoles = 1
	MaxRoles = 12
)

// FallbackColor is rendered for any role ID that cannot be resolved.
// Missing colors degrade to neutral gray rather than failing a render.
const FallbackColor = "#CCCCCC"

// Standard role IDs present in every new palette.
const (
	RoleBackground = "background"
	RoleFeature    = "feature"
	RoleAccent1    = "accent1"
	RoleAccent2    = "accent2"
)

// Role is one palette entry. IsVariantColor marks roles auto-created from
// a per-instance override so the UI can distinguish them from pattern
// colors.
type Role struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Color          string `json:"color"`
	IsVariantColor bool   `json:"isVariantColor,omitempty"`
}

// Palette is an ordered list of roles with unique IDs.
type Palette []Role

// Default returns the four standard roles with their fixed default colors.
func Default() Palette {
	return Palette{
		{ID: RoleBackground, Name: "Background", Color: "#FAF6EF"},
		{ID: RoleFeature, Name: "Feature", Color: "#B03A2E"},
		{ID: RoleAccent1, Name: "Accent 1", Color: "#2E6FB0"},
		{ID: RoleAccent2, Name: "Accent 2", Color: "#E9C46A"},
	}
}

// ColorOf resolves a role ID to its hex color.
func (p Palette) ColorOf(roleID string) (string, bool) {
	for _, r := range p {
		if r.ID == roleID {
			return r.Color, true
		}
	}
	return "", false
}

// IndexOf returns the position of a role, or -1 if absent.
func (p Palette) IndexOf(roleID string) int {
	return slices.IndexFunc(p, func(r Role) bool { return r.ID == roleID })
}

// Has reports whether the palette contains the role ID.
func (p Palette) Has(roleID string) bool {
	return p.IndexOf(roleID) >= 0
}

// Clone returns an independent copy of the palette.
func (p Palette) Clone() Palette {
	return slices.Clone(p)
}

// Insert returns a new palette with the role inserted at index. Indexes
// out of range append; the receiver is unchanged.
func (p Palette) Insert(role Role, index int) Palette {
	out := slices.Clone(p)
	if index < 0 || index > len(out) {
		return append(out, role)
	}
	return slices.Insert(out, index, role)
}

// Remove returns a new palette without the role. Unknown IDs return the
// palette unchanged.
func (p Palette) Remove(roleID string) Palette {
	i := p.IndexOf(roleID)
	if i < 0 {
		return p
	}
	out := slices.Clone(p)
	return slices.Delete(out, i, i+1)
}
