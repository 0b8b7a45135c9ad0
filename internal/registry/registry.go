package registry

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrFrozen indicates registration after Freeze. The registry is
	// frozen once startup registration completes, so a late Register is
	// a programming error.
	ErrFrozen = errors.New("registry: register after freeze")
	// ErrDuplicateType indicates the type ID is already registered.
	ErrDuplicateType = errors.New("registry: duplicate type id")
	// ErrInvalidDefinition indicates a structurally invalid definition.
	ErrInvalidDefinition = errors.New("registry: invalid definition")
	// ErrNotFound indicates the requested type ID is not registered.
	ErrNotFound = errors.New("registry: type not found")
)

// Registry is the in-memory catalog of unit definitions, keyed by type
// ID. It is populated once at startup and frozen; it is not safe for
// concurrent registration.
type Registry struct {
	defs   map[string]*Definition
	order  []string
	frozen bool
}

// New creates an empty, unfrozen registry.
func New() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

// Register adds a definition keyed by its type ID. It fails immediately
// on a frozen registry, a duplicate ID, or a structurally invalid
// definition; these are programmer errors in unit definitions and are
// never deferred.
func (r *Registry) Register(d *Definition) error {
	if r.frozen {
		return fmt.Errorf("%w: %q", ErrFrozen, d.TypeID)
	}
	if err := validateDefinition(d); err != nil {
		return err
	}
	if _, exists := r.defs[d.TypeID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateType, d.TypeID)
	}
	r.defs[d.TypeID] = d
	r.order = append(r.order, d.TypeID)
	return nil
}

func validateDefinition(d *Definition) error {
	switch {
	case d.TypeID == "":
		return fmt.Errorf("%w: empty type id", ErrInvalidDefinition)
	case d.DisplayName == "":
		return fmt.Errorf("%w: %q has no display name", ErrInvalidDefinition, d.TypeID)
	case len(d.Patches) == 0:
		return fmt.Errorf("%w: %q declares no patches", ErrInvalidDefinition, d.TypeID)
	case d.GetTriangles == nil:
		return fmt.Errorf("%w: %q has no geometry function", ErrInvalidDefinition, d.TypeID)
	}
	if d.DefaultVariant != "" && !d.HasVariant(d.DefaultVariant) {
		return fmt.Errorf("%w: %q default variant %q not in variants %v",
			ErrInvalidDefinition, d.TypeID, d.DefaultVariant, d.Variants)
	}
	return nil
}

// Get returns the definition for a type ID, or false when absent.
func (r *Registry) Get(typeID string) (*Definition, bool) {
	d, ok := r.defs[typeID]
	return d, ok
}

// GetStrict returns the definition or an error naming the requested ID
// and the currently known IDs.
func (r *Registry) GetStrict(typeID string) (*Definition, error) {
	d, ok := r.defs[typeID]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrNotFound, typeID, r.TypeIDs())
	}
	return d, nil
}

// Freeze blocks further registration. Called after startup registration
// so accidental late registration fails loudly.
func (r *Registry) Freeze() { r.frozen = true }

// Unfreeze re-opens registration. Intended for tests.
func (r *Registry) Unfreeze() { r.frozen = false }

// Frozen reports whether the registry is frozen.
func (r *Registry) Frozen() bool { return r.frozen }

// Has reports whether a type ID is registered.
func (r *Registry) Has(typeID string) bool {
	_, ok := r.defs[typeID]
	return ok
}

// Size returns the number of registered definitions.
func (r *Registry) Size() int { return len(r.defs) }

// TypeIDs returns all registered type IDs in registration order.
func (r *Registry) TypeIDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// ByCategory returns the definitions in a category, ordered by type ID.
func (r *Registry) ByCategory(category string) []*Definition {
	var out []*Definition
	for _, d := range r.defs {
		if d.Category == category {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TypeID < out[j].TypeID })
	return out
}

// All returns every definition in registration order.
func (r *Registry) All() []*Definition {
	out := make([]*Definition, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.defs[id])
	}
	return out
}
