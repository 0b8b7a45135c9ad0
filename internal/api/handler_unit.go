package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/quiltlab/patchboard/internal/registry"
	"github.com/quiltlab/patchboard/internal/unit"
)

// --- Huma Input/Output types ---

type UnitTypeResponse struct {
	TypeID         string             `json:"type_id" doc:"Unit type identifier"`
	DisplayName    string             `json:"display_name" doc:"Human-readable name"`
	Category       string             `json:"category" doc:"Picker category"`
	DefaultSpan    unit.Span          `json:"default_span" doc:"Grid cells occupied by default"`
	SpanBehavior   string             `json:"span_behavior" doc:"Whether span depends on variant" enum:"fixed,variant_dependent"`
	Patches        []registry.Patch   `json:"patches" doc:"Colorable regions"`
	Variants       []string           `json:"variants,omitempty" doc:"Orientation variants"`
	DefaultVariant string             `json:"default_variant,omitempty" doc:"Variant used on placement"`
	ConfigSchema   map[string]string  `json:"config_schema,omitempty" doc:"Structural config fields (field to kind)"`
	Thumbnail      registry.Thumbnail `json:"thumbnail" doc:"Picker preview configuration"`
	PlacementMode  string             `json:"placement_mode" doc:"Placement interaction" enum:"single_tap,two_tap"`
	BatchPlacement bool               `json:"batch_placement" doc:"Whether the type supports batch placement"`
}

type ListUnitTypesOutput struct {
	Body []UnitTypeResponse
}

// --- Handler ---

type UnitHandler struct {
	reg *registry.Registry
}

func NewUnitHandler(reg *registry.Registry) *UnitHandler {
	return &UnitHandler{reg: reg}
}

func registerUnitRoutes(api huma.API, h *UnitHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-unit-types",
		Method:      http.MethodGet,
		Path:        "/v1/units",
		Summary:     "List the unit type catalog",
		Tags:        []string{"units"},
	}, h.ListUnitTypes)
}

func (h *UnitHandler) ListUnitTypes(ctx context.Context, _ *struct{}) (*ListUnitTypesOutput, error) {
	defs := h.reg.All()
	resp := make([]UnitTypeResponse, len(defs))
	for i, d := range defs {
		resp[i] = UnitTypeResponse{
			TypeID:         d.TypeID,
			DisplayName:    d.DisplayName,
			Category:       d.Category,
			DefaultSpan:    d.DefaultSpan,
			SpanBehavior:   string(d.SpanBehavior),
			Patches:        d.Patches,
			Variants:       d.Variants,
			DefaultVariant: d.DefaultVariant,
			ConfigSchema:   d.ConfigSchema,
			Thumbnail:      d.Thumbnail,
			PlacementMode:  string(d.PlacementMode),
			BatchPlacement: d.SupportsBatchPlacement,
		}
	}
	return &ListUnitTypesOutput{Body: resp}, nil
}
