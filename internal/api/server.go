package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quiltlab/patchboard/internal/bridge"
	"github.com/quiltlab/patchboard/internal/metrics"
	"github.com/quiltlab/patchboard/internal/registry"
	"github.com/quiltlab/patchboard/internal/storage"
)

// Pinger is the readiness probe for the backing database. *pgxpool.Pool
// satisfies it; tests pass nil to skip the probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options carries the tunable server defaults.
type Options struct {
	// RenderCellSize is the pixel size of one grid cell when a render
	// request does not name one.
	RenderCellSize float64
	// ListLimit caps tag listing page sizes.
	ListLimit int
}

func (o Options) withDefaults() Options {
	if o.RenderCellSize <= 0 {
		o.RenderCellSize = 40
	}
	if o.ListLimit <= 0 {
		o.ListLimit = 50
	}
	return o
}

// NewServer creates an HTTP server with all routes configured.
func NewServer(logger *slog.Logger, store storage.BlockStore, reg *registry.Registry, db Pinger, opts Options) http.Handler {
	opts = opts.withDefaults()

	mux := chi.NewRouter()
	mux.Use(RequestID)
	mux.Use(Logging(logger))
	mux.Use(Recovery(logger))
	mux.Use(metrics.Metrics)

	humaAPI := humachi.New(mux, huma.DefaultConfig("Patchboard", "1.0.0"))

	br := bridge.New(reg)
	blockHandler := NewBlockHandler(store, reg, logger, opts.ListLimit)
	renderHandler := NewRenderHandler(store, br, logger, opts.RenderCellSize)
	unitHandler := NewUnitHandler(reg)

	registerBlockRoutes(humaAPI, blockHandler)
	registerRenderRoutes(humaAPI, renderHandler)
	registerUnitRoutes(humaAPI, unitHandler)

	mux.Get("/health", healthHandler(db))
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("failed to encode JSON response", "error", err)
	}
}

func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{
					"status":   "degraded",
					"database": err.Error(),
				})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
