package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"bizdash/internal/config"
	apierrors "bizdash/internal/errors"
	"bizdash/internal/infrastructure"
	"bizdash/internal/middleware"
	"bizdash/internal/services"
	"bizdash/internal/snapshot"
	"bizdash/pkg/contracts/domain"
)

type ctxKey string

const datasetKey ctxKey = "dataset"

// DashboardHandler serves the aggregates of one dataset
type DashboardHandler struct {
	service      DashboardServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service DashboardServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DashboardHandler {
	return &DashboardHandler{
		service:      service,
		logger:       infrastructure.WithComponent(logger, "dashboard_handler"),
		errorHandler: errorHandler,
	}
}

// Routes returns the dataset routes, mounted under /api/{dataset}
func (h *DashboardHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(h.DatasetCtx)

	r.Get("/ranking.csv", h.GetRankingCSV)

	r.Group(func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Get("/records", h.GetRecords)
		r.Get("/stats", h.GetStats)
		r.Get("/ranking", h.GetRanking)
		r.Get("/trend", h.GetTrend)
		r.Get("/rollups/{dimension}", h.GetRollup)
		r.Get("/cohorts", h.GetCohorts)
		r.Get("/lifecycle", h.GetLifecycle)
		r.Get("/evolution", h.GetEvolution)
		r.Get("/highlights", h.GetHighlights)
		r.Get("/direct", h.GetDirect)
	})

	return r
}

// DatasetCtx middleware validates the dataset parameter
func (h *DashboardHandler) DatasetCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ds, err := services.ParseDataset(chi.URLParam(r, "dataset"))
		if err != nil {
			h.errorHandler.HandleError(w, r, err)
			return
		}
		ctx := context.WithValue(r.Context(), datasetKey, ds)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func datasetFrom(r *http.Request) services.Dataset {
	ds, _ := r.Context().Value(datasetKey).(services.Dataset)
	return ds
}

// respond renders data or hands err to the error handler
func (h *DashboardHandler) respond(w http.ResponseWriter, r *http.Request, data interface{}, err error) {
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, success(data))
}

// GetRecords handles GET /api/{dataset}/records
func (h *DashboardHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	ds := datasetFrom(r)
	records, count, err := h.service.Records(ds)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	h.logger.DebugContext(r.Context(), "records served",
		slog.String("dataset", string(ds)),
		slog.Int("count", count),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   records,
		"count":  count,
	})
}

// GetStats handles GET /api/{dataset}/stats
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(datasetFrom(r))
	h.respond(w, r, stats, err)
}

// GetRanking handles GET /api/{dataset}/ranking
func (h *DashboardHandler) GetRanking(w http.ResponseWriter, r *http.Request) {
	ranking, err := h.service.Ranking(datasetFrom(r))
	h.respond(w, r, ranking, err)
}

// GetRankingCSV handles GET /api/{dataset}/ranking.csv
func (h *DashboardHandler) GetRankingCSV(w http.ResponseWriter, r *http.Request) {
	ds := datasetFrom(r)
	ranking, err := h.service.Ranking(ds)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf(config.RankingCSVPattern, ds)))

	if err := snapshot.EncodeCSV(w, snapshot.RankingOptions(ranking)); err != nil {
		// headers are gone; only log
		infrastructure.WithError(h.logger, err).ErrorContext(r.Context(), "failed to stream ranking csv",
			slog.String("dataset", string(ds)),
		)
	}
}

// GetTrend handles GET /api/{dataset}/trend
func (h *DashboardHandler) GetTrend(w http.ResponseWriter, r *http.Request) {
	trend, err := h.service.Trend(datasetFrom(r))
	h.respond(w, r, trend, err)
}

// GetRollup handles GET /api/{dataset}/rollups/{dimension}
func (h *DashboardHandler) GetRollup(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Rollup(datasetFrom(r), chi.URLParam(r, "dimension"))
	h.respond(w, r, rows, err)
}

// GetCohorts handles GET /api/{dataset}/cohorts
func (h *DashboardHandler) GetCohorts(w http.ResponseWriter, r *http.Request) {
	sections, err := h.service.Cohorts(datasetFrom(r))
	h.respond(w, r, sections, err)
}

// GetLifecycle handles GET /api/{dataset}/lifecycle?q=&status=
func (h *DashboardHandler) GetLifecycle(w http.ResponseWriter, r *http.Request) {
	q := services.LifecycleQuery{
		Search: r.URL.Query().Get("q"),
		Status: domain.LifecycleStatus(r.URL.Query().Get("status")),
	}
	switch q.Status {
	case "", domain.StatusNovo, domain.StatusAtivo, domain.StatusReativado, domain.StatusInativo:
	default:
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("status", "status must be one of: novo, ativo, reativado, inativo"))
		return
	}

	result, err := h.service.Lifecycle(datasetFrom(r), q)
	h.respond(w, r, result, err)
}

// GetEvolution handles GET /api/{dataset}/evolution
func (h *DashboardHandler) GetEvolution(w http.ResponseWriter, r *http.Request) {
	evolution, err := h.service.Evolution(datasetFrom(r))
	h.respond(w, r, evolution, err)
}

// GetHighlights handles GET /api/{dataset}/highlights
func (h *DashboardHandler) GetHighlights(w http.ResponseWriter, r *http.Request) {
	highlights, err := h.service.Highlights(datasetFrom(r))
	h.respond(w, r, highlights, err)
}

// GetDirect handles GET /api/{dataset}/direct
func (h *DashboardHandler) GetDirect(w http.ResponseWriter, r *http.Request) {
	split, err := h.service.Direct(datasetFrom(r))
	h.respond(w, r, split, err)
}

// ClientsHandler serves the client registry
type ClientsHandler struct {
	service DashboardServiceInterface
}

// NewClientsHandler creates a new clients handler
func NewClientsHandler(service DashboardServiceInterface) *ClientsHandler {
	return &ClientsHandler{service: service}
}

// GetClients handles GET /api/clients?q=
func (h *ClientsHandler) GetClients(w http.ResponseWriter, r *http.Request) {
	clients := h.service.Clients(r.URL.Query().Get("q"))
	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   clients,
		"count":  len(clients),
	})
}
