package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "bizdash/internal/errors"
	"bizdash/internal/filter"
	"bizdash/internal/infrastructure"
	"bizdash/internal/middleware"
	"bizdash/internal/services"
)

// FilterHandler exposes the session filter state
type FilterHandler struct {
	service      DashboardServiceInterface
	validator    *middleware.Validator
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewFilterHandler creates a new filter handler
func NewFilterHandler(service DashboardServiceInterface, validator *middleware.Validator, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *FilterHandler {
	return &FilterHandler{
		service:      service,
		validator:    validator,
		logger:       infrastructure.WithComponent(logger, "filter_handler"),
		errorHandler: errorHandler,
	}
}

// Routes returns the filter routes
func (h *FilterHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", h.GetState)
	r.Post("/actions", h.Dispatch)
	r.Post("/reset", h.Reset)

	return r
}

// GetState handles GET /api/filter
func (h *FilterHandler) GetState(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, success(h.service.State()))
}

// Dispatch handles POST /api/filter/actions
func (h *FilterHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var action filter.Action
	if err := h.validator.DecodeAndValidate(r, &action); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	state, err := h.service.Dispatch(r.Context(), action)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "filter updated",
		slog.String("action", string(action.Type)),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	render.JSON(w, r, success(state))
}

// Reset handles POST /api/filter/reset
func (h *FilterHandler) Reset(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, success(h.service.Reset(r.Context())))
}

// GetFacets handles GET /api/facets. The optional dataset query parameter
// overrides the configured dataset.
func (h *FilterHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	ds := h.service.DefaultDataset()
	if name := r.URL.Query().Get("dataset"); name != "" {
		parsed, err := services.ParseDataset(name)
		if err != nil {
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation("dataset", err.Error()))
			return
		}
		ds = parsed
	}

	options, err := h.service.Facets(ds)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status":  "success",
		"dataset": ds,
		"data":    options,
	})
}

// success wraps data in the common response envelope
func success(data interface{}) map[string]interface{} {
	return map[string]interface{}{
		"status": "success",
		"data":   data,
	}
}
