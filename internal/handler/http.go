package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ecom-labs/order-total-service/internal/entities"
	"github.com/ecom-labs/order-total-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
)

const instructions = "Try POSTing data to /compute such as: `curl localhost:8002/compute -XPOST -d '...'`"

const (
	msgBadOrder        = "The request body is not a valid order."
	msgRateUnreachable = "Cannot connect to sales tax rate service"
	msgRateUnreadable  = "Cannot read response from sales tax rate service"
	msgNoRateForZip    = "The zip code in the order does not have a corresponding sales tax rate."
	msgInternal        = "internal server error"
)

// maxBodySize bounds inbound payloads; a real order is a few hundred bytes.
const maxBodySize = 1 << 20

type OrderComputer interface {
	ComputeTotal(ctx context.Context, order entities.Order) (entities.Order, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderComputer
}

func NewHTTPHandler(logger *slog.Logger, svc OrderComputer) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

// Init registers the full routing table. Anything outside of it is a 404
// with an empty body, including known paths hit with the wrong method.
func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/", h.Instructions)
	r.Options("/compute", h.Preflight)
	r.Post("/compute", h.Compute)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
}

// Instructions serves the usage hint at the root path.
func (h *HTTPHandler) Instructions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(instructions))
}

// Preflight answers the CORS pre-flight for /compute.
func (h *HTTPHandler) Preflight(w http.ResponseWriter, r *http.Request) {
	corsHeaders(w)
	w.WriteHeader(http.StatusOK)
}

// Compute runs the pipeline for POST /compute: decode order, look up the
// sales tax rate for its zip, fill in the total and echo the order back.
// Every failure path produces a response envelope; nothing here may take
// the process down.
func (h *HTTPHandler) Compute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	corsHeaders(w)

	computesInProgress.Inc()
	defer computesInProgress.Dec()
	timer := prometheus.NewTimer(computeDuration)
	defer timer.ObserveDuration()

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var payload OrderPayload
	if err := utils.DecodeBody(r, &payload); err != nil {
		computeRequestsTotal.WithLabelValues("bad_payload").Inc()
		utils.WriteError(w, msgBadOrder, http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		computeRequestsTotal.WithLabelValues("bad_payload").Inc()
		utils.WriteError(w, msgBadOrder, http.StatusBadRequest)
		return
	}

	order, err := h.svc.ComputeTotal(ctx, OrderJSONToEntity(payload))

	switch {
	case errors.Is(err, entities.ErrRateServiceUnreachable):
		computeRequestsTotal.WithLabelValues("unreachable").Inc()
		utils.WriteError(w, msgRateUnreachable, http.StatusInternalServerError)
		return
	case errors.Is(err, entities.ErrRateServiceUnreadable):
		computeRequestsTotal.WithLabelValues("unreadable").Inc()
		utils.WriteError(w, msgRateUnreadable, http.StatusInternalServerError)
		return
	case errors.Is(err, entities.ErrNoRateForZip):
		computeRequestsTotal.WithLabelValues("no_rate").Inc()
		utils.WriteError(w, msgNoRateForZip, http.StatusBadRequest)
		return
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to compute total", slog.Any("error", err))
		computeRequestsTotal.WithLabelValues("internal").Inc()
		utils.WriteError(w, msgInternal, http.StatusInternalServerError)
		return
	}

	computeRequestsTotal.WithLabelValues("ok").Inc()
	utils.WriteJSONIndent(w, OrderEntityToJSON(order), http.StatusOK)
}

// corsHeaders is attached to every /compute response, errors included, so
// browser callers can always read the body cross-origin.
func corsHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "api,Keep-Alive,User-Agent,Content-Type")
}
