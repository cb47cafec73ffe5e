package app_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecom-labs/order-total-service/internal/app"
	"github.com/ecom-labs/order-total-service/internal/config"
	"github.com/ecom-labs/order-total-service/internal/entities"
	"github.com/ecom-labs/order-total-service/internal/handler"
	"github.com/stretchr/testify/assert"
)

type stubComputer struct{}

func (stubComputer) ComputeTotal(_ context.Context, order entities.Order) (entities.Order, error) {
	order.Total = order.Subtotal
	return order, nil
}

func newTestApp(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	a := app.New(logger, config.New())
	a.SetHTTPHandlers(handler.NewHTTPHandler(logger, stubComputer{}))
	return a.Handler()
}

// A browser preflight is answered by the cors middleware before the
// routing table sees it; a plain OPTIONS probe falls through to the
// handler. Both must come back 200, empty, CORS-bearing.
func TestApp_ComputePreflight(t *testing.T) {
	srv := newTestApp(t)

	t.Run("browser preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/compute", nil)
		req.Header.Set("Origin", "http://shop.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		rr := httptest.NewRecorder()
		srv.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Body.String())
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})

	t.Run("plain options probe", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/compute", nil)

		rr := httptest.NewRecorder()
		srv.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Body.String())
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET, POST, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "api,Keep-Alive,User-Agent,Content-Type", rr.Header().Get("Access-Control-Allow-Headers"))
	})
}

func TestApp_UnroutedStays404ThroughChain(t *testing.T) {
	srv := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, rr.Body.String())
}
