package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"incotermFinder/app/echo-server/metrics"
	"incotermFinder/business/incoterm"
	"incotermFinder/business/recommendation"
	"incotermFinder/internal/middleware"
	"incotermFinder/internal/rest"
	"incotermFinder/pkg/logger"
	pkgmetrics "incotermFinder/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.SetNop()
	pkgmetrics.Init()
	m.Run()
}

func newServer() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(middleware.TraceMiddleware())
	e.Use(metrics.Middleware())
	e.GET("/metrics", metrics.Handler())

	api := e.Group("/api/v1")
	SetupIncotermRoutes(api, rest.NewIncotermHandler(incoterm.NewIncotermService(), time.Second))
	SetupRecommendationRoutes(api, rest.NewRecommendationHandler(recommendation.NewRecommendationService(), time.Second))
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRoutes(t *testing.T) {
	e := newServer()

	tests := []struct {
		target string
		want   int
	}{
		{"/api/v1/incoterms", http.StatusOK},
		{"/api/v1/incoterms/compare?items=CIF,CIP", http.StatusOK},
		{"/api/v1/incoterms/DPU", http.StatusOK},
		{"/api/v1/wizard/questions", http.StatusOK},
		{"/api/v1/recommendations?t=sea&s=buyer&c=seller&i=optional&r=early", http.StatusOK},
		{"/api/v1/recommendations", http.StatusBadRequest},
		{"/api/v1/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		rec := get(e, tt.target)
		assert.Equal(t, tt.want, rec.Code, tt.target)
		assert.NotEmpty(t, rec.Header().Get(middleware.HeaderRequestID), tt.target)
	}
}

func TestRoutes_RecordMetrics(t *testing.T) {
	e := newServer()
	counter := pkgmetrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/incoterms/:code", "200")
	before := testutil.ToFloat64(counter)

	get(e, "/api/v1/incoterms/FOB")
	get(e, "/api/v1/incoterms/EXW")

	assert.Equal(t, before+2, testutil.ToFloat64(counter))

	get(e, "/api/v1/recommendations?t=air&s=seller&c=seller&i=required&r=middle")

	rec := get(e, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "incoterm_http_requests_total")
	assert.Contains(t, rec.Body.String(), "incoterm_recommend_requests_total")
}
