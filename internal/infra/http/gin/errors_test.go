package ginserver

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	gin "github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"travelgo/internal/app/catalog"
	"travelgo/internal/app/pages"
	"travelgo/internal/domain/datepicker"
	"travelgo/internal/domain/tours"
	"travelgo/internal/infra/config"
	"travelgo/internal/infra/obs"
	"travelgo/internal/infra/resources"
)

func TestStatusFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want int
	}{
		{pages.ErrPageNotFound, http.StatusNotFound},
		{fmt.Errorf("lookup: %w", tours.ErrTourNotFound), http.StatusNotFound},
		{catalog.ErrUnknownFilter, http.StatusBadRequest},
		{datepicker.ErrPastDate, http.StatusBadRequest},
		{datepicker.ErrClosed, http.StatusConflict},
		{fmt.Errorf("%w: tours: %w", resources.ErrUnavailable, errors.New("dial")), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFor(tc.err), tc.err.Error())
	}
}

func TestRouterSkipsMissingHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(config.Config{}, obs.Middleware{}, obs.HealthHandlers{}, Handlers{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tours", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.Config{CORSOrigins: []string{"https://travel.example"}}
	router := NewRouter(cfg, obs.Middleware{}, obs.HealthHandlers{}, Handlers{Tours: TourHandler{}})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/tours", nil)
	req.Header.Set("Origin", "https://travel.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://travel.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestParseFloat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 450.5, parseFloat(" 450.5 "))
	assert.Zero(t, parseFloat("cheap"))
	assert.Zero(t, parseFloat("-10"))
	assert.Zero(t, parseFloat(""))
}
