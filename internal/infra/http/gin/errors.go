package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"travelgo/internal/app/catalog"
	prefsapp "travelgo/internal/app/handlers/preferences"
	toursapp "travelgo/internal/app/handlers/tours"
	"travelgo/internal/app/handlers/uicopy"
	"travelgo/internal/app/pages"
	"travelgo/internal/domain/datepicker"
	"travelgo/internal/domain/preferences"
	"travelgo/internal/domain/search"
	"travelgo/internal/domain/tours"
	"travelgo/internal/infra/resources"
)

var (
	notFound = []error{
		pages.ErrPageNotFound,
		tours.ErrTourNotFound,
		uicopy.ErrBlockNotFound,
		datepicker.ErrNotRegistered,
	}
	badRequest = []error{
		catalog.ErrUnknownFilter,
		toursapp.ErrMissingTourID,
		uicopy.ErrMissingRegion,
		prefsapp.ErrMissingClient,
		preferences.ErrInvalidTheme,
		preferences.ErrInvalidLang,
		search.ErrMalformedDetail,
		datepicker.ErrInvalidDate,
		datepicker.ErrPastDate,
		datepicker.ErrNotFocusable,
	}
	conflict = []error{
		datepicker.ErrClosed,
	}
)

func statusFor(err error) int {
	switch {
	case matchesAny(err, notFound):
		return http.StatusNotFound
	case matchesAny(err, badRequest):
		return http.StatusBadRequest
	case matchesAny(err, conflict):
		return http.StatusConflict
	case errors.Is(err, resources.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func writeError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func badBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
}
