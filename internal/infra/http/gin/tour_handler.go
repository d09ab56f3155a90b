package ginserver

import (
	"net/http"
	"strconv"
	"strings"

	gin "github.com/gin-gonic/gin"

	"travelgo/internal/app/dto"
	toursapp "travelgo/internal/app/handlers/tours"
	"travelgo/internal/app/queries"
	"travelgo/internal/domain/tours"
)

// TourHandler wires tour queries to HTTP.
type TourHandler struct {
	Queries queries.Bus
}

// Catalog filters the collection statelessly; query parameters mirror the filter form.
func (h TourHandler) Catalog(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "tour handler unavailable"})
		return
	}
	query := toursapp.SearchCatalogQuery{
		Lang: c.Query("lang"),
		Filters: tours.FilterState{
			Country:     c.Query("country"),
			Price:       parseFloat(c.Query("price")),
			Days:        c.Query("days"),
			PeriodStart: c.Query("periodStart"),
			PeriodEnd:   c.Query("periodEnd"),
			People:      c.Query("people"),
			Rating:      c.Query("rating"),
		},
	}
	result, err := queries.Ask[toursapp.SearchCatalogQuery, dto.TourCatalog](c.Request.Context(), h.Queries, query)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h TourHandler) Detail(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "tour handler unavailable"})
		return
	}
	query := toursapp.GetTourQuery{
		ID:    c.Param("id"),
		Lang:  c.Query("lang"),
		Start: c.Query("start"),
		End:   c.Query("end"),
	}
	result, err := queries.Ask[toursapp.GetTourQuery, dto.TourDetail](c.Request.Context(), h.Queries, query)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ TourHTTP = TourHandler{}

// parseFloat mirrors numeric form coercion: anything unparsable or negative is 0.
func parseFloat(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}
