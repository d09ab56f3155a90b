package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"travelgo/internal/app/catalog"
	"travelgo/internal/app/pages"
	"travelgo/internal/domain/search"
)

// PageHandler exposes live page views: the filter form, the search form and the shared picker.
type PageHandler struct {
	Pages *pages.Service
}

type priceRequest struct {
	Value *float64 `json:"value"`
}

type languageRequest struct {
	Lang string `json:"lang" binding:"required"`
}

type storedSearchResponse struct {
	Applied bool       `json:"applied"`
	Page    pages.View `json:"page"`
}

func (h PageHandler) Create(c *gin.Context) {
	view, err := h.Pages.Create(c.Request.Context(), c.Query("lang"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h PageHandler) Get(c *gin.Context) {
	respond(c, http.StatusOK)(h.Pages.Get(c.Request.Context(), c.Param("id")))
}

func (h PageHandler) Close(c *gin.Context) {
	if err := h.Pages.Close(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h PageHandler) SetFilters(c *gin.Context) {
	var changes catalog.Changes
	if err := c.ShouldBindJSON(&changes); err != nil {
		badBody(c, err)
		return
	}
	respond(c, http.StatusOK)(h.Pages.SetFilters(c.Request.Context(), c.Param("id"), changes))
}

// InputPrice answers 202: the list is recomputed once slider input settles.
func (h PageHandler) InputPrice(c *gin.Context) {
	var req priceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}
	if req.Value == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "value is required"})
		return
	}
	respond(c, http.StatusAccepted)(h.Pages.InputPrice(c.Request.Context(), c.Param("id"), *req.Value))
}

func (h PageHandler) ClearFilter(c *gin.Context) {
	respond(c, http.StatusOK)(h.Pages.ClearFilter(c.Request.Context(), c.Param("id"), c.Param("key")))
}

func (h PageHandler) ApplySearch(c *gin.Context) {
	var detail search.Detail
	if err := c.ShouldBindJSON(&detail); err != nil {
		badBody(c, err)
		return
	}
	respond(c, http.StatusOK)(h.Pages.ApplySearch(c.Request.Context(), c.Param("id"), detail))
}

// ApplyStoredSearch takes the raw payload another page left behind. Malformed payloads
// are not an error; the response reports whether anything was applied.
func (h PageHandler) ApplyStoredSearch(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		badBody(c, err)
		return
	}
	view, applied, err := h.Pages.ApplyStoredSearch(c.Request.Context(), c.Param("id"), raw)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, storedSearchResponse{Applied: applied, Page: view})
}

func (h PageHandler) SetLanguage(c *gin.Context) {
	var req languageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}
	respond(c, http.StatusOK)(h.Pages.SetLanguage(c.Request.Context(), c.Param("id"), req.Lang))
}

func (h PageHandler) SetSearchValues(c *gin.Context) {
	var values search.Values
	if err := c.ShouldBindJSON(&values); err != nil {
		badBody(c, err)
		return
	}
	respond(c, http.StatusOK)(h.Pages.SetSearchValues(c.Request.Context(), c.Param("id"), values))
}

// SubmitSearch submits the page search form. A body replaces the form values first.
func (h PageHandler) SubmitSearch(c *gin.Context) {
	var values *search.Values
	if c.Request.ContentLength > 0 {
		values = &search.Values{}
		if err := c.ShouldBindJSON(values); err != nil {
			badBody(c, err)
			return
		}
	}
	respond(c, http.StatusOK)(h.Pages.SubmitSearch(c.Request.Context(), c.Param("id"), values))
}

var _ PageHTTP = PageHandler{}

func respond(c *gin.Context, status int) func(pages.View, error) {
	return func(view pages.View, err error) {
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(status, view)
	}
}
