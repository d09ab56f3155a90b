package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"travelgo/internal/app/pages"
)

// PickerHandler drives the date-range picker of a page.
type PickerHandler struct {
	Pages *pages.Service
}

type openRequest struct {
	Focused    string   `json:"focused"`
	Focusables []string `json:"focusables"`
}

type clickRequest struct {
	Date string `json:"date" binding:"required"`
}

type inputsRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type keyRequest struct {
	Key   string `json:"key" binding:"required"`
	Shift bool   `json:"shift"`
}

func (h PickerHandler) Get(c *gin.Context) {
	view, err := h.Pages.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.Picker)
}

func (h PickerHandler) Open(c *gin.Context) {
	var req openRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badBody(c, err)
			return
		}
	}
	respond(c, http.StatusOK)(h.Pages.OpenPicker(c.Request.Context(), c.Param("id"), c.Param("form"), req.Focused, req.Focusables))
}

func (h PickerHandler) Click(c *gin.Context) {
	var req clickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}
	respond(c, http.StatusOK)(h.Pages.ClickDay(c.Request.Context(), c.Param("id"), req.Date))
}

func (h PickerHandler) Inputs(c *gin.Context) {
	var req inputsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}
	respond(c, http.StatusOK)(h.Pages.EditPickerInputs(c.Request.Context(), c.Param("id"), req.Start, req.End))
}

func (h PickerHandler) Apply(c *gin.Context) {
	respond(c, http.StatusOK)(h.Pages.ApplyPicker(c.Request.Context(), c.Param("id")))
}

func (h PickerHandler) Cancel(c *gin.Context) {
	respond(c, http.StatusOK)(h.Pages.CancelPicker(c.Request.Context(), c.Param("id")))
}

func (h PickerHandler) Key(c *gin.Context) {
	var req keyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}
	respond(c, http.StatusOK)(h.Pages.PickerKey(c.Request.Context(), c.Param("id"), req.Key, req.Shift))
}

type focusRequest struct {
	Element string `json:"element" binding:"required"`
}

func (h PickerHandler) Focus(c *gin.Context) {
	var req focusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}
	respond(c, http.StatusOK)(h.Pages.FocusPicker(c.Request.Context(), c.Param("id"), req.Element))
}

var _ PickerHTTP = PickerHandler{}
