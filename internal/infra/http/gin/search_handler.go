package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"travelgo/internal/app/commands"
	searchapp "travelgo/internal/app/handlers/search"
	"travelgo/internal/domain/search"
)

type SearchHandler struct {
	Commands commands.Bus
}

type searchRequest struct {
	FormID string        `json:"form_id"`
	Values search.Values `json:"values"`
}

// Submit runs a standalone search form submission and returns its detail.
func (h SearchHandler) Submit(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}
	cmd := searchapp.SubmitSearchCommand{FormID: req.FormID, Values: &req.Values}
	detail, err := commands.Dispatch[searchapp.SubmitSearchCommand, search.Detail](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

var _ SearchHTTP = SearchHandler{}
