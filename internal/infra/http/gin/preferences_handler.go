package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"travelgo/internal/app/commands"
	"travelgo/internal/app/dto"
	prefsapp "travelgo/internal/app/handlers/preferences"
	"travelgo/internal/app/queries"
)

type PreferencesHandler struct {
	Commands commands.Bus
	Queries  queries.Bus
}

type preferencesRequest struct {
	Theme string `json:"theme"`
	Lang  string `json:"lang"`
}

func (h PreferencesHandler) Get(c *gin.Context) {
	query := prefsapp.GetPreferencesQuery{ClientID: c.Param("client")}
	result, err := queries.Ask[prefsapp.GetPreferencesQuery, dto.Preferences](c.Request.Context(), h.Queries, query)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h PreferencesHandler) Update(c *gin.Context) {
	var req preferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c, err)
		return
	}
	cmd := prefsapp.UpdatePreferencesCommand{ClientID: c.Param("client"), Theme: req.Theme, Lang: req.Lang}
	result, err := commands.Dispatch[prefsapp.UpdatePreferencesCommand, dto.Preferences](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ PreferencesHTTP = PreferencesHandler{}
