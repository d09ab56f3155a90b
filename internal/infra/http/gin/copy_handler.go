package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"travelgo/internal/app/dto"
	"travelgo/internal/app/handlers/uicopy"
	"travelgo/internal/app/queries"
)

type CopyHandler struct {
	Queries queries.Bus
}

func (h CopyHandler) Block(c *gin.Context) {
	query := uicopy.GetBlockQuery{Region: c.Param("region"), Lang: c.Query("lang")}
	result, err := queries.Ask[uicopy.GetBlockQuery, dto.CopyBlock](c.Request.Context(), h.Queries, query)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ CopyHTTP = CopyHandler{}
