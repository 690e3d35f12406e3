package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dionisvl/my.traffic-lights/internal/game"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// abortWithError maps a rejected command onto an HTTP status. Typed failures
// stay client errors; anything else is a server fault.
func abortWithError(c *gin.Context, err error) {
	switch game.CodeOf(err) {
	case game.CodeNotFound:
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case game.CodeForbidden:
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case "":
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
}
