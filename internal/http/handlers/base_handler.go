// README: Base handler utilities (JSON helpers, error mapping, date parsing).
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"roamcost/internal/modules/catalog"
	"roamcost/internal/modules/checkout"
	"roamcost/internal/modules/simulation"
	"roamcost/internal/modules/trip"
	"roamcost/internal/modules/user"
)

const dateLayout = "2006-01-02"

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{Error: msg})
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, simulation.ErrInvalidRange),
		errors.Is(err, simulation.ErrEmptyItinerary),
		errors.Is(err, trip.ErrBadRequest),
		errors.Is(err, checkout.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, trip.ErrNotFound),
		errors.Is(err, user.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func parseDate(v string) (time.Time, error) {
	return time.Parse(dateLayout, v)
}
