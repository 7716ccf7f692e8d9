// README: Trip handlers for create-with-days and listing.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roamcost/internal/modules/trip"
)

type TripHandler struct {
	trips *trip.Service
}

func NewTripHandler(svc *trip.Service) *TripHandler {
	return &TripHandler{trips: svc}
}

type createTripReq struct {
	UserID      int64  `json:"userId"`
	CountryCode string `json:"countryCode"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

func (h *TripHandler) Create(c *gin.Context) {
	var req createTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid date: expected yyyy-mm-dd")
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid date: expected yyyy-mm-dd")
		return
	}

	created, err := h.trips.CreateWithDays(c.Request.Context(), trip.Trip{
		UserID:      req.UserID,
		CountryCode: req.CountryCode,
		StartDate:   start,
		EndDate:     end,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *TripHandler) ListAll(c *gin.Context) {
	trips, err := h.trips.ListAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

func (h *TripHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid user id")
		return
	}
	trips, err := h.trips.ListByUser(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}
