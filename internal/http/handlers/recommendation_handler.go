// README: Recommendation handler; returns the explained top-3 options.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamcost/internal/modules/recommend"
)

type RecommendationHandler struct {
	rec *recommend.Service
}

func NewRecommendationHandler(svc *recommend.Service) *RecommendationHandler {
	return &RecommendationHandler{rec: svc}
}

func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var req simulationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	engineReq, err := req.toEngineRequest()
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid date: expected yyyy-mm-dd")
		return
	}

	rec, err := h.rec.RecommendTop3(c.Request.Context(), engineReq)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}
