// README: Simulation handler; parses the itinerary request and runs one simulation.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamcost/internal/modules/simulation"
)

type SimulationHandler struct {
	sim *simulation.Service
}

func NewSimulationHandler(svc *simulation.Service) *SimulationHandler {
	return &SimulationHandler{sim: svc}
}

type legReq struct {
	CountryCode string `json:"countryCode"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

type profileReq struct {
	AvgDailyMB  int `json:"avgDailyMb"`
	AvgDailyMin int `json:"avgDailyMin"`
	AvgDailySMS int `json:"avgDailySms"`
}

type simulationReq struct {
	UserID  int64      `json:"userId"`
	Trips   []legReq   `json:"trips"`
	Profile profileReq `json:"profile"`
}

// toEngineRequest converts the wire format into the engine's input types.
// Dates use the yyyy-mm-dd layout.
func (r simulationReq) toEngineRequest() (simulation.Request, error) {
	legs := make([]simulation.Leg, 0, len(r.Trips))
	for _, l := range r.Trips {
		start, err := parseDate(l.StartDate)
		if err != nil {
			return simulation.Request{}, err
		}
		end, err := parseDate(l.EndDate)
		if err != nil {
			return simulation.Request{}, err
		}
		legs = append(legs, simulation.Leg{
			CountryCode: l.CountryCode,
			StartDate:   start,
			EndDate:     end,
		})
	}
	return simulation.Request{
		UserID: r.UserID,
		Legs:   legs,
		Profile: simulation.UsageProfile{
			AvgDailyMB:  r.Profile.AvgDailyMB,
			AvgDailyMin: r.Profile.AvgDailyMin,
			AvgDailySMS: r.Profile.AvgDailySMS,
		},
	}, nil
}

type simulationSummary struct {
	Days      int              `json:"days"`
	TotalNeed simulation.Needs `json:"totalNeed"`
}

type simulationResp struct {
	Summary  simulationSummary   `json:"summary"`
	Options  []simulation.Option `json:"options"`
	Warnings []string            `json:"warnings"`
}

func (h *SimulationHandler) Simulate(c *gin.Context) {
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

	result, err := h.sim.Simulate(c.Request.Context(), engineReq)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, simulationResp{
		Summary:  simulationSummary{Days: result.Days, TotalNeed: result.Needs},
		Options:  result.Options,
		Warnings: result.Warnings,
	})
}
