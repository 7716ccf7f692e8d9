// README: Recommendation output types: labeled top-3 items plus rationale.
package recommend

import "roamcost/internal/modules/simulation"

type Item struct {
	Label       string            `json:"label"`
	TotalCost   float64           `json:"totalCost"`
	Explanation string            `json:"explanation"`
	Details     simulation.Option `json:"details"`
}

type Recommendation struct {
	Top3      []Item `json:"top3"`
	Rationale string `json:"rationale"`
}
