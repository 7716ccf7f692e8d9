// README: Recommendation explainer; labels the top 3 ranked options.
package recommend

import (
	"context"
	"fmt"

	"roamcost/internal/modules/catalog"
	"roamcost/internal/modules/simulation"
)

const (
	paygLabel       = "PAYG (per-country single rate)"
	paygExplanation = "Usage-based billing with no pack purchase."
	rationale       = "Ranked by total cost; coverage/validity preferred on ties."
)

// Simulator runs one trip-cost simulation.
type Simulator interface {
	Simulate(ctx context.Context, req simulation.Request) (*simulation.Result, error)
}

// PackFinder resolves pack names for labeling. A miss is not fatal.
type PackFinder interface {
	FindPack(ctx context.Context, id int64) (*catalog.Pack, error)
}

type Service struct {
	sim   Simulator
	packs PackFinder
}

func NewService(sim Simulator, packs PackFinder) *Service {
	return &Service{sim: sim, packs: packs}
}

// RecommendTop3 simulates the itinerary and explains the three cheapest
// options (fewer when the catalog yields fewer).
func (s *Service) RecommendTop3(ctx context.Context, req simulation.Request) (*Recommendation, error) {
	result, err := s.sim.Simulate(ctx, req)
	if err != nil {
		return nil, err
	}

	top := make([]Item, 0, 3)
	for _, opt := range result.Options {
		if len(top) == 3 {
			break
		}
		top = append(top, s.explain(ctx, opt))
	}

	return &Recommendation{Top3: top, Rationale: rationale}, nil
}

func (s *Service) explain(ctx context.Context, opt simulation.Option) Item {
	if opt.Kind == simulation.KindPAYG {
		return Item{
			Label:       paygLabel,
			TotalCost:   opt.TotalCost,
			Explanation: paygExplanation,
			Details:     opt,
		}
	}

	name := fmt.Sprintf("Pack#%d", *opt.PackID)
	if pack, err := s.packs.FindPack(ctx, *opt.PackID); err == nil {
		name = pack.Name
	}

	validity := "validity sufficient"
	if !opt.ValidityOk {
		validity = "validity short, multiple packs suggested"
	}
	coverage := "coverage adequate"
	if !opt.CoverageHit {
		coverage = "partial coverage"
	}

	return Item{
		Label:       fmt.Sprintf("%s x%d (%s)", name, opt.PackCount, opt.Currency),
		TotalCost:   opt.TotalCost,
		Explanation: validity + ", " + coverage,
		Details:     opt,
	}
}
