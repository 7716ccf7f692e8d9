// README: Simulation service; runs one stateless trip-cost simulation per call.
package simulation

import (
	"context"
	"time"

	"roamcost/internal/metrics"
	"roamcost/internal/modules/catalog"
)

// CatalogSource supplies one consistent reference-data snapshot per
// simulation call.
type CatalogSource interface {
	Snapshot(ctx context.Context) (*catalog.Snapshot, error)
}

type Service struct {
	catalog CatalogSource
	metrics *metrics.Collector
}

// NewService builds the engine. m may be nil (no metrics, e.g. in tests).
func NewService(cat CatalogSource, m *metrics.Collector) *Service {
	return &Service{catalog: cat, metrics: m}
}

// Simulate prices the itinerary both as pay-as-you-go and against every
// applicable prepaid pack, and returns the options ranked by total cost.
// The engine holds no state between calls.
func (s *Service) Simulate(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	totalDays, countryDays, needs, err := Aggregate(req.Legs, req.Profile)
	if err != nil {
		s.count("invalid")
		return nil, err
	}

	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		s.count("error")
		return nil, err
	}
	countries := snap.CountryIndex()
	rates := snap.RateIndex()

	payg := pricePAYG(countryDays, totalDays, needs, rates)

	var packOptions []Option
	var warnings []string
	for _, pack := range snap.Packs {
		opt, packWarnings, ok := pricePack(pack, countryDays, totalDays, needs, rates, countries)
		if !ok {
			continue
		}
		packOptions = append(packOptions, opt)
		warnings = append(warnings, packWarnings...)
	}

	result := &Result{
		Days:     totalDays,
		Needs:    needs,
		Options:  rankOptions(payg, packOptions),
		Warnings: warnings,
	}

	s.count("ok")
	if s.metrics != nil {
		s.metrics.SimulationDuration.Observe(time.Since(start).Seconds())
		s.metrics.OptionsRanked.Observe(float64(len(result.Options)))
	}
	return result, nil
}

func (s *Service) count(outcome string) {
	if s.metrics != nil {
		s.metrics.Simulations.WithLabelValues(outcome).Inc()
	}
}
