// README: Pay-as-you-go pricing weighted by per-country day share.
package simulation

import (
	"math"
	"sort"

	"roamcost/internal/modules/catalog"
)

// pricePAYG costs the whole trip at per-country PAYG rates, each country
// weighted by its share of the total days. Countries without a rate entry
// contribute nothing. Currency follows the last matched rate entry; the
// engine assumes a single currency context per simulation.
func pricePAYG(countryDays map[string]int, totalDays int, needs Needs, rates map[string]catalog.RateEntry) Option {
	cost := 0.0
	currency := ""
	for _, cc := range sortedCodes(countryDays) {
		rate, ok := rates[cc]
		if !ok {
			continue
		}
		share := float64(countryDays[cc]) / float64(totalDays)
		currency = rate.Currency
		cost += needs.GB*1024*rate.DataPerMB*share +
			float64(needs.Minutes)*rate.VoicePerMin*share +
			float64(needs.SMS)*rate.SMSPerMsg*share
	}

	return Option{
		Kind:        KindPAYG,
		TotalCost:   round2(cost),
		Currency:    currency,
		CoverageHit: true,
		ValidityOk:  true,
	}
}

// sortedCodes fixes the iteration order over the country-day map so results
// are reproducible for a given itinerary.
func sortedCodes(countryDays map[string]int) []string {
	codes := make([]string, 0, len(countryDays))
	for cc := range countryDays {
		codes = append(codes, cc)
	}
	sort.Strings(codes)
	return codes
}

// round2 rounds to 2 decimal places, half away from zero. Applied once at
// the end of each cost computation; intermediate terms stay unrounded.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
