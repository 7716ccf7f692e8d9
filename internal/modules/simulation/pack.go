// README: Prepaid pack pricing: coverage matching, pack count, overflow and uncovered-day blending.
package simulation

import (
	"math"
	"strings"

	"roamcost/internal/modules/catalog"
)

// pricePack costs a single pack against the itinerary. ok is false when the
// pack covers none of the itinerary countries (or has no usable validity),
// in which case the pack yields no option at all.
func pricePack(
	pack catalog.Pack,
	countryDays map[string]int,
	totalDays int,
	needs Needs,
	rates map[string]catalog.RateEntry,
	countries map[string]catalog.Country,
) (opt Option, warnings []string, ok bool) {
	if pack.ValidityDays <= 0 {
		return Option{}, nil, false
	}

	codes := sortedCodes(countryDays)

	// Coverage: a region pack covers a country whose region matches its
	// coverage value; a country pack matches the code directly. Any other
	// scope never covers.
	coveredDays := 0
	anyCovered := false
	for _, cc := range codes {
		if packCovers(pack, cc, countries) {
			anyCovered = true
			coveredDays += countryDays[cc]
		}
	}
	if !anyCovered {
		return Option{}, nil, false
	}

	validityOk := totalDays <= pack.ValidityDays
	nPacks := int(math.Ceil(float64(totalDays) / float64(pack.ValidityDays)))
	base := pack.Price * float64(nPacks)

	// Blended PAYG rate: day-weighted average over every itinerary country
	// with a known rate, independent of coverage. Prices both overflow and
	// uncovered usage.
	var blendedData, blendedVoice, blendedSMS float64
	for _, cc := range codes {
		rate, found := rates[cc]
		if !found {
			continue
		}
		share := float64(countryDays[cc]) / float64(totalDays)
		blendedData += rate.DataPerMB * share
		blendedVoice += rate.VoicePerMin * share
		blendedSMS += rate.SMSPerMsg * share
	}

	overGB := math.Max(0, needs.GB-float64(nPacks*pack.DataGB))
	overMin := math.Max(0, float64(needs.Minutes-nPacks*pack.VoiceMin))
	overSMS := math.Max(0, float64(needs.SMS-nPacks*pack.SMS))
	overCost := overGB*1024*blendedData + overMin*blendedVoice + overSMS*blendedSMS

	coveredShare := float64(coveredDays) / float64(totalDays)
	uncoveredShare := 1.0 - coveredShare
	uncoveredCost := needs.GB*1024*blendedData*uncoveredShare +
		float64(needs.Minutes)*blendedVoice*uncoveredShare +
		float64(needs.SMS)*blendedSMS*uncoveredShare

	if !validityOk {
		warnings = append(warnings, "pack validity shorter than trip: "+pack.Name)
	}
	if coveredDays < totalDays {
		warnings = append(warnings, "partial coverage: "+pack.Name)
	}

	packID := pack.ID
	opt = Option{
		Kind:        KindPack,
		PackID:      &packID,
		PackCount:   nPacks,
		TotalCost:   round2(base + overCost + uncoveredCost),
		Currency:    pack.Currency,
		CoverageHit: true,
		ValidityOk:  validityOk,
		Overflow: &Overflow{
			OverDataCost:  round2(overGB * 1024 * blendedData),
			OverVoiceCost: round2(overMin * blendedVoice),
			OverSMSCost:   round2(overSMS * blendedSMS),
		},
	}
	return opt, warnings, true
}

func packCovers(pack catalog.Pack, countryCode string, countries map[string]catalog.Country) bool {
	switch pack.CoverageScope {
	case catalog.ScopeRegion:
		c, found := countries[countryCode]
		return found && strings.EqualFold(pack.CoverageValue, c.Region)
	case catalog.ScopeCountry:
		return strings.EqualFold(pack.CoverageValue, countryCode)
	default:
		return false
	}
}
