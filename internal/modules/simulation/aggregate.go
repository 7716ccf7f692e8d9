// README: Day-span calculation and itinerary-wide usage aggregation.
package simulation

// DaysInclusive returns the inclusive day count of a leg: both the start
// and end dates count as travel days.
func DaysInclusive(leg Leg) (int, error) {
	if leg.EndDate.Before(leg.StartDate) {
		return 0, ErrInvalidRange
	}
	return int(leg.EndDate.Sub(leg.StartDate).Hours()/24) + 1, nil
}

// Aggregate combines the legs into the total trip length, a per-country day
// distribution, and the trip-wide usage needs. Day counts accumulate per
// leg; overlapping legs are not deduplicated, so a country visited twice
// counts twice.
func Aggregate(legs []Leg, profile UsageProfile) (totalDays int, countryDays map[string]int, needs Needs, err error) {
	if len(legs) == 0 {
		return 0, nil, Needs{}, ErrEmptyItinerary
	}

	countryDays = make(map[string]int)
	for _, leg := range legs {
		d, derr := DaysInclusive(leg)
		if derr != nil {
			return 0, nil, Needs{}, derr
		}
		totalDays += d
		countryDays[leg.CountryCode] += d
	}

	needs = Needs{
		GB:      float64(profile.AvgDailyMB) * float64(totalDays) / 1024.0,
		Minutes: profile.AvgDailyMin * totalDays,
		SMS:     profile.AvgDailySMS * totalDays,
	}
	return totalDays, countryDays, needs, nil
}
