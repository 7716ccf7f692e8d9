// README: Reference data models: countries, PAYG rates, and prepaid packs.
package catalog

// Coverage scopes a pack can declare. Anything else never covers.
const (
	ScopeRegion  = "region"
	ScopeCountry = "country"
)

type Country struct {
	Code   string `json:"countryCode"`
	Name   string `json:"countryName"`
	Region string `json:"region"`
}

type RateEntry struct {
	CountryCode string  `json:"countryCode"`
	DataPerMB   float64 `json:"dataPerMb"`
	VoicePerMin float64 `json:"voicePerMin"`
	SMSPerMsg   float64 `json:"smsPerMsg"`
	Currency    string  `json:"currency"`
}

type Pack struct {
	ID            int64   `json:"packId"`
	Name          string  `json:"name"`
	CoverageScope string  `json:"coverageType"`
	CoverageValue string  `json:"coverage"`
	DataGB        int     `json:"dataGb"`
	VoiceMin      int     `json:"voiceMin"`
	SMS           int     `json:"sms"`
	Price         float64 `json:"price"`
	ValidityDays  int     `json:"validityDays"`
	Currency      string  `json:"currency"`
}

// Snapshot is a fully materialized, read-only view of the reference data.
// One snapshot is taken per simulation; the engine never sees a partial read.
type Snapshot struct {
	Version   int64       `json:"version"`
	Countries []Country   `json:"countries"`
	Rates     []RateEntry `json:"rates"`
	Packs     []Pack      `json:"packs"`
}

// CountryIndex returns the countries keyed by code.
func (s *Snapshot) CountryIndex() map[string]Country {
	idx := make(map[string]Country, len(s.Countries))
	for _, c := range s.Countries {
		idx[c.Code] = c
	}
	return idx
}

// RateIndex returns the PAYG rates keyed by country code.
func (s *Snapshot) RateIndex() map[string]RateEntry {
	idx := make(map[string]RateEntry, len(s.Rates))
	for _, r := range s.Rates {
		idx[r.CountryCode] = r
	}
	return idx
}
