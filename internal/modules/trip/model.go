// README: Trip aggregate and its per-day expansion rows.
package trip

import "time"

type Trip struct {
	ID          int64     `json:"tripId"`
	UserID      int64     `json:"userId"`
	CountryCode string    `json:"countryCode"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Days        []Day     `json:"tripDays,omitempty"`
}

// Day is the storage-oriented projection of one calendar day of a trip.
// The pricing engine never reads these rows; it works from day counts.
type Day struct {
	ID           int64     `json:"id"`
	TripID       int64     `json:"tripId"`
	Date         time.Time `json:"date"`
	CountryCode1 string    `json:"countryCode1"`
	CountryCode2 *string   `json:"countryCode2"`
	MultiCountry bool      `json:"multiCountry"`
}
