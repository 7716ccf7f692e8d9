// README: Simulation engine types: itinerary input, aggregate needs, and costed options.
package simulation

import (
	"errors"
	"time"
)

var (
	ErrInvalidRange   = errors.New("leg end date precedes start date")
	ErrEmptyItinerary = errors.New("itinerary has no legs")
)

// Leg is one country stay within an itinerary. Dates are inclusive on both
// ends and owned by the caller for the duration of a simulation call.
type Leg struct {
	CountryCode string
	StartDate   time.Time
	EndDate     time.Time
}

// UsageProfile holds per-day consumption rates.
type UsageProfile struct {
	AvgDailyMB  int
	AvgDailyMin int
	AvgDailySMS int
}

// Request is the full input of one simulation call.
type Request struct {
	UserID  int64
	Legs    []Leg
	Profile UsageProfile
}

// Needs is the aggregate requirement for the whole trip.
type Needs struct {
	GB      float64 `json:"gb"`
	Minutes int     `json:"min"`
	SMS     int     `json:"sms"`
}

type OptionKind string

const (
	KindPAYG OptionKind = "payg"
	KindPack OptionKind = "pack"
)

// Overflow carries the cost of usage beyond a pack's combined allowance,
// priced at blended PAYG rates. Components are rounded to 2 decimals.
type Overflow struct {
	OverDataCost  float64 `json:"overDataCost"`
	OverVoiceCost float64 `json:"overVoiceCost"`
	OverSMSCost   float64 `json:"overSmsCost"`
}

// Option is one costed roaming choice. Never mutated after creation.
type Option struct {
	Kind        OptionKind `json:"kind"`
	PackID      *int64     `json:"packId"`
	PackCount   int        `json:"nPacks"`
	TotalCost   float64    `json:"totalCost"`
	Currency    string     `json:"currency"`
	CoverageHit bool       `json:"coverageHit"`
	ValidityOk  bool       `json:"validityOk"`
	Overflow    *Overflow  `json:"overflow"`
}

// Result is the terminal output of one simulation. Options are sorted
// ascending by total cost. Not persisted.
type Result struct {
	Days     int      `json:"days"`
	Needs    Needs    `json:"totalNeed"`
	Options  []Option `json:"options"`
	Warnings []string `json:"warnings"`
}
