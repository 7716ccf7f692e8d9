// README: Tests for pack pricing: coverage, pack count, overflow, uncovered blending.
package simulation

import (
	"strings"
	"testing"

	"roamcost/internal/modules/catalog"
)

var testCountries = map[string]catalog.Country{
	"DE": {Code: "DE", Name: "Germany", Region: "Europe"},
	"FR": {Code: "FR", Name: "France", Region: "Europe"},
	"US": {Code: "US", Name: "United States", Region: "Americas"},
}

func europePack() catalog.Pack {
	return catalog.Pack{
		ID: 201, Name: "Europe 5GB",
		CoverageScope: catalog.ScopeRegion, CoverageValue: "Europe",
		DataGB: 5, VoiceMin: 50, SMS: 50,
		Price: 19.9, ValidityDays: 7, Currency: "EUR",
	}
}

func TestPricePackFullCoverage(t *testing.T) {
	needs := Needs{GB: 3.515625, Minutes: 60, SMS: 12}
	opt, warnings, ok := pricePack(europePack(), map[string]int{"DE": 6}, 6, needs, testRates, testCountries)
	if !ok {
		t.Fatal("expected pack to be applicable")
	}
	if opt.PackCount != 1 || !opt.ValidityOk {
		t.Fatalf("expected single valid pack, got %+v", opt)
	}
	// base 19.9 + overflow 10 min * 0.25 = 22.4
	if opt.TotalCost != 22.4 {
		t.Fatalf("TotalCost = %v, want 22.4", opt.TotalCost)
	}
	if opt.Overflow == nil {
		t.Fatal("expected overflow breakdown")
	}
	if opt.Overflow.OverDataCost != 0 || opt.Overflow.OverVoiceCost != 2.5 || opt.Overflow.OverSMSCost != 0 {
		t.Fatalf("overflow = %+v, want voice 2.5 only", opt.Overflow)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if opt.PackID == nil || *opt.PackID != 201 {
		t.Fatalf("packId = %v, want 201", opt.PackID)
	}
}

func TestPricePackMultiPackValidity(t *testing.T) {
	mini := catalog.Pack{
		ID: 203, Name: "Europe Mini",
		CoverageScope: catalog.ScopeRegion, CoverageValue: "Europe",
		DataGB: 1, VoiceMin: 10, SMS: 10,
		Price: 6.9, ValidityDays: 3, Currency: "EUR",
	}
	needs := Needs{GB: 3.515625, Minutes: 60, SMS: 12}
	opt, warnings, ok := pricePack(mini, map[string]int{"DE": 6}, 6, needs, testRates, testCountries)
	if !ok {
		t.Fatal("expected pack to be applicable")
	}
	if opt.PackCount != 2 {
		t.Fatalf("PackCount = %d, want 2", opt.PackCount)
	}
	if opt.ValidityOk {
		t.Fatal("expected validityOk=false for 6-day trip on a 3-day pack")
	}
	// base 13.8 + data overflow 1.515625 GB * 1024 * 0.05 + voice overflow 40 * 0.25 = 101.4
	if opt.TotalCost != 101.4 {
		t.Fatalf("TotalCost = %v, want 101.4", opt.TotalCost)
	}
	if !containsWarning(warnings, "pack validity shorter than trip: Europe Mini") {
		t.Fatalf("missing validity warning, got %v", warnings)
	}
}

func TestPricePackPartialCoverage(t *testing.T) {
	needs := Needs{GB: 5.859375, Minutes: 100, SMS: 20}
	countryDays := map[string]int{"DE": 6, "US": 4}

	opt, warnings, ok := pricePack(europePack(), countryDays, 10, needs, testRates, testCountries)
	if !ok {
		t.Fatal("expected pack to be applicable")
	}
	if opt.PackCount != 2 || opt.ValidityOk {
		t.Fatalf("expected 2 packs with short validity, got %+v", opt)
	}
	// base 39.8 + uncovered 0.4 share at blended rates (data .07, voice .31, sms .14):
	// 6000*.07*.4 + 100*.31*.4 + 20*.14*.4 = 181.52
	if opt.TotalCost != 221.32 {
		t.Fatalf("TotalCost = %v, want 221.32", opt.TotalCost)
	}
	if !containsWarning(warnings, "partial coverage: Europe 5GB") {
		t.Fatalf("missing coverage warning, got %v", warnings)
	}
	if !containsWarning(warnings, "pack validity shorter than trip: Europe 5GB") {
		t.Fatalf("missing validity warning, got %v", warnings)
	}
}

func TestPricePackNoCoverage(t *testing.T) {
	_, _, ok := pricePack(europePack(), map[string]int{"US": 4}, 4, Needs{GB: 1}, testRates, testCountries)
	if ok {
		t.Fatal("pack covering no itinerary country must be excluded")
	}
}

func TestPricePackCountryScope(t *testing.T) {
	pack := catalog.Pack{
		ID: 204, Name: "Germany Daily",
		CoverageScope: catalog.ScopeCountry, CoverageValue: "de",
		DataGB: 2, VoiceMin: 20, SMS: 20,
		Price: 4.9, ValidityDays: 1, Currency: "EUR",
	}
	// Coverage value matching is case-insensitive.
	_, _, ok := pricePack(pack, map[string]int{"DE": 2}, 2, Needs{GB: 0.5}, testRates, testCountries)
	if !ok {
		t.Fatal("country-scoped pack should cover DE")
	}
}

func TestPricePackUnknownScopeNeverCovers(t *testing.T) {
	pack := europePack()
	pack.CoverageScope = "continent"
	_, _, ok := pricePack(pack, map[string]int{"DE": 3}, 3, Needs{GB: 1}, testRates, testCountries)
	if ok {
		t.Fatal("unknown coverage scope must never cover")
	}
}

func TestPricePackOverflowNeverNegative(t *testing.T) {
	// Allowance far above needs: overflow components must clamp at zero.
	pack := europePack()
	pack.DataGB = 100
	pack.VoiceMin = 10000
	pack.SMS = 10000

	opt, _, ok := pricePack(pack, map[string]int{"DE": 6}, 6, Needs{GB: 3.5, Minutes: 60, SMS: 12}, testRates, testCountries)
	if !ok {
		t.Fatal("expected pack to be applicable")
	}
	if opt.Overflow.OverDataCost != 0 || opt.Overflow.OverVoiceCost != 0 || opt.Overflow.OverSMSCost != 0 {
		t.Fatalf("overflow must be zero, got %+v", opt.Overflow)
	}
	if opt.TotalCost != round2(pack.Price) {
		t.Fatalf("TotalCost = %v, want base price only", opt.TotalCost)
	}
}

func TestPricePackZeroValiditySkipped(t *testing.T) {
	pack := europePack()
	pack.ValidityDays = 0
	_, _, ok := pricePack(pack, map[string]int{"DE": 6}, 6, Needs{GB: 1}, testRates, testCountries)
	if ok {
		t.Fatal("pack without usable validity must be excluded")
	}
}

func containsWarning(warnings []string, want string) bool {
	for _, w := range warnings {
		if strings.Contains(w, want) {
			return true
		}
	}
	return false
}
