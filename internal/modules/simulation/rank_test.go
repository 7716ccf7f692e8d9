// README: Tests for option ranking and tie-breaking.
package simulation

import "testing"

func packOpt(id int64, cost float64, validityOk bool) Option {
	return Option{Kind: KindPack, PackID: &id, PackCount: 1, TotalCost: cost, Currency: "EUR", CoverageHit: true, ValidityOk: validityOk}
}

func TestRankAscendingByCost(t *testing.T) {
	payg := Option{Kind: KindPAYG, TotalCost: 45.5, Currency: "EUR", CoverageHit: true, ValidityOk: true}
	ranked := rankOptions(payg, []Option{
		packOpt(201, 39.8, false),
		packOpt(202, 29.9, true),
	})

	if len(ranked) != 3 {
		t.Fatalf("expected 3 options, got %d", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].TotalCost < ranked[i-1].TotalCost {
			t.Fatalf("options not sorted ascending: %v before %v", ranked[i-1].TotalCost, ranked[i].TotalCost)
		}
	}
	if *ranked[0].PackID != 202 || *ranked[1].PackID != 201 || ranked[2].Kind != KindPAYG {
		t.Fatalf("unexpected order: %+v", ranked)
	}
}

func TestRankTieBreakPrefersValidity(t *testing.T) {
	payg := Option{Kind: KindPAYG, TotalCost: 50, Currency: "EUR", CoverageHit: true, ValidityOk: true}
	ranked := rankOptions(payg, []Option{
		packOpt(201, 30, false),
		packOpt(202, 30, true),
	})

	// Equal cost: the option whose validity spans the trip ranks first.
	if *ranked[0].PackID != 202 {
		t.Fatalf("expected pack 202 first on validity tie-break, got %+v", ranked[0])
	}
	if *ranked[1].PackID != 201 {
		t.Fatalf("expected pack 201 second, got %+v", ranked[1])
	}
}

func TestRankStableForFullTies(t *testing.T) {
	payg := Option{Kind: KindPAYG, TotalCost: 30, Currency: "EUR", CoverageHit: true, ValidityOk: true}
	ranked := rankOptions(payg, []Option{
		packOpt(201, 30, true),
		packOpt(202, 30, true),
	})

	// Fully tied options keep insertion order: packs in catalog order, PAYG last.
	if *ranked[0].PackID != 201 || *ranked[1].PackID != 202 || ranked[2].Kind != KindPAYG {
		t.Fatalf("unexpected tie order: %+v", ranked)
	}
}
