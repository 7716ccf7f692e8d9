// README: Option ranking: ascending total cost with coverage/validity tie-break.
package simulation

import "sort"

// rankOptions merges the pack options and the PAYG option into one list
// ordered by total cost ascending. Equal costs prefer covered options, then
// options whose validity spans the whole trip; remaining ties keep insertion
// order (packs in catalog order, PAYG last).
func rankOptions(payg Option, packs []Option) []Option {
	all := make([]Option, 0, len(packs)+1)
	all = append(all, packs...)
	all = append(all, payg)

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].TotalCost != all[j].TotalCost {
			return all[i].TotalCost < all[j].TotalCost
		}
		if all[i].CoverageHit != all[j].CoverageHit {
			return all[i].CoverageHit
		}
		if all[i].ValidityOk != all[j].ValidityOk {
			return all[i].ValidityOk
		}
		return false
	})
	return all
}
