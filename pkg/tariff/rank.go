package tariff

import (
	"cmp"
	"slices"

	"github.com/tariffcalc/tariffcalc/pkg/models"
)

// RankTariffs costs every tariff in pl that can serve q and returns them
// cheapest first.
func RankTariffs(q models.UsageQuery, pl *PriceList) ([]models.CostResult, error) {
	return RankTariffsWith(q, pl)
}

// RankTariffsWith is RankTariffs with extra ad-hoc tariffs appended to the
// table before filtering. Each extra tariff carries its own discount; the
// standard tariffs are never discounted.
func RankTariffsWith(q models.UsageQuery, pl *PriceList, extra ...models.DiscountedTariff) ([]models.CostResult, error) {
	if pl == nil {
		return nil, errNilPriceList
	}
	if err := checkUsage(q); err != nil {
		return nil, err
	}

	candidates := make([]models.DiscountedTariff, 0, len(pl.tariffs)+len(extra))
	for _, t := range pl.tariffs {
		candidates = append(candidates, models.DiscountedTariff{Tariff: t})
	}
	for _, d := range extra {
		if err := validateTariff(d.Tariff); err != nil {
			return nil, err
		}
		if err := checkNonNegative("discountMultiplier", d.DiscountMultiplier); err != nil {
			return nil, err
		}
		candidates = append(candidates, d)
	}

	results := make([]models.CostResult, 0, len(candidates))
	for _, c := range candidates {
		if !eligible(c.Tariff, q) {
			continue
		}
		results = append(results, models.CostResult{
			TariffName: c.Tariff.Name,
			AnnualCost: annualCost(costInput(c, q), pl.vat),
		})
	}

	// Stable so equal costs keep table order.
	slices.SortStableFunc(results, func(a, b models.CostResult) int {
		return cmp.Compare(a.AnnualCost, b.AnnualCost)
	})
	return results, nil
}

// eligible reports whether t supplies every fuel q consumes.
func eligible(t models.TariffRate, q models.UsageQuery) bool {
	for _, fuel := range models.AllFuelTypes() {
		if q.Usage(fuel) > 0 && !t.Supplies(fuel) {
			return false
		}
	}
	return true
}
