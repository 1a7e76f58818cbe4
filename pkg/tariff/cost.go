package tariff

import "github.com/tariffcalc/tariffcalc/pkg/models"

const monthsPerYear = 12

// CostInput is one tariff's rate structure paired with a customer's usage.
// A zero DiscountMultiplier means no discount.
type CostInput struct {
	MonthlyStandingCharge float64
	PowerRate             float64
	GasRate               float64
	PowerUsageKWh         float64
	GasUsageKWh           float64
	DiscountMultiplier    float64
}

// ComputeAnnualCost returns the annual cost of in including discount and VAT,
// rounded to two decimal places. The standing charge is levied once for each
// fuel with nonzero usage.
func ComputeAnnualCost(in CostInput, vat float64) (float64, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}
	if err := checkVAT(vat); err != nil {
		return 0, err
	}
	return annualCost(in, vat), nil
}

func (in CostInput) validate() error {
	checks := []struct {
		param string
		value float64
	}{
		{"monthlyStandingCharge", in.MonthlyStandingCharge},
		{"powerRate", in.PowerRate},
		{"gasRate", in.GasRate},
		{"powerUsage", in.PowerUsageKWh},
		{"gasUsage", in.GasUsageKWh},
		{"discountMultiplier", in.DiscountMultiplier},
	}
	for _, c := range checks {
		if err := checkNonNegative(c.param, c.value); err != nil {
			return err
		}
	}
	return nil
}

func (in CostInput) discount() float64 {
	if in.DiscountMultiplier == 0 {
		return 1
	}
	return in.DiscountMultiplier
}

// annualCost assumes in and vat have been validated.
func annualCost(in CostInput, vat float64) float64 {
	var energy, standing float64
	if in.PowerUsageKWh > 0 {
		energy += in.PowerUsageKWh * in.PowerRate
		standing += in.MonthlyStandingCharge
	}
	if in.GasUsageKWh > 0 {
		energy += in.GasUsageKWh * in.GasRate
		standing += in.MonthlyStandingCharge
	}
	total := energy + standing*monthsPerYear
	return RoundCurrency(total * in.discount() * vat)
}

func costInput(d models.DiscountedTariff, q models.UsageQuery) CostInput {
	power, _ := d.Tariff.Rate(models.FuelPower)
	gas, _ := d.Tariff.Rate(models.FuelGas)
	return CostInput{
		MonthlyStandingCharge: d.Tariff.MonthlyStandingCharge,
		PowerRate:             power,
		GasRate:               gas,
		PowerUsageKWh:         q.PowerUsageKWh,
		GasUsageKWh:           q.GasUsageKWh,
		DiscountMultiplier:    d.DiscountMultiplier,
	}
}
