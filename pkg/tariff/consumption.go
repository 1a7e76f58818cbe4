package tariff

import "github.com/tariffcalc/tariffcalc/pkg/models"

// SolveAnnualConsumption estimates the annual kWh of fuelType that a
// VAT-inclusive targetMonthlySpend buys on the named tariff, after the
// monthly standing charge. The result is rounded to two decimal places.
//
// A spend that does not cover the standing charge returns a *SpendError
// rather than a negative consumption.
func SolveAnnualConsumption(tariffName, fuelType string, targetMonthlySpend float64, pl *PriceList) (float64, error) {
	if pl == nil {
		return 0, errNilPriceList
	}
	if tariffName == "" {
		return 0, &InputError{Param: "tariff name", Value: tariffName}
	}
	if fuelType == "" {
		return 0, &InputError{Param: "fuel type", Value: fuelType}
	}
	if err := checkFinite("target monthly spend", targetMonthlySpend); err != nil {
		return 0, err
	}

	t, ok := pl.Lookup(tariffName)
	if !ok {
		return 0, &TariffNotFoundError{Name: tariffName}
	}
	rate, ok := t.Rate(models.FuelType(fuelType))
	if !ok {
		return 0, &FuelTypeError{FuelType: fuelType, Tariff: tariffName}
	}

	monthlyExVAT := targetMonthlySpend / pl.vat
	monthlyAfterStanding := monthlyExVAT - t.MonthlyStandingCharge
	if monthlyAfterStanding < 0 {
		return 0, &SpendError{
			Tariff:               tariffName,
			TargetMonthlySpend:   targetMonthlySpend,
			StandingChargeIncVAT: t.MonthlyStandingCharge * pl.vat,
		}
	}
	annualAfterStanding := monthlyAfterStanding * monthsPerYear
	return RoundCurrency(annualAfterStanding / rate), nil
}
