package tariff

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tariffcalc/tariffcalc/pkg/models"
)

func someEnergy(t *testing.T) *PriceList {
	t.Helper()
	return newTestPriceList(t, []models.TariffRate{
		{Name: "some-energy", Rates: models.Rates{Power: models.Float(3), Gas: models.Float(5)}, MonthlyStandingCharge: 10},
	}, 1.1)
}

func TestSolveAnnualConsumption(t *testing.T) {
	// ((40 / 1.1) - 10) * 12 / 5
	got, err := SolveAnnualConsumption("some-energy", "gas", 40, someEnergy(t))
	require.NoError(t, err)
	assert.Equal(t, 63.27, got)
}

func TestSolveAnnualConsumptionValidation(t *testing.T) {
	pl := someEnergy(t)

	tests := []struct {
		name    string
		tariff  string
		fuel    string
		spend   float64
		target  error
		wantMsg string
	}{
		{"empty tariff name", "", "gas", 40, ErrInvalidInput, "Invalid tariff name provided: "},
		{"empty fuel type", "dsfsdf", "", 40, ErrInvalidInput, "Invalid fuel type provided: "},
		{"NaN spend", "dsfsdf", "gas", math.NaN(), ErrInvalidInput, "Invalid target monthly spend provided: number NaN"},
		{"infinite spend", "some-energy", "gas", math.Inf(-1), ErrInvalidInput, "Invalid target monthly spend provided: number -Inf"},
		{"unknown tariff", "whatever", "gas", 40, ErrTariffNotFound, "No tariff found with name 'whatever'"},
		{"unknown fuel", "some-energy", "nuclear", 40, ErrFuelTypeNotSupported, "Invalid fuel type 'nuclear' for tariff with name 'some-energy'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SolveAnnualConsumption(tt.tariff, tt.fuel, tt.spend, pl)
			require.ErrorIs(t, err, tt.target)
			assert.EqualError(t, err, tt.wantMsg)
			assert.True(t, IsDomainError(err))
		})
	}
}

func TestSolveAnnualConsumptionUnsuppliedFuel(t *testing.T) {
	pl := newTestPriceList(t, []models.TariffRate{
		{Name: "greener-energy", Rates: models.Rates{Power: models.Float(0.1544)}, MonthlyStandingCharge: 8.33},
	}, 1.05)

	_, err := SolveAnnualConsumption("greener-energy", "gas", 40, pl)
	var fuelErr *FuelTypeError
	require.True(t, errors.As(err, &fuelErr))
	assert.Equal(t, "gas", fuelErr.FuelType)
	assert.Equal(t, "greener-energy", fuelErr.Tariff)
}

func TestSolveAnnualConsumptionSpendBelowStandingCharge(t *testing.T) {
	_, err := SolveAnnualConsumption("some-energy", "gas", 5, someEnergy(t))
	require.ErrorIs(t, err, ErrSpendBelowStandingCharge)
	assert.EqualError(t, err, "Target monthly spend 5 does not cover the monthly standing charge of 11 for tariff with name 'some-energy'")
}

func TestSolveAnnualConsumptionSpendEqualsStandingCharge(t *testing.T) {
	pl := newTestPriceList(t, []models.TariffRate{
		{Name: "flat", Rates: models.Rates{Power: models.Float(0.5)}, MonthlyStandingCharge: 8},
	}, 1.25)

	got, err := SolveAnnualConsumption("flat", "power", 10, pl)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestCostAndConsumptionRoundTrip(t *testing.T) {
	pl := newTestPriceList(t, testTariffs(), 1.05)

	for _, usage := range []float64{150, 2000, 4321.5, 12000} {
		for _, fuel := range models.AllFuelTypes() {
			q := models.UsageQuery{}
			if fuel == models.FuelPower {
				q.PowerUsageKWh = usage
			} else {
				q.GasUsageKWh = usage
			}
			ranked, err := RankTariffs(q, pl)
			require.NoError(t, err)
			require.NotEmpty(t, ranked)

			for _, r := range ranked {
				monthly := r.AnnualCost / 12
				got, err := SolveAnnualConsumption(r.TariffName, string(fuel), monthly, pl)
				require.NoError(t, err)
				assert.InDelta(t, usage, got, 0.5, "%s %s", r.TariffName, fuel)
			}
		}
	}
}
