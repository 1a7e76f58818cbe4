package models

// FuelType identifies a supplied commodity.
type FuelType string

const (
	FuelPower FuelType = "power"
	FuelGas   FuelType = "gas"
)

// AllFuelTypes returns every fuel type in display order.
func AllFuelTypes() []FuelType {
	return []FuelType{FuelPower, FuelGas}
}

// Rates holds per-kWh prices. A nil rate means the fuel is not supplied.
type Rates struct {
	Power *float64 `json:"power,omitempty" yaml:"power,omitempty"`
	Gas   *float64 `json:"gas,omitempty" yaml:"gas,omitempty"`
}

// TariffRate is a named pricing plan.
type TariffRate struct {
	Name                  string  `json:"tariff" yaml:"name"`
	Rates                 Rates   `json:"rates" yaml:"rates"`
	MonthlyStandingCharge float64 `json:"standing_charge" yaml:"standing_charge"`
}

// Rate returns the per-kWh price for a fuel and whether the tariff supplies it.
// A zero rate counts as not supplied.
func (t TariffRate) Rate(fuel FuelType) (float64, bool) {
	var r *float64
	switch fuel {
	case FuelPower:
		r = t.Rates.Power
	case FuelGas:
		r = t.Rates.Gas
	}
	if r == nil || *r == 0 {
		return 0, false
	}
	return *r, true
}

// Supplies reports whether the tariff has a usable rate for fuel.
func (t TariffRate) Supplies(fuel FuelType) bool {
	_, ok := t.Rate(fuel)
	return ok
}

// Clone returns a copy that shares no pointers with t.
func (t TariffRate) Clone() TariffRate {
	c := t
	if t.Rates.Power != nil {
		v := *t.Rates.Power
		c.Rates.Power = &v
	}
	if t.Rates.Gas != nil {
		v := *t.Rates.Gas
		c.Rates.Gas = &v
	}
	return c
}

// DiscountedTariff is an ad-hoc tariff ranked alongside the standard table
// with its own discount multiplier. A zero multiplier means no discount.
type DiscountedTariff struct {
	Tariff             TariffRate `json:"tariff" yaml:"tariff"`
	DiscountMultiplier float64    `json:"discount_multiplier,omitempty" yaml:"discount_multiplier,omitempty"`
}

// UsageQuery is one customer's annual consumption per fuel.
type UsageQuery struct {
	PowerUsageKWh float64 `json:"power_usage_kwh"`
	GasUsageKWh   float64 `json:"gas_usage_kwh"`
}

// Usage returns the query's consumption for fuel.
func (q UsageQuery) Usage(fuel FuelType) float64 {
	switch fuel {
	case FuelPower:
		return q.PowerUsageKWh
	case FuelGas:
		return q.GasUsageKWh
	}
	return 0
}

// CostResult is a tariff's projected annual cost including VAT.
type CostResult struct {
	TariffName string  `json:"name"`
	AnnualCost float64 `json:"annual_cost"`
}

// Float returns a pointer to v, for building Rates literals.
func Float(v float64) *float64 {
	return &v
}
