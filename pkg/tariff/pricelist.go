package tariff

import (
	"errors"
	"fmt"

	"github.com/tariffcalc/tariffcalc/pkg/models"
)

var errNilPriceList = errors.New("tariff: nil price list")

// PriceList is the immutable tariff table and VAT multiplier every
// calculation runs against. It is safe for concurrent use.
type PriceList struct {
	tariffs []models.TariffRate
	index   map[string]int
	vat     float64
}

// NewPriceList validates and copies tariffs. Later changes to the caller's
// slice do not affect the returned PriceList.
func NewPriceList(tariffs []models.TariffRate, vat float64) (*PriceList, error) {
	if err := checkVAT(vat); err != nil {
		return nil, err
	}
	pl := &PriceList{
		tariffs: make([]models.TariffRate, 0, len(tariffs)),
		index:   make(map[string]int, len(tariffs)),
		vat:     vat,
	}
	for _, t := range tariffs {
		if err := validateTariff(t); err != nil {
			return nil, err
		}
		if _, dup := pl.index[t.Name]; dup {
			return nil, &InputError{Param: "tariff name", Value: fmt.Sprintf("'%s' (duplicate)", t.Name)}
		}
		pl.index[t.Name] = len(pl.tariffs)
		pl.tariffs = append(pl.tariffs, t.Clone())
	}
	return pl, nil
}

// VATMultiplier returns the multiplier applied to pre-tax totals.
func (pl *PriceList) VATMultiplier() float64 {
	return pl.vat
}

// Len returns the number of tariffs.
func (pl *PriceList) Len() int {
	return len(pl.tariffs)
}

// Tariffs returns a copy of the table in its configured order.
func (pl *PriceList) Tariffs() []models.TariffRate {
	out := make([]models.TariffRate, len(pl.tariffs))
	for i, t := range pl.tariffs {
		out[i] = t.Clone()
	}
	return out
}

// Lookup finds a tariff by exact name.
func (pl *PriceList) Lookup(name string) (models.TariffRate, bool) {
	i, ok := pl.index[name]
	if !ok {
		return models.TariffRate{}, false
	}
	return pl.tariffs[i].Clone(), true
}

func validateTariff(t models.TariffRate) error {
	if t.Name == "" {
		return &InputError{Param: "tariff name", Value: t.Name}
	}
	if err := checkNonNegative(fmt.Sprintf("standing charge for tariff '%s'", t.Name), t.MonthlyStandingCharge); err != nil {
		return err
	}
	rates := []struct {
		fuel models.FuelType
		rate *float64
	}{
		{models.FuelPower, t.Rates.Power},
		{models.FuelGas, t.Rates.Gas},
	}
	for _, r := range rates {
		if r.rate == nil {
			continue
		}
		if err := checkNonNegative(fmt.Sprintf("%s rate for tariff '%s'", r.fuel, t.Name), *r.rate); err != nil {
			return err
		}
	}
	return nil
}
