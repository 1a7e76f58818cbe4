package tariff

import (
	"math"
	"strconv"
	"strings"

	"github.com/tariffcalc/tariffcalc/pkg/models"
)

// ParseQuantity converts a raw command-line value into a number. Text that is
// not numeric is reported as a "string" InputError for param; the literal NaN
// parses and is rejected later as "number NaN" by the calculators.
func ParseQuantity(param, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &InputError{Param: param, Type: "string", Value: raw}
	}
	return v, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func checkFinite(param string, v float64) error {
	if !isFinite(v) {
		return numberError(param, v)
	}
	return nil
}

func checkNonNegative(param string, v float64) error {
	if !isFinite(v) || v < 0 {
		return numberError(param, v)
	}
	return nil
}

func checkVAT(vat float64) error {
	if !isFinite(vat) || vat <= 0 {
		return numberError("vatMultiplier", vat)
	}
	return nil
}

func checkUsage(q models.UsageQuery) error {
	if err := checkNonNegative("power usage", q.PowerUsageKWh); err != nil {
		return err
	}
	return checkNonNegative("gas usage", q.GasUsageKWh)
}
