package tariff

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidInput is returned when an argument has the wrong type or is out of range.
	ErrInvalidInput = errors.New("invalid input")
	// ErrTariffNotFound is returned when no tariff matches a requested name.
	ErrTariffNotFound = errors.New("tariff not found")
	// ErrFuelTypeNotSupported is returned when a tariff has no rate for a fuel.
	ErrFuelTypeNotSupported = errors.New("fuel type not supported")
	// ErrSpendBelowStandingCharge is returned when a target spend cannot cover
	// the standing charge on its own.
	ErrSpendBelowStandingCharge = errors.New("spend below standing charge")
)

// InputError describes a rejected argument. Type is "string" when the raw
// value could not be parsed as a number and "number" otherwise.
type InputError struct {
	Param string
	Type  string
	Value string
}

func (e *InputError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("Invalid %s provided: %s", e.Param, e.Value)
	}
	return fmt.Sprintf("Invalid %s provided: %s %s", e.Param, e.Type, e.Value)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// TariffNotFoundError names the missing tariff.
type TariffNotFoundError struct {
	Name string
}

func (e *TariffNotFoundError) Error() string {
	return fmt.Sprintf("No tariff found with name '%s'", e.Name)
}

func (e *TariffNotFoundError) Unwrap() error { return ErrTariffNotFound }

// FuelTypeError names the fuel a tariff does not supply.
type FuelTypeError struct {
	FuelType string
	Tariff   string
}

func (e *FuelTypeError) Error() string {
	return fmt.Sprintf("Invalid fuel type '%s' for tariff with name '%s'", e.FuelType, e.Tariff)
}

func (e *FuelTypeError) Unwrap() error { return ErrFuelTypeNotSupported }

// SpendError reports a monthly spend that does not cover the standing charge.
type SpendError struct {
	Tariff               string
	TargetMonthlySpend   float64
	StandingChargeIncVAT float64
}

func (e *SpendError) Error() string {
	return fmt.Sprintf("Target monthly spend %s does not cover the monthly standing charge of %s for tariff with name '%s'",
		formatNumber(e.TargetMonthlySpend), formatNumber(RoundCurrency(e.StandingChargeIncVAT)), e.Tariff)
}

func (e *SpendError) Unwrap() error { return ErrSpendBelowStandingCharge }

// IsDomainError reports whether err is a user-facing calculation error.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrTariffNotFound) ||
		errors.Is(err, ErrFuelTypeNotSupported) ||
		errors.Is(err, ErrSpendBelowStandingCharge)
}

func numberError(param string, v float64) *InputError {
	return &InputError{Param: param, Type: "number", Value: formatNumber(v)}
}

// formatNumber renders v in its shortest form.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
