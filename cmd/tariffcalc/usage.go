package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tariffcalc/tariffcalc/pkg/tariff"
)

func newUsageCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "usage <tariffName> <fuelType> <targetMonthlySpend>",
		Short: "Estimate the annual kWh a monthly budget buys on a tariff",
		Long: `Estimate the annual consumption in kWh that a target monthly spend,
including VAT, buys on the named tariff for one fuel type (power or gas).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 3 || args[0] == "" || args[1] == "" || args[2] == "" {
				return cmd.Help()
			}

			pl, err := a.loadPriceList(cmd.Context())
			if err != nil {
				return err
			}

			return runCalculation(cmd, func(w io.Writer) error {
				spend, err := tariff.ParseQuantity("target monthly spend", args[2])
				if err != nil {
					return err
				}
				kwh, err := tariff.SolveAnnualConsumption(args[0], args[1], spend, pl)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(w, "Total annual consumption: %s\n", formatAmount(kwh))
				return err
			})
		},
	}
}
