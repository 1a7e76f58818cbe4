package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/tariffcalc/tariffcalc/pkg/models"
	"github.com/tariffcalc/tariffcalc/pkg/tariff"
)

func newCostCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cost <powerUsageKwh> <gasUsageKwh>",
		Short: "Rank every tariff by annual cost for the given usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return cmd.Help()
			}

			pl, err := a.loadPriceList(cmd.Context())
			if err != nil {
				return err
			}

			return runCalculation(cmd, func(w io.Writer) error {
				q, err := parseUsage(args[0], args[1])
				if err != nil {
					return err
				}
				results, err := tariff.RankTariffs(q, pl)
				if err != nil {
					return err
				}
				_, err = io.WriteString(w, formatCostResults(results))
				return err
			})
		},
	}
}

func parseUsage(powerRaw, gasRaw string) (models.UsageQuery, error) {
	power, err := tariff.ParseQuantity("power usage", powerRaw)
	if err != nil {
		return models.UsageQuery{}, err
	}
	gas, err := tariff.ParseQuantity("gas usage", gasRaw)
	if err != nil {
		return models.UsageQuery{}, err
	}
	return models.UsageQuery{PowerUsageKWh: power, GasUsageKWh: gas}, nil
}
