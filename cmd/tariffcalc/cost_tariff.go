package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/tariffcalc/tariffcalc/pkg/models"
	"github.com/tariffcalc/tariffcalc/pkg/tariff"
)

func newCostTariffCmd(a *app) *cobra.Command {
	var discount float64

	cmd := &cobra.Command{
		Use:   "cost-tariff <tariffName> <powerRate> <gasRate> <standingCharge> <powerUsageKwh> <gasUsageKwh>",
		Short: "Rank the price list together with an ad-hoc tariff",
		Long: `Rank the price list together with an ad-hoc tariff described on the
command line. A rate of 0 means the tariff does not supply that fuel.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 6 {
				return cmd.Help()
			}

			pl, err := a.loadPriceList(cmd.Context())
			if err != nil {
				return err
			}

			return runCalculation(cmd, func(w io.Writer) error {
				adHoc, err := parseAdHocTariff(args[0], args[1], args[2], args[3])
				if err != nil {
					return err
				}
				adHoc.DiscountMultiplier = discount

				q, err := parseUsage(args[4], args[5])
				if err != nil {
					return err
				}
				results, err := tariff.RankTariffsWith(q, pl, adHoc)
				if err != nil {
					return err
				}
				_, err = io.WriteString(w, formatCostResults(results))
				return err
			})
		},
	}

	cmd.Flags().Float64Var(&discount, "discount", 0, "discount multiplier for the ad-hoc tariff, e.g. 0.8 (default: none)")
	return cmd
}

func parseAdHocTariff(name, powerRaw, gasRaw, standingRaw string) (models.DiscountedTariff, error) {
	power, err := tariff.ParseQuantity("power rate", powerRaw)
	if err != nil {
		return models.DiscountedTariff{}, err
	}
	gas, err := tariff.ParseQuantity("gas rate", gasRaw)
	if err != nil {
		return models.DiscountedTariff{}, err
	}
	standing, err := tariff.ParseQuantity("standing charge", standingRaw)
	if err != nil {
		return models.DiscountedTariff{}, err
	}
	return models.DiscountedTariff{
		Tariff: models.TariffRate{
			Name:                  name,
			Rates:                 models.Rates{Power: models.Float(power), Gas: models.Float(gas)},
			MonthlyStandingCharge: standing,
		},
	}, nil
}
