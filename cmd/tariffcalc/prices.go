package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tariffcalc/tariffcalc/pkg/logger"
	pricesdb "github.com/tariffcalc/tariffcalc/pkg/pricelist/sqlite"
)

func newPricesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prices",
		Short: "Inspect the active price list or copy it into SQLite",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show the tariffs and VAT multiplier in use",
		RunE: func(cmd *cobra.Command, args []string) error {
			pl, err := a.loadPriceList(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if pl.Len() == 0 {
				fmt.Fprintln(out, "No tariffs configured.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TARIFF\tPOWER /KWH\tGAS /KWH\tSTANDING /MONTH")
			for _, t := range pl.Tariffs() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					t.Name, formatRate(t.Rates.Power), formatRate(t.Rates.Gas), formatAmount(t.MonthlyStandingCharge))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "VAT multiplier: %s\n", formatAmount(pl.VATMultiplier()))
			return nil
		},
	}

	var dbPath string
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Write the active price list into a SQLite prices database",
		RunE: func(cmd *cobra.Command, args []string) error {
			pl, err := a.loadPriceList(cmd.Context())
			if err != nil {
				return err
			}

			store, err := pricesdb.New(dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Replace(cmd.Context(), pl.Tariffs()); err != nil {
				return err
			}
			a.log.Info("prices imported", logger.String("path", dbPath), logger.Int("tariffs", pl.Len()))
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tariffs into %s\n", pl.Len(), dbPath)
			return nil
		},
	}
	importCmd.Flags().StringVar(&dbPath, "db", "", "path to the SQLite prices database to write")
	_ = importCmd.MarkFlagRequired("db")

	cmd.AddCommand(listCmd, importCmd)
	return cmd
}
