package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	root := newRootCmd(&app{})
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "tariffcalc",
		Short:         "Compare energy tariffs and estimate consumption from a budget",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to tariffcalc config file (default: built-in price list)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log configuration details to stderr")

	root.AddCommand(
		newCostCmd(a),
		newCostTariffCmd(a),
		newUsageCmd(a),
		newPricesCmd(a),
	)
	return root
}
