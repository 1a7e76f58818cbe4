package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tariffcalc/tariffcalc/pkg/config"
	"github.com/tariffcalc/tariffcalc/pkg/logger"
	pricesdb "github.com/tariffcalc/tariffcalc/pkg/pricelist/sqlite"
	"github.com/tariffcalc/tariffcalc/pkg/tariff"
)

// app carries global flag values and the lazily built logger.
type app struct {
	configPath string
	verbose    bool
	log        logger.ILogger
}

// loadConfig resolves the config file, environment overrides and logger.
func (a *app) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		cfg, err = config.Load(a.configPath)
		if err != nil {
			return nil, err
		}
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if a.log == nil {
		l, err := logger.New("tariffcalc", cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		a.log = l
	}
	a.log.Debug("configuration loaded",
		logger.String("file", defaultStr(a.configPath, "(built-in)")),
		logger.Float64("vat_multiplier", cfg.VATMultiplier),
		logger.String("prices_db", cfg.PricesDB),
	)
	return cfg, nil
}

// loadPriceList builds the immutable price list every calculation uses.
func (a *app) loadPriceList(ctx context.Context) (*tariff.PriceList, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	tariffs := cfg.Tariffs
	if cfg.PricesDB != "" {
		store, err := pricesdb.New(cfg.PricesDB)
		if err != nil {
			return nil, err
		}
		defer func() { _ = store.Close() }()

		tariffs, err = store.Tariffs(ctx)
		if err != nil {
			return nil, err
		}
		if len(tariffs) == 0 {
			a.log.Warning("prices database has no tariffs", logger.String("path", cfg.PricesDB))
		}
	}

	pl, err := tariff.NewPriceList(tariffs, cfg.VATMultiplier)
	if err != nil {
		return nil, fmt.Errorf("price list: %w", err)
	}
	a.log.Debug("price list ready", logger.Int("tariffs", pl.Len()))
	return pl, nil
}

// runCalculation prints calc's output. Calculation errors are reported to the
// user as a plain message on stdout; anything else fails the command.
func runCalculation(cmd *cobra.Command, calc func(w io.Writer) error) error {
	err := calc(cmd.OutOrStdout())
	if err != nil && tariff.IsDomainError(err) {
		fmt.Fprintln(cmd.OutOrStdout(), err.Error())
		return nil
	}
	return err
}

func defaultStr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
