package main

import (
	"testing"

	"github.com/tariffcalc/tariffcalc/pkg/models"
)

func TestFormatCostResults(t *testing.T) {
	got := formatCostResults([]models.CostResult{
		{TariffName: "a", AnnualCost: 1562},
		{TariffName: "b", AnnualCost: 429.2},
		{TariffName: "c", AnnualCost: 392.03},
	})
	want := "Total annual cost:\na 1562\nb 429.2\nc 392.03\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormatCostResultsEmpty(t *testing.T) {
	if got := formatCostResults(nil); got != "Total annual cost:\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestFormatRate(t *testing.T) {
	if got := formatRate(nil); got != "-" {
		t.Errorf("expected -, got %q", got)
	}
	if got := formatRate(models.Float(0)); got != "-" {
		t.Errorf("expected - for zero rate, got %q", got)
	}
	if got := formatRate(models.Float(0.1367)); got != "0.1367" {
		t.Errorf("expected 0.1367, got %q", got)
	}
}
