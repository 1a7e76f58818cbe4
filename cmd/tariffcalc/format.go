package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tariffcalc/tariffcalc/pkg/models"
)

// formatCostResults renders ranked tariffs one per line under a header.
func formatCostResults(results []models.CostResult) string {
	var b strings.Builder
	b.WriteString("Total annual cost:\n")
	for _, r := range results {
		fmt.Fprintf(&b, "%s %s\n", r.TariffName, formatAmount(r.AnnualCost))
	}
	return b.String()
}

// formatAmount prints v without trailing zeros: 1562, 429.2, 392.03.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatRate(r *float64) string {
	if r == nil || *r == 0 {
		return "-"
	}
	return formatAmount(*r)
}
