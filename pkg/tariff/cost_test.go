package tariff

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAnnualCost(t *testing.T) {
	tests := []struct {
		name string
		in   CostInput
		want float64
	}{
		{
			// ((60*3) + (200*5) + (10*12*2)) * 1.1
			name: "power and gas",
			in:   CostInput{MonthlyStandingCharge: 10, PowerRate: 3, GasRate: 5, PowerUsageKWh: 60, GasUsageKWh: 200},
			want: 1562,
		},
		{
			name: "no gas usage charges one standing fee",
			in:   CostInput{MonthlyStandingCharge: 10, PowerRate: 3, GasRate: 5, PowerUsageKWh: 60},
			want: 330,
		},
		{
			name: "no power usage charges one standing fee",
			in:   CostInput{MonthlyStandingCharge: 10, PowerRate: 3, GasRate: 5, GasUsageKWh: 200},
			want: 1232,
		},
		{
			name: "rounds to two places",
			in:   CostInput{MonthlyStandingCharge: 10.1111, PowerRate: 3, GasRate: 5, PowerUsageKWh: 60, GasUsageKWh: 200},
			want: 1564.93,
		},
		{
			name: "discount applied before VAT",
			in:   CostInput{MonthlyStandingCharge: 10, PowerRate: 3, GasRate: 5, PowerUsageKWh: 60, GasUsageKWh: 200, DiscountMultiplier: 0.8},
			want: 1249.6,
		},
		{
			name: "no usage costs nothing",
			in:   CostInput{MonthlyStandingCharge: 10, PowerRate: 3, GasRate: 5},
			want: 0,
		},
		{
			name: "rate ignored when usage is zero",
			in:   CostInput{MonthlyStandingCharge: 0, PowerRate: 1000, GasRate: 2, GasUsageKWh: 10},
			want: 22,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeAnnualCost(tt.in, 1.1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeAnnualCostValidation(t *testing.T) {
	valid := CostInput{MonthlyStandingCharge: 5, PowerRate: 6, GasRate: 3, PowerUsageKWh: 300, GasUsageKWh: 200}
	nan := math.NaN()

	tests := []struct {
		name    string
		mutate  func(*CostInput)
		wantMsg string
	}{
		{"standing charge NaN", func(in *CostInput) { in.MonthlyStandingCharge = nan }, "Invalid monthlyStandingCharge provided: number NaN"},
		{"power rate NaN", func(in *CostInput) { in.PowerRate = nan }, "Invalid powerRate provided: number NaN"},
		{"gas rate NaN", func(in *CostInput) { in.GasRate = nan }, "Invalid gasRate provided: number NaN"},
		{"power usage NaN", func(in *CostInput) { in.PowerUsageKWh = nan }, "Invalid powerUsage provided: number NaN"},
		{"gas usage NaN", func(in *CostInput) { in.GasUsageKWh = nan }, "Invalid gasUsage provided: number NaN"},
		{"negative gas usage", func(in *CostInput) { in.GasUsageKWh = -1 }, "Invalid gasUsage provided: number -1"},
		{"infinite power rate", func(in *CostInput) { in.PowerRate = math.Inf(1) }, "Invalid powerRate provided: number +Inf"},
		{"negative discount", func(in *CostInput) { in.DiscountMultiplier = -0.5 }, "Invalid discountMultiplier provided: number -0.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			_, err := ComputeAnnualCost(in, 1.1)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestComputeAnnualCostRejectsBadVAT(t *testing.T) {
	in := CostInput{MonthlyStandingCharge: 10, PowerRate: 3, PowerUsageKWh: 60}
	for _, vat := range []float64{0, -1.1, math.NaN(), math.Inf(1)} {
		_, err := ComputeAnnualCost(in, vat)
		assert.ErrorIs(t, err, ErrInvalidInput, "vat %v", vat)
	}
}

func TestRoundCurrency(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{392.028, 392.03},
		{566.538, 566.54},
		{1.005, 1.01},
		{-1.005, -1.01},
		{429.198, 429.2},
		{1562.0000000000002, 1562},
		{63.272727, 63.27},
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundCurrency(tt.in), "RoundCurrency(%v)", tt.in)
	}
	assert.True(t, math.IsNaN(RoundCurrency(math.NaN())))
}

func TestParseQuantity(t *testing.T) {
	v, err := ParseQuantity("power usage", " 2000 ")
	require.NoError(t, err)
	assert.Equal(t, 2000.0, v)

	_, err = ParseQuantity("power usage", "lol")
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.EqualError(t, err, "Invalid power usage provided: string lol")

	var inErr *InputError
	require.True(t, errors.As(err, &inErr))
	assert.Equal(t, "string", inErr.Type)

	v, err = ParseQuantity("power usage", "NaN")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}
