package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/filmplant/pkg/domain/entities"
)

func sampleCosts() CostComponents {
	return CostComponents{
		RawMaterial:  60000,
		Ink:          5000,
		Solvent:      2000,
		Adhesive:     3000,
		Power:        4000,
		Depreciation: 6000,
		Overhead:     20000,
	}
}

func TestCalculateProfitability(t *testing.T) {
	result, issues := CalculateProfitability(sampleCosts(), 10, 700_000, CommercialParameters{SellingPricePerTon: 12000})

	require.Empty(t, issues)
	assert.Equal(t, 100000.0, result.TotalMonthlyCost)
	assert.Equal(t, 120000.0, result.Revenue)
	assert.Equal(t, 20000.0, result.Profit)
	assert.Equal(t, entities.DefinedValue(10000), result.CostPerTon)
	assert.Equal(t, 300000.0, result.WorkingCapital, "defaults to three months of cost")
	assert.Equal(t, 1_000_000.0, result.TotalInvestment)
	assert.Equal(t, 240000.0, result.AnnualProfit)
	assert.InDelta(t, 24.0, result.ROIPercent.Value, 1e-9)
	assert.InDelta(t, 1_000_000.0/240_000, result.PaybackYears.Value, 1e-9)
	assert.InDelta(t, 100.0/6, result.MarginPercent.Value, 1e-9)
}

func TestCalculateProfitability_WorkingCapitalMonths(t *testing.T) {
	result, _ := CalculateProfitability(sampleCosts(), 10, 0, CommercialParameters{SellingPricePerTon: 12000, WorkingCapitalMonths: 6})

	assert.Equal(t, 600000.0, result.WorkingCapital)
	assert.Equal(t, 600000.0, result.TotalInvestment)
}

func TestCalculateProfitability_ZeroTonnageGivesZeroCostPerTon(t *testing.T) {
	result, issues := CalculateProfitability(sampleCosts(), 0, 700_000, CommercialParameters{SellingPricePerTon: 12000})

	assert.Zero(t, result.CostPerTon.Value)
	assert.False(t, result.CostPerTon.Defined)
	assert.True(t, hasIssue(issues, entities.UndefinedMetric, "cost_per_ton"))
}

func TestCalculateProfitability_PaybackZeroWhenNotProfitable(t *testing.T) {
	for _, price := range []float64{10000, 9000, 0} {
		result, issues := CalculateProfitability(sampleCosts(), 10, 700_000, CommercialParameters{SellingPricePerTon: price})

		assert.LessOrEqual(t, result.Profit, 0.0)
		assert.Zero(t, result.PaybackYears.Value)
		assert.False(t, result.PaybackYears.Defined)
		assert.True(t, hasIssue(issues, entities.UndefinedMetric, "payback_years"))
	}
}

func TestBreakDownCosts(t *testing.T) {
	shares := BreakDownCosts(sampleCosts(), 10)

	require.Len(t, shares, 7)
	assert.Equal(t, "raw_material", shares[0].Component)
	assert.InDelta(t, 6000.0, shares[0].PerTon.Value, 1e-9)
	assert.InDelta(t, 60.0, shares[0].SharePercent.Value, 1e-9)

	total := 0.0
	for _, share := range shares {
		total += share.SharePercent.Value
	}
	assert.InDelta(t, 100.0, total, 1e-9)

	noTons := BreakDownCosts(sampleCosts(), 0)
	assert.False(t, noTons[0].PerTon.Defined)
}
