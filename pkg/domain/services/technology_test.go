package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/filmplant/pkg/domain/entities"
)

func flexoVersusRoto() TechnologyParameters {
	return TechnologyParameters{
		Colors:             8,
		MaterialCostPerTon: 9000,
		MetersPerTon:       20000,
		AverageMonthlyTons: 300,
		LifeYears:          10,
		Variants: []entities.TechnologyVariant{
			{
				Name:                    "Flexo",
				SetupCostPerColor:       400,
				WasteKgPerSetup:         50,
				ConsumableUnitCost:      1000,
				ConsumableLifeMeters:    500_000,
				ConsumableUnitsPerColor: 2,
				MachineCapitalCost:      6_000_000,
			},
			{
				Name:                    "Rotogravure",
				SetupCostPerColor:       1500,
				WasteKgPerSetup:         250,
				ConsumableUnitCost:      2500,
				ConsumableLifeMeters:    2_000_000,
				ConsumableUnitsPerColor: 1,
				MachineCapitalCost:      6_000_000,
			},
		},
	}
}

func TestCompareTechnologies_CurveComponents(t *testing.T) {
	result, issues := CompareTechnologies(flexoVersusRoto(), UtilityParameters{}, referenceProcess())

	require.Empty(t, issues)
	require.Len(t, result.Curves, 2)
	flexo, roto := result.Curves[0], result.Curves[1]

	assert.Equal(t, 3200.0, flexo.SetupCost)
	assert.Equal(t, 450.0, flexo.WasteCost)
	assert.InDelta(t, 0.032, flexo.ConsumableCostPerMeter, 1e-12)
	assert.InDelta(t, 640.0, flexo.ConsumableCostPerTon, 1e-9)
	assert.InDelta(t, 50_000.0/300, flexo.MachineCostPerTon, 1e-9)

	assert.Equal(t, 12000.0, roto.SetupCost)
	assert.Equal(t, 2250.0, roto.WasteCost)
	assert.InDelta(t, 0.01, roto.ConsumableCostPerMeter, 1e-12)

	require.Len(t, flexo.Points, DefaultSweepMaxTons)
	assert.Equal(t, 1.0, flexo.Points[0].Tons)
	assert.InDelta(t, 9000+3650+640+50_000.0/300, flexo.Points[0].TotalCostPerTon, 1e-9)
}

func TestCompareTechnologies_FixedCostStrictlyDecreasing(t *testing.T) {
	result, _ := CompareTechnologies(flexoVersusRoto(), UtilityParameters{}, referenceProcess())

	for _, curve := range result.Curves {
		for i := 1; i < len(curve.Points); i++ {
			assert.Less(t, curve.Points[i].FixedCostPerTon, curve.Points[i-1].FixedCostPerTon,
				"%s at %v tons", curve.Variant, curve.Points[i].Tons)
		}
	}
}

func TestCompareTechnologies_FlexoCheaperForShortRuns(t *testing.T) {
	result, _ := CompareTechnologies(flexoVersusRoto(), UtilityParameters{}, referenceProcess())

	require.Len(t, result.Crossovers, 1)
	crossover := result.Crossovers[0]

	require.True(t, crossover.Exists)
	assert.InDelta(t, 10600.0/440, crossover.Tons, 1e-9)
	assert.Equal(t, "Flexo", crossover.CheaperBelow)
	assert.Equal(t, "Rotogravure", crossover.CheaperAbove)

	flexo, roto := result.Curves[0], result.Curves[1]
	assert.InDelta(t, flexo.CostAt(crossover.Tons), roto.CostAt(crossover.Tons), 1e-6)
	assert.Less(t, flexo.CostAt(crossover.Tons-1), roto.CostAt(crossover.Tons-1))
	assert.Greater(t, flexo.CostAt(crossover.Tons+1), roto.CostAt(crossover.Tons+1))
}

func TestCrossoverFromCurves_AgreesWithClosedForm(t *testing.T) {
	result, _ := CompareTechnologies(flexoVersusRoto(), UtilityParameters{}, referenceProcess())

	sampled := CrossoverFromCurves(result.Curves[0], result.Curves[1])
	solved := FindCrossover(result.Curves[0], result.Curves[1])

	require.True(t, sampled.Exists)
	assert.InDelta(t, solved.Tons, sampled.Tons, 0.01)
	assert.Equal(t, solved.CheaperBelow, sampled.CheaperBelow)
	assert.Equal(t, solved.CheaperAbove, sampled.CheaperAbove)
}

func TestFindCrossover_NoneWhenOneVariantDominates(t *testing.T) {
	params := flexoVersusRoto()
	params.Variants[1].ConsumableUnitCost = 50_000

	result, _ := CompareTechnologies(params, UtilityParameters{}, referenceProcess())

	assert.False(t, result.Crossovers[0].Exists)
	assert.False(t, CrossoverFromCurves(result.Curves[0], result.Curves[1]).Exists)
}

func TestCompareTechnologies_UndefinedMachineCost(t *testing.T) {
	params := flexoVersusRoto()
	params.AverageMonthlyTons = 0

	result, issues := CompareTechnologies(params, UtilityParameters{}, referenceProcess())

	assert.Zero(t, result.Curves[0].MachineCostPerTon)
	assert.True(t, hasIssue(issues, entities.UndefinedMetric, "technology.Flexo"))
}

func TestTechnologyParameters_Sweep(t *testing.T) {
	defaults, issues := TechnologyParameters{}.Sweep()
	assert.Len(t, defaults, DefaultSweepMaxTons)
	assert.Empty(t, issues)

	halves, _ := TechnologyParameters{SweepMaxTons: 2, SweepStepTons: 0.5}.Sweep()
	assert.Equal(t, []float64{0.5, 1, 1.5, 2}, halves)
	tens, _ := TechnologyParameters{SweepMaxTons: 35, SweepStepTons: 10}.Sweep()
	assert.Equal(t, []float64{10, 20, 30}, tens)
}

func TestTechnologyParameters_SweepOutOfRange(t *testing.T) {
	testCases := []struct {
		name     string
		params   TechnologyParameters
		field    string
		lastTons float64
	}{
		{"huge upper bound", TechnologyParameters{SweepMaxTons: 1e30}, "technology.sweep_step_tons", 1e30},
		{"infinite upper bound", TechnologyParameters{SweepMaxTons: math.Inf(1)}, "technology.sweep_max_tons", DefaultSweepMaxTons},
		{"NaN upper bound", TechnologyParameters{SweepMaxTons: math.NaN()}, "technology.sweep_max_tons", DefaultSweepMaxTons},
		{"NaN step", TechnologyParameters{SweepMaxTons: 50, SweepStepTons: math.NaN()}, "technology.sweep_step_tons", 50},
		{"tiny step", TechnologyParameters{SweepMaxTons: 100, SweepStepTons: 1e-9}, "technology.sweep_step_tons", 100},
		{"extreme ratio", TechnologyParameters{SweepMaxTons: 1e300, SweepStepTons: 1e-300}, "technology.sweep_step_tons", 1e300},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sweep, issues := tc.params.Sweep()

			require.NotEmpty(t, sweep)
			assert.LessOrEqual(t, len(sweep), MaxSweepPoints)
			assert.InEpsilon(t, tc.lastTons, sweep[len(sweep)-1], 1e-9)
			assert.True(t, hasIssue(issues, entities.InvalidInput, tc.field))
			for _, tons := range sweep {
				assert.False(t, math.IsNaN(tons) || math.IsInf(tons, 0))
			}
		})
	}
}

func TestCompareTechnologies_OversizedSweepIsClamped(t *testing.T) {
	params := flexoVersusRoto()
	params.SweepMaxTons = 1e30

	result, issues := CompareTechnologies(params, UtilityParameters{}, referenceProcess())

	require.Len(t, result.Curves, 2)
	assert.Len(t, result.Curves[0].Points, MaxSweepPoints)
	assert.True(t, hasIssue(issues, entities.InvalidInput, "technology.sweep_step_tons"))
	assert.True(t, result.Crossovers[0].Exists)
}
