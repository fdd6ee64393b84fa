package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/filmplant/pkg/domain/entities"
)

func TestCalculateThroughput_ReferencePress(t *testing.T) {
	p := referenceProcess()

	result, issues := CalculateThroughput(p)

	shift := 2.0 * 12 * 26 * 60
	wantNet := shift*0.85 - 60*120
	wantLinear := 350 * wantNet
	wantArea := wantLinear * (1000.0 / 1000)

	assert.Empty(t, issues)
	assert.True(t, result.Valid)
	assert.Equal(t, 7200.0, result.LostMinutes)
	assert.Equal(t, wantNet, result.NetMinutes)
	assert.Equal(t, wantLinear, result.LinearMeters)
	assert.Equal(t, wantArea, result.AreaM2)
	assert.InDelta(t, 24624.0, result.NetMinutes, 1e-6)
	assert.InDelta(t, 8_618_400.0, result.AreaM2, 1e-3)
}

func TestCalculateThroughput_Monotonicity(t *testing.T) {
	base := referenceProcess()
	baseArea := func(p entities.ProcessParameters) float64 {
		r, _ := CalculateThroughput(p)
		return r.AreaM2
	}

	increasing := map[string]func(p *entities.ProcessParameters){
		"speed":      func(p *entities.ProcessParameters) { p.MachineSpeedMPerMin += 10 },
		"width":      func(p *entities.ProcessParameters) { p.WebWidthMM += 50 },
		"efficiency": func(p *entities.ProcessParameters) { p.EfficiencyFactor = 0.95 },
	}
	for name, bump := range increasing {
		t.Run("increasing in "+name, func(t *testing.T) {
			p := base
			bump(&p)
			assert.Greater(t, baseArea(p), baseArea(base))
		})
	}

	decreasing := map[string]func(p *entities.ProcessParameters){
		"jobs":       func(p *entities.ProcessParameters) { p.JobsPerMonth += 5 },
		"changeover": func(p *entities.ProcessParameters) { p.ChangeoverMinutesPerJob += 15 },
	}
	for name, bump := range decreasing {
		t.Run("decreasing in "+name, func(t *testing.T) {
			p := base
			bump(&p)
			assert.Less(t, baseArea(p), baseArea(base))
		})
	}
}

func TestCalculateThroughput_ExcessiveChangeoversAreInvalid(t *testing.T) {
	p := referenceProcess()
	p.JobsPerMonth = 400

	result, issues := CalculateThroughput(p)

	require.False(t, result.Valid)
	assert.Less(t, result.NetMinutes, 0.0)
	assert.Zero(t, result.LinearMeters)
	assert.Zero(t, result.AreaM2)
	assert.True(t, hasIssue(issues, entities.InvalidInput, "net_minutes"))
}

func TestCalculateThroughput_OverflowIsInvalid(t *testing.T) {
	testCases := []struct {
		name  string
		speed float64
		width float64
	}{
		{"overflowing area", 1e200, 1e200},
		{"infinite speed", math.Inf(1), 1000},
		{"NaN width", 350, math.NaN()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := referenceProcess()
			p.MachineSpeedMPerMin = tc.speed
			p.WebWidthMM = tc.width

			result, issues := CalculateThroughput(p)

			assert.False(t, result.Valid)
			assert.Zero(t, result.LinearMeters)
			assert.Zero(t, result.AreaM2)
			assert.True(t, hasIssue(issues, entities.InvalidInput, "throughput"))
		})
	}
}

func TestCalculateThroughput_EfficiencyOutOfRange(t *testing.T) {
	p := referenceProcess()
	p.EfficiencyFactor = 1.2

	_, issues := CalculateThroughput(p)

	assert.True(t, hasIssue(issues, entities.InvalidInput, "efficiency_factor"))
}

func TestCalculateConsumables(t *testing.T) {
	prices := ConsumablePrices{SolventRatio: 1.5, InkPricePerKg: 15, SolventPricePerKg: 7}

	result := CalculateConsumables(1_000_000, 3, prices)

	assert.InDelta(t, 3000.0, result.InkKg, 1e-9)
	assert.InDelta(t, 45000.0, result.InkCost, 1e-9)
	assert.InDelta(t, 4500.0, result.SolventKg, 1e-9)
	assert.InDelta(t, 31500.0, result.SolventCost, 1e-9)

	empty := CalculateConsumables(0, 3, prices)
	assert.Zero(t, empty.InkKg)
	assert.Zero(t, empty.SolventCost)
}
