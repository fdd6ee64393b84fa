package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vsinha/filmplant/pkg/domain/entities"
)

func TestCalculateLamination_SingleLayerNeverTouchesLaminator(t *testing.T) {
	p := referenceProcess()
	for _, speed := range []float64{0, 150, 450, 1e9} {
		result, issues := CalculateLamination(0, 8_000_000, LaminationParameters{SpeedMPerMin: speed}, p)

		assert.Equal(t, entities.LaminationNotRequired, result.Status)
		assert.Zero(t, result.UtilizationPercent)
		assert.Zero(t, result.CapacityMeters)
		assert.Empty(t, issues)
	}
}

func TestCalculateLamination_WithinCapacity(t *testing.T) {
	p := referenceProcess()
	lam := LaminationParameters{SpeedMPerMin: 400}

	result, issues := CalculateLamination(1, 8_000_000, lam, p)

	capacity := 400 * p.ShiftMinutesPerMonth * p.EfficiencyFactor
	assert.Empty(t, issues)
	assert.Equal(t, entities.WithinCapacity, result.Status)
	assert.Equal(t, capacity, result.CapacityMeters)
	assert.Equal(t, 8_000_000.0, result.RequiredMeters)
	assert.InDelta(t, 8_000_000/capacity*100, result.UtilizationPercent, 1e-9)
}

func TestCalculateLamination_OverCapacityIsReportedNotFailed(t *testing.T) {
	p := referenceProcess()

	result, issues := CalculateLamination(3, 8_000_000, LaminationParameters{SpeedMPerMin: 300}, p)

	assert.Equal(t, entities.OverCapacity, result.Status)
	assert.True(t, result.Status.IsBottleneck())
	assert.Greater(t, result.UtilizationPercent, 100.0)
	assert.True(t, hasIssue(issues, entities.Bottleneck, "lamination"))
}

func TestCalculateLamination_ZeroCapacity(t *testing.T) {
	p := referenceProcess()

	blocked, issues := CalculateLamination(1, 1000, LaminationParameters{}, p)
	assert.Equal(t, entities.CapacityBlocked, blocked.Status)
	assert.Zero(t, blocked.UtilizationPercent)
	assert.True(t, hasIssue(issues, entities.Bottleneck, "lamination"))

	idle, issues := CalculateLamination(1, 0, LaminationParameters{}, p)
	assert.Equal(t, entities.WithinCapacity, idle.Status)
	assert.Zero(t, idle.UtilizationPercent)
	assert.Empty(t, issues)
}
