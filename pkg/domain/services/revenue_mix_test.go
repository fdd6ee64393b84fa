package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/filmplant/pkg/domain/entities"
)

func TestCalculateRevenueMix(t *testing.T) {
	params := MixParameters{
		TotalAnnualVolumeTons: 1200,
		Segments: []entities.MixSegment{
			{StructureLabel: "PET/PE", VolumeSharePercent: 40, UnitPrice: 3.5},
			{StructureLabel: "BOPP/BOPP", VolumeSharePercent: 35, UnitPrice: 4.2},
			{StructureLabel: "PET/ALU/PE", VolumeSharePercent: 25, UnitPrice: 5},
		},
	}

	result, issues := CalculateRevenueMix(params)

	require.Empty(t, issues)
	require.Len(t, result.Segments, 3)
	assert.Equal(t, 480.0, result.Segments[0].VolumeTons)
	assert.Equal(t, 420.0, result.Segments[1].VolumeTons)
	assert.Equal(t, 300.0, result.Segments[2].VolumeTons)
	assert.Equal(t, 1200.0, result.AllocatedVolumeTons)

	assert.Equal(t, 1_680_000.0, result.Segments[0].Revenue)
	assert.Equal(t, 4_944_000.0, result.TotalRevenue)
	assert.True(t, result.WeightedAvgPrice.Defined)
	assert.Equal(t, 4.12, result.WeightedAvgPrice.Value)
}

func TestCalculateRevenueMix_FractionalSharesAddBackExactly(t *testing.T) {
	params := MixParameters{
		TotalAnnualVolumeTons: 1200,
		Segments: []entities.MixSegment{
			{StructureLabel: "A", VolumeSharePercent: 33.3, UnitPrice: 4},
			{StructureLabel: "B", VolumeSharePercent: 33.3, UnitPrice: 4},
			{StructureLabel: "C", VolumeSharePercent: 33.4, UnitPrice: 4},
		},
	}

	result, issues := CalculateRevenueMix(params)

	assert.Empty(t, issues)
	assert.Equal(t, 100.0, result.ShareTotalPercent)
	assert.Equal(t, 1200.0, result.AllocatedVolumeTons)
}

func TestCalculateRevenueMix_SharesNotSummingToHundredWarnOnly(t *testing.T) {
	params := MixParameters{
		TotalAnnualVolumeTons: 1200,
		Segments: []entities.MixSegment{
			{StructureLabel: "A", VolumeSharePercent: 50, UnitPrice: 4},
			{StructureLabel: "B", VolumeSharePercent: 30, UnitPrice: 5},
		},
	}

	result, issues := CalculateRevenueMix(params)

	assert.True(t, hasIssue(issues, entities.ConfigurationWarning, "mix.segments"))
	assert.Equal(t, 80.0, result.ShareTotalPercent)
	assert.Equal(t, 960.0, result.AllocatedVolumeTons, "shares are not rescaled")
}

func TestCalculateRevenueMix_ZeroVolume(t *testing.T) {
	result, issues := CalculateRevenueMix(MixParameters{
		Segments: []entities.MixSegment{{StructureLabel: "A", VolumeSharePercent: 100, UnitPrice: 4}},
	})

	assert.False(t, result.WeightedAvgPrice.Defined)
	assert.Zero(t, result.WeightedAvgPrice.Value)
	assert.Zero(t, result.TotalRevenue)
	assert.True(t, hasIssue(issues, entities.UndefinedMetric, "mix.weighted_avg_price"))
}

func TestCalculateRevenueMix_NonFiniteInputsCountAsZero(t *testing.T) {
	result, issues := CalculateRevenueMix(MixParameters{
		TotalAnnualVolumeTons: 1200,
		Segments: []entities.MixSegment{
			{StructureLabel: "A", VolumeSharePercent: 60, UnitPrice: math.Inf(1)},
			{StructureLabel: "B", VolumeSharePercent: math.NaN(), UnitPrice: 4},
		},
	})

	require.Len(t, result.Segments, 2)
	assert.Zero(t, result.Segments[0].Revenue)
	assert.Zero(t, result.Segments[1].VolumeTons)
	assert.InDelta(t, 720, result.AllocatedVolumeTons, 1e-9)
	assert.True(t, hasIssue(issues, entities.InvalidInput, "mix.segments[0].unit_price"))
	assert.True(t, hasIssue(issues, entities.InvalidInput, "mix.segments[1].volume_share_percent"))

	_, issues = CalculateRevenueMix(MixParameters{TotalAnnualVolumeTons: math.Inf(-1)})
	assert.True(t, hasIssue(issues, entities.InvalidInput, "mix.total_annual_volume_tons"))
}
