package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/filmplant/pkg/domain/entities"
)

var (
	hundred      = decimal.NewFromInt(100)
	kgPerTon     = decimal.NewFromInt(1000)
	fullMixShare = hundred
)

// MixParameters is the annual volume and how it splits across product lines
type MixParameters struct {
	TotalAnnualVolumeTons float64               `json:"total_annual_volume_tons" yaml:"total_annual_volume_tons"`
	Segments              []entities.MixSegment `json:"segments" yaml:"-"`
}

// SegmentRevenue is the volume and revenue allotted to one product line
type SegmentRevenue struct {
	StructureLabel     string  `json:"structure_label"`
	VolumeSharePercent float64 `json:"volume_share_percent"`
	VolumeTons         float64 `json:"volume_tons"`
	UnitPrice          float64 `json:"unit_price"`
	Revenue            float64 `json:"revenue"`
}

// MixResult is the blended revenue of the customer mix
type MixResult struct {
	Segments            []SegmentRevenue `json:"segments"`
	TotalVolumeTons     float64          `json:"total_volume_tons"`
	AllocatedVolumeTons float64          `json:"allocated_volume_tons"`
	ShareTotalPercent   float64          `json:"share_total_percent"`
	TotalRevenue        float64          `json:"total_revenue"`
	WeightedAvgPrice    entities.Guarded `json:"weighted_avg_price"`
}

// CalculateRevenueMix blends the product lines by volume share.
//
// Arithmetic runs in decimal so segment volumes add back to the total volume
// exactly whenever the shares add to 100. Shares that do not add to 100 are
// reported but never rescaled.
func CalculateRevenueMix(params MixParameters) (MixResult, []entities.Issue) {
	var issues []entities.Issue

	totalVolume := mixDecimal(params.TotalAnnualVolumeTons, "mix.total_annual_volume_tons", &issues)
	shareTotal := decimal.Zero
	allocated := decimal.Zero
	revenue := decimal.Zero

	result := MixResult{
		Segments:        make([]SegmentRevenue, 0, len(params.Segments)),
		TotalVolumeTons: params.TotalAnnualVolumeTons,
	}

	for i, segment := range params.Segments {
		field := fmt.Sprintf("mix.segments[%d]", i)
		share := mixDecimal(segment.VolumeSharePercent, field+".volume_share_percent", &issues)
		price := mixDecimal(segment.UnitPrice, field+".unit_price", &issues)

		volume := totalVolume.Mul(share).Div(hundred)
		segmentRevenue := volume.Mul(price).Mul(kgPerTon)

		shareTotal = shareTotal.Add(share)
		allocated = allocated.Add(volume)
		revenue = revenue.Add(segmentRevenue)

		result.Segments = append(result.Segments, SegmentRevenue{
			StructureLabel:     segment.StructureLabel,
			VolumeSharePercent: segment.VolumeSharePercent,
			VolumeTons:         volume.InexactFloat64(),
			UnitPrice:          segment.UnitPrice,
			Revenue:            segmentRevenue.InexactFloat64(),
		})
	}

	result.ShareTotalPercent = shareTotal.InexactFloat64()
	result.AllocatedVolumeTons = allocated.InexactFloat64()
	result.TotalRevenue = revenue.InexactFloat64()

	if totalVolume.LessThanOrEqual(decimal.Zero) {
		result.WeightedAvgPrice = entities.Undefined("no annual volume")
		issues = append(issues, entities.NewIssue(entities.UndefinedMetric, "mix.weighted_avg_price", "no annual volume"))
	} else {
		result.WeightedAvgPrice = entities.DefinedValue(revenue.Div(totalVolume.Mul(kgPerTon)).InexactFloat64())
	}

	if len(params.Segments) > 0 && !shareTotal.Equal(fullMixShare) {
		issues = append(issues, entities.NewIssue(entities.ConfigurationWarning, "mix.segments",
			"volume shares add to %s%%, not 100%%", shareTotal.String()))
	}

	return result, issues
}

// mixDecimal converts an input to decimal; NaN and infinities count as zero
// and are reported.
func mixDecimal(v float64, field string, issues *[]entities.Issue) decimal.Decimal {
	if !entities.Finite(v) {
		*issues = append(*issues, entities.NewIssue(entities.InvalidInput, field,
			"%g is not a finite number; treated as 0", v))
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
