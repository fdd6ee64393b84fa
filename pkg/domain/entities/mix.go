package entities

import "fmt"

// MixSegment is one product line in the customer revenue mix.
// UnitPrice is quoted per kilogram.
type MixSegment struct {
	StructureLabel     string  `json:"structure_label" yaml:"structure_label"`
	VolumeSharePercent float64 `json:"volume_share_percent" yaml:"volume_share_percent"`
	UnitPrice          float64 `json:"unit_price" yaml:"unit_price"`
}

// NewMixSegment creates a validated MixSegment
func NewMixSegment(label string, sharePercent, unitPrice float64) (*MixSegment, error) {
	if label == "" {
		return nil, fmt.Errorf("structure label cannot be empty")
	}
	if sharePercent < 0 {
		return nil, fmt.Errorf("volume share cannot be negative, got %g", sharePercent)
	}
	if unitPrice < 0 {
		return nil, fmt.Errorf("unit price cannot be negative, got %g", unitPrice)
	}

	return &MixSegment{
		StructureLabel:     label,
		VolumeSharePercent: sharePercent,
		UnitPrice:          unitPrice,
	}, nil
}
