package entities

import "fmt"

// MaxLayers is the deepest laminate the plant can build
const MaxLayers = 4

// Layer is one film ply of a product structure
type Layer struct {
	Material         MaterialName `json:"material" yaml:"material"`
	ThicknessMicrons float64      `json:"thickness_microns" yaml:"thickness_microns"`
}

// GSM returns the basis weight of the layer for the given material density.
// One micron of a 1 g/cm³ film weighs exactly 1 g/m².
func (l Layer) GSM(density float64) float64 {
	return l.ThicknessMicrons * density
}

// ProductStructure is an ordered stack of layers bonded by adhesive passes
type ProductStructure struct {
	Label              string  `json:"label" yaml:"label"`
	Layers             []Layer `json:"layers" yaml:"layers"`
	AdhesiveGSMPerPass float64 `json:"adhesive_gsm_per_pass" yaml:"adhesive_gsm_per_pass"`
}

// NewProductStructure creates a validated ProductStructure
func NewProductStructure(label string, layers []Layer, adhesiveGSMPerPass float64) (*ProductStructure, error) {
	if len(layers) < 1 || len(layers) > MaxLayers {
		return nil, fmt.Errorf("structure must have between 1 and %d layers, got %d", MaxLayers, len(layers))
	}
	for i, layer := range layers {
		if string(layer.Material) == "" {
			return nil, fmt.Errorf("layer %d: material cannot be empty", i+1)
		}
		if layer.ThicknessMicrons <= 0 {
			return nil, fmt.Errorf("layer %d: thickness must be positive, got %g", i+1, layer.ThicknessMicrons)
		}
	}
	if adhesiveGSMPerPass < 0 {
		return nil, fmt.Errorf("adhesive gsm per pass cannot be negative, got %g", adhesiveGSMPerPass)
	}

	copied := make([]Layer, len(layers))
	copy(copied, layers)

	return &ProductStructure{
		Label:              label,
		Layers:             copied,
		AdhesiveGSMPerPass: adhesiveGSMPerPass,
	}, nil
}

// PassCount returns the number of lamination passes needed to bond all layers
func (s ProductStructure) PassCount() int {
	if len(s.Layers) == 0 {
		return 0
	}
	return len(s.Layers) - 1
}

// AdhesiveGSM returns the total adhesive basis weight across all passes
func (s ProductStructure) AdhesiveGSM() float64 {
	return s.AdhesiveGSMPerPass * float64(s.PassCount())
}
