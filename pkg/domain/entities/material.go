package entities

import "fmt"

// MaterialName identifies a substrate in the material catalog
type MaterialName string

// Material represents a film substrate with its physical and commercial properties
type Material struct {
	Name      MaterialName `json:"name" yaml:"name"`
	Density   float64      `json:"density" yaml:"density"`       // g/cm³
	UnitPrice float64      `json:"unit_price" yaml:"unit_price"` // currency per ton
}

// NewMaterial creates a validated Material
func NewMaterial(name MaterialName, density, unitPrice float64) (*Material, error) {
	if string(name) == "" {
		return nil, fmt.Errorf("material name cannot be empty")
	}
	if density <= 0 {
		return nil, fmt.Errorf("density must be positive, got %g", density)
	}
	if unitPrice < 0 {
		return nil, fmt.Errorf("unit price cannot be negative, got %g", unitPrice)
	}

	return &Material{
		Name:      name,
		Density:   density,
		UnitPrice: unitPrice,
	}, nil
}
