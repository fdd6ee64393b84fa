package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/filmplant/pkg/domain/entities"
)

// ValidationResult contains the findings of a scenario consistency check
type ValidationResult struct {
	DuplicateMaterials []entities.MaterialName
	UnknownMaterials   []entities.MaterialName
	Errors             []string
	Warnings           []string
}

// HasErrors reports whether the check found anything that blocks evaluation
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// ValidateCatalog checks that material names are unique and physically sensible
func ValidateCatalog(materials []entities.Material) *ValidationResult {
	result := &ValidationResult{
		DuplicateMaterials: make([]entities.MaterialName, 0),
		Errors:             make([]string, 0),
	}

	seen := make(map[entities.MaterialName]bool)
	for _, material := range materials {
		if seen[material.Name] {
			result.DuplicateMaterials = append(result.DuplicateMaterials, material.Name)
		} else {
			seen[material.Name] = true
		}

		if material.Density <= 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("material %s: density must be positive, got %g", material.Name, material.Density))
		}
		if material.UnitPrice < 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("material %s: unit price cannot be negative, got %g", material.Name, material.UnitPrice))
		}
	}

	if len(result.DuplicateMaterials) > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("Duplicate materials found: %v", result.DuplicateMaterials))
	}

	return result
}

// ValidateStructureMaterials checks that every layer references a catalog material
func ValidateStructureMaterials(structure entities.ProductStructure, materials []entities.Material) *ValidationResult {
	result := &ValidationResult{
		UnknownMaterials: make([]entities.MaterialName, 0),
		Errors:           make([]string, 0),
	}

	known := make(map[entities.MaterialName]bool, len(materials))
	for _, material := range materials {
		known[material.Name] = true
	}

	for i, layer := range structure.Layers {
		if !known[layer.Material] {
			result.UnknownMaterials = append(result.UnknownMaterials, layer.Material)
			result.Errors = append(result.Errors,
				fmt.Sprintf("layer %d references unknown material %s", i+1, layer.Material))
		}
	}

	return result
}

// ValidateMixShares warns when the segment shares do not add to 100%.
// Nothing is corrected; the caller decides what to do with the warning.
func ValidateMixShares(segments []entities.MixSegment) *ValidationResult {
	result := &ValidationResult{Warnings: make([]string, 0)}
	if len(segments) == 0 {
		return result
	}

	total := decimal.Zero
	for _, segment := range segments {
		if !entities.Finite(segment.VolumeSharePercent) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("segment %s has a non-finite volume share", segment.StructureLabel))
			continue
		}
		total = total.Add(decimal.NewFromFloat(segment.VolumeSharePercent))
	}
	if !total.Equal(fullMixShare) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("mix volume shares add to %s%%, not 100%%", total.String()))
	}

	return result
}
