package services

import (
	"fmt"

	"github.com/vsinha/filmplant/pkg/domain/entities"
	"github.com/vsinha/filmplant/pkg/domain/repositories"
)

const gramsPerTon = 1_000_000

// LayerResult is the monthly consumption of one ply
type LayerResult struct {
	Material         entities.MaterialName `json:"material"`
	ThicknessMicrons float64               `json:"thickness_microns"`
	GSM              float64               `json:"gsm"`
	Tons             float64               `json:"tons"`
	Cost             float64               `json:"cost"`
}

// StructureResult is the laminate build-up and its material bill for the month
type StructureResult struct {
	Label           string        `json:"label"`
	Layers          []LayerResult `json:"layers"`
	PassCount       int           `json:"pass_count"`
	BaseGSM         float64       `json:"base_gsm"`
	AdhesiveGSM     float64       `json:"adhesive_gsm"`
	FinalGSM        float64       `json:"final_gsm"`
	RawMaterialCost float64       `json:"raw_material_cost"`
	AdhesiveKg      float64       `json:"adhesive_kg"`
	AdhesiveCost    float64       `json:"adhesive_cost"`
	FinalTons       float64       `json:"final_tons"`
}

// CalculateStructure stacks the structure's layers over the printed area.
// A layer whose material is missing from the catalog contributes nothing and
// is reported as invalid input.
func CalculateStructure(
	structure entities.ProductStructure,
	areaM2 float64,
	catalog repositories.MaterialRepository,
	adhesivePricePerKg float64,
) (StructureResult, []entities.Issue) {
	var issues []entities.Issue
	if len(structure.Layers) == 0 || len(structure.Layers) > entities.MaxLayers {
		issues = append(issues, entities.NewIssue(entities.InvalidInput, "structure.layers",
			"structure must have between 1 and %d layers, got %d", entities.MaxLayers, len(structure.Layers)))
	}

	result := StructureResult{
		Label:     structure.Label,
		Layers:    make([]LayerResult, 0, len(structure.Layers)),
		PassCount: structure.PassCount(),
	}

	for i, layer := range structure.Layers {
		line := LayerResult{
			Material:         layer.Material,
			ThicknessMicrons: layer.ThicknessMicrons,
		}

		material, err := catalog.GetMaterial(layer.Material)
		switch {
		case err != nil:
			issues = append(issues, entities.NewIssue(entities.InvalidInput, layerField(i),
				"%v", err))
		case material.Density <= 0:
			issues = append(issues, entities.NewIssue(entities.InvalidInput, layerField(i),
				"material %s has non-positive density %g", material.Name, material.Density))
		case layer.ThicknessMicrons <= 0:
			issues = append(issues, entities.NewIssue(entities.InvalidInput, layerField(i),
				"thickness must be positive, got %g", layer.ThicknessMicrons))
		default:
			line.GSM = layer.GSM(material.Density)
			line.Tons = areaM2 * line.GSM / gramsPerTon
			line.Cost = line.Tons * material.UnitPrice
		}

		result.BaseGSM += line.GSM
		result.RawMaterialCost += line.Cost
		result.Layers = append(result.Layers, line)
	}

	result.AdhesiveGSM = structure.AdhesiveGSM()
	result.FinalGSM = result.BaseGSM + result.AdhesiveGSM
	result.AdhesiveKg = areaM2 * result.AdhesiveGSM / 1000
	result.AdhesiveCost = result.AdhesiveKg * adhesivePricePerKg
	result.FinalTons = areaM2 * result.FinalGSM / gramsPerTon

	return result, issues
}

// BaseGSMFromFinal recovers the summed layer GSM from a finished basis weight
// by removing the adhesive laid down across all passes.
func BaseGSMFromFinal(finalGSM, adhesiveGSMPerPass float64, passCount int) float64 {
	return finalGSM - adhesiveGSMPerPass*float64(passCount)
}

// MetersPerTon returns the web length that weighs one ton at the given basis
// weight and width; 0 when either is non-positive.
func MetersPerTon(finalGSM, webWidthMM float64) float64 {
	gramsPerMeter := finalGSM * webWidthMM / 1000
	if gramsPerMeter <= 0 {
		return 0
	}
	return gramsPerTon / gramsPerMeter
}

func layerField(i int) string {
	return fmt.Sprintf("structure.layers[%d]", i)
}
