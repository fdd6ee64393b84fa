package services

// ConsumablePrices holds the ink, solvent and adhesive purchase terms
type ConsumablePrices struct {
	SolventRatio       float64 `json:"solvent_ratio" yaml:"solvent_ratio"` // kg solvent per kg ink
	InkPricePerKg      float64 `json:"ink_price_per_kg" yaml:"ink_price_per_kg"`
	SolventPricePerKg  float64 `json:"solvent_price_per_kg" yaml:"solvent_price_per_kg"`
	AdhesivePricePerKg float64 `json:"adhesive_price_per_kg" yaml:"adhesive_price_per_kg"`
}

// ConsumablesResult is the monthly ink and solvent draw
type ConsumablesResult struct {
	InkKg       float64 `json:"ink_kg"`
	InkCost     float64 `json:"ink_cost"`
	SolventKg   float64 `json:"solvent_kg"`
	SolventCost float64 `json:"solvent_cost"`
}

// CalculateConsumables scales ink and solvent mass linearly with printed area
func CalculateConsumables(areaM2, inkCoverageGSM float64, prices ConsumablePrices) ConsumablesResult {
	inkKg := areaM2 * inkCoverageGSM / 1000
	solventKg := inkKg * prices.SolventRatio

	return ConsumablesResult{
		InkKg:       inkKg,
		InkCost:     inkKg * prices.InkPricePerKg,
		SolventKg:   solventKg,
		SolventCost: solventKg * prices.SolventPricePerKg,
	}
}
