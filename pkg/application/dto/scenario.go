package dto

import (
	"github.com/vsinha/filmplant/pkg/domain/entities"
	"github.com/vsinha/filmplant/pkg/domain/services"
)

// Scenario is the complete input snapshot of one plant evaluation
type Scenario struct {
	Materials   []entities.Material           `json:"materials"`
	Process     entities.ProcessParameters    `json:"process"`
	Structure   entities.ProductStructure     `json:"structure"`
	Consumables services.ConsumablePrices     `json:"consumables"`
	Lamination  services.LaminationParameters `json:"lamination"`
	Utilities   services.UtilityParameters    `json:"utilities"`
	Assets      []entities.Asset              `json:"assets"`
	Workforce   services.WorkforcePolicy      `json:"workforce"`
	Commercial  services.CommercialParameters `json:"commercial"`
	Technology  services.TechnologyParameters `json:"technology"`
	Mix         services.MixParameters        `json:"mix"`
}

// Clone returns a deep copy so the caller's slices are never shared with an evaluation
func (s Scenario) Clone() Scenario {
	out := s
	out.Materials = cloneSlice(s.Materials)
	out.Structure.Layers = cloneSlice(s.Structure.Layers)
	out.Assets = cloneSlice(s.Assets)
	out.Workforce.Roles = cloneSlice(s.Workforce.Roles)
	out.Workforce.Admin = cloneSlice(s.Workforce.Admin)
	out.Technology.Variants = cloneSlice(s.Technology.Variants)
	out.Mix.Segments = cloneSlice(s.Mix.Segments)
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
