// Package reference provides the built-in scenario for a greenfield flexible
// packaging plant: a CI flexo press, solventless laminator and in-house PE
// extrusion, priced in SAR.
package reference

import (
	"github.com/vsinha/filmplant/pkg/application/dto"
	"github.com/vsinha/filmplant/pkg/domain/entities"
	"github.com/vsinha/filmplant/pkg/domain/services"
)

// Label of the reference product structure
const Label = "PET12/PE50"

// Scenario returns a fresh copy of the reference plant scenario
func Scenario() dto.Scenario {
	return dto.Scenario{
		Materials: Materials(),
		Process: entities.ProcessParameters{
			MachineSpeedMPerMin:     200,
			WebWidthMM:              1000,
			InkCoverageGSM:          3,
			JobsPerMonth:            120,
			ChangeoverMinutesPerJob: 60,
			ShiftMinutesPerMonth:    entities.ShiftMinutes(2, 12, 26),
			EfficiencyFactor:        0.85,
		},
		Structure: entities.ProductStructure{
			Label: Label,
			Layers: []entities.Layer{
				{Material: "PET", ThicknessMicrons: 12},
				{Material: "PE", ThicknessMicrons: 50},
			},
			AdhesiveGSMPerPass: 2,
		},
		Consumables: services.ConsumablePrices{
			SolventRatio:       1.2,
			InkPricePerKg:      15,
			SolventPricePerKg:  7,
			AdhesivePricePerKg: 12,
		},
		Lamination: services.LaminationParameters{SpeedMPerMin: 300},
		Utilities:  services.UtilityParameters{ElectricityRate: 0.18},
		Assets:     Assets(),
		Workforce: services.WorkforcePolicy{
			Roles:               Roles(),
			AllowancePercent:    25,
			InsurancePerHead:    400,
			Trucks:              3,
			FuelPerTruck:        3000,
			MaintenancePerTruck: 1000,
			Admin: []entities.AdminCost{
				{Label: "Office & IT", MonthlyAmount: 8000},
				{Label: "Water & services", MonthlyAmount: 3000},
				{Label: "Marketing", MonthlyAmount: 5000},
				{Label: "Licenses & insurance", MonthlyAmount: 6000},
			},
		},
		Commercial: services.CommercialParameters{
			SellingPricePerTon:   12887,
			WorkingCapitalMonths: services.DefaultWorkingCapitalMonths,
		},
		Technology: services.TechnologyParameters{
			Colors:    8,
			LifeYears: 10,
			Variants:  Technologies(),
		},
		Mix: services.MixParameters{
			TotalAnnualVolumeTons: 312 * 12,
			Segments: []entities.MixSegment{
				{StructureLabel: "PET/PE snack packs", VolumeSharePercent: 40, UnitPrice: 12.5},
				{StructureLabel: "BOPP/BOPP confectionery", VolumeSharePercent: 25, UnitPrice: 11.8},
				{StructureLabel: "PET/ALU/PE retort pouches", VolumeSharePercent: 15, UnitPrice: 18.5},
				{StructureLabel: "PE shrink and bags", VolumeSharePercent: 20, UnitPrice: 9.5},
			},
		},
	}
}

// Materials is the substrate catalog; prices are SAR per ton
func Materials() []entities.Material {
	return []entities.Material{
		{Name: "PET", Density: 1.4, UnitPrice: 9000},
		{Name: "PE", Density: 0.92, UnitPrice: 5000},
		{Name: "BOPP", Density: 0.91, UnitPrice: 7500},
		{Name: "CPP", Density: 0.9, UnitPrice: 7000},
		{Name: "MPET", Density: 1.4, UnitPrice: 10500},
		{Name: "ALU", Density: 2.7, UnitPrice: 18000},
	}
}

// Assets is the plant CAPEX list
func Assets() []entities.Asset {
	return []entities.Asset{
		{Name: "CI Flexo Printing Machine", CapitalCost: 8_000_000, UsefulLifeYears: 15, RatedPowerKW: 250},
		{Name: "Solventless Lamination", CapitalCost: 1_200_000, UsefulLifeYears: 15, RatedPowerKW: 60},
		{Name: "PE Blown Film Extruder", CapitalCost: 5_000_000, UsefulLifeYears: 15, RatedPowerKW: 300},
		{Name: "Slitter Rewinder", CapitalCost: 800_000, UsefulLifeYears: 10, RatedPowerKW: 40},
		{Name: "Bag Converting Machines", CapitalCost: 620_000, UsefulLifeYears: 10, RatedPowerKW: 30},
		{Name: "Quality Lab", CapitalCost: 100_000, UsefulLifeYears: 5, RatedPowerKW: 5},
		{Name: "Building & Infrastructure", CapitalCost: 4_000_000, UsefulLifeYears: 25},
		{Name: "Chiller", CapitalCost: 400_000, UsefulLifeYears: 10, RatedPowerKW: 45},
		{Name: "Air Compressor", CapitalCost: 200_000, UsefulLifeYears: 10, RatedPowerKW: 37},
	}
}

// Roles is the plant payroll; salaries are monthly SAR
func Roles() []entities.WorkforceRole {
	return []entities.WorkforceRole{
		{Title: "Plant Manager", Headcount: 1, BasicSalary: 25000},
		{Title: "Production Supervisor", Headcount: 3, BasicSalary: 9000},
		{Title: "Flexo Operator", Headcount: 6, BasicSalary: 6000},
		{Title: "Extrusion Operator", Headcount: 6, BasicSalary: 5000},
		{Title: "Lamination Operator", Headcount: 3, BasicSalary: 5000},
		{Title: "Slitting & Bag Operator", Headcount: 8, BasicSalary: 4000},
		{Title: "QC Technician", Headcount: 3, BasicSalary: 5500},
		{Title: "Maintenance Technician", Headcount: 3, BasicSalary: 6000},
		{Title: "Helper", Headcount: 12, BasicSalary: 2500},
	}
}

// Technologies compares flexo plates against engraved gravure cylinders
func Technologies() []entities.TechnologyVariant {
	return []entities.TechnologyVariant{
		{
			Name:                    "Flexo",
			SetupCostPerColor:       400,
			WasteKgPerSetup:         50,
			ConsumableUnitCost:      1000,
			ConsumableLifeMeters:    500_000,
			ConsumableUnitsPerColor: 2,
			MachineCapitalCost:      8_000_000,
			RatedPowerKW:            250,
		},
		{
			Name:                    "Rotogravure",
			SetupCostPerColor:       1500,
			WasteKgPerSetup:         250,
			ConsumableUnitCost:      2500,
			ConsumableLifeMeters:    2_000_000,
			ConsumableUnitsPerColor: 1,
			MachineCapitalCost:      7_500_000,
			RatedPowerKW:            300,
		},
	}
}
