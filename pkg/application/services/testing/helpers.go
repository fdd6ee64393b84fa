package testing

import (
	"github.com/vsinha/filmplant/pkg/application/dto"
	"github.com/vsinha/filmplant/pkg/domain/entities"
	"github.com/vsinha/filmplant/pkg/domain/services"
	"github.com/vsinha/filmplant/pkg/infrastructure/repositories/memory"
)

// mustCreateMaterial is a helper for tests - panics on validation error
func mustCreateMaterial(name string, density, unitPrice float64) entities.Material {
	material, err := entities.NewMaterial(entities.MaterialName(name), density, unitPrice)
	if err != nil {
		panic(err)
	}
	return *material
}

// mustCreateStructure is a helper for tests - panics on validation error
func mustCreateStructure(label string, adhesiveGSMPerPass float64, layers ...entities.Layer) entities.ProductStructure {
	structure, err := entities.NewProductStructure(label, layers, adhesiveGSMPerPass)
	if err != nil {
		panic(err)
	}
	return *structure
}

// mustCreateAsset is a helper for tests - panics on validation error
func mustCreateAsset(name string, capitalCost, lifeYears, kw float64) entities.Asset {
	asset, err := entities.NewAsset(name, capitalCost, lifeYears, kw)
	if err != nil {
		panic(err)
	}
	return *asset
}

// BuildCatalog builds the shared substrate catalog used across tests
func BuildCatalog() *memory.MaterialRepository {
	repo, err := memory.NewMaterialRepositoryFrom([]entities.Material{
		mustCreateMaterial("PET", 1.4, 9000),
		mustCreateMaterial("PE", 0.92, 5000),
		mustCreateMaterial("ALU", 2.7, 18000),
	})
	if err != nil {
		panic(err)
	}
	return repo
}

// BuildPressScenario builds a duplex PET/PE job on a 350 m/min press with
// 60 changeovers of 120 minutes over a 2×12h×26 day month at 85% efficiency.
// Materials come from BuildCatalog.
func BuildPressScenario() dto.Scenario {
	return dto.Scenario{
		Process: entities.ProcessParameters{
			MachineSpeedMPerMin:     350,
			WebWidthMM:              1000,
			InkCoverageGSM:          3,
			JobsPerMonth:            60,
			ChangeoverMinutesPerJob: 120,
			ShiftMinutesPerMonth:    entities.ShiftMinutes(2, 12, 26),
			EfficiencyFactor:        0.85,
		},
		Structure: mustCreateStructure("PET12/PE50", 2,
			entities.Layer{Material: "PET", ThicknessMicrons: 12},
			entities.Layer{Material: "PE", ThicknessMicrons: 50},
		),
		Consumables: services.ConsumablePrices{
			SolventRatio:       1,
			InkPricePerKg:      15,
			SolventPricePerKg:  7,
			AdhesivePricePerKg: 12,
		},
		Lamination: services.LaminationParameters{SpeedMPerMin: 300},
		Utilities:  services.UtilityParameters{ElectricityRate: 0.2, WorkingHoursPerMonth: 600},
		Assets: []entities.Asset{
			mustCreateAsset("Press", 6_000_000, 10, 100),
			mustCreateAsset("Laminator", 1_200_000, 10, 50),
		},
		Workforce: services.WorkforcePolicy{
			Roles: []entities.WorkforceRole{
				{Title: "Operator", Headcount: 10, BasicSalary: 5000},
				{Title: "Supervisor", Headcount: 2, BasicSalary: 10000},
			},
			AllowancePercent: 20,
			InsurancePerHead: 500,
			Admin:            []entities.AdminCost{{Label: "Office", MonthlyAmount: 10000}},
		},
		Commercial: services.CommercialParameters{SellingPricePerTon: 12000},
		Technology: services.TechnologyParameters{
			Colors:    8,
			LifeYears: 10,
			Variants: []entities.TechnologyVariant{
				{Name: "Flexo", SetupCostPerColor: 400, WasteKgPerSetup: 50, ConsumableUnitCost: 1000,
					ConsumableLifeMeters: 500_000, ConsumableUnitsPerColor: 2, MachineCapitalCost: 6_000_000},
				{Name: "Rotogravure", SetupCostPerColor: 1500, WasteKgPerSetup: 250, ConsumableUnitCost: 2500,
					ConsumableLifeMeters: 2_000_000, ConsumableUnitsPerColor: 1, MachineCapitalCost: 6_000_000},
			},
		},
		Mix: services.MixParameters{
			TotalAnnualVolumeTons: 1200,
			Segments: []entities.MixSegment{
				{StructureLabel: "PET/PE", VolumeSharePercent: 60, UnitPrice: 12},
				{StructureLabel: "PET/ALU/PE", VolumeSharePercent: 40, UnitPrice: 18},
			},
		},
	}
}
