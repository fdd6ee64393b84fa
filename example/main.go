package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/filmplant/pkg/application/dto"
	"github.com/vsinha/filmplant/pkg/application/reference"
	"github.com/vsinha/filmplant/pkg/application/services"
	"github.com/vsinha/filmplant/pkg/domain/entities"
	"github.com/vsinha/filmplant/pkg/infrastructure/events"
	"github.com/vsinha/filmplant/pkg/infrastructure/repositories/memory"
)

func main() {
	catalog, err := memory.NewMaterialRepositoryFrom(reference.Materials())
	if err != nil {
		fmt.Printf("❌ Catalog failed: %v\n", err)
		return
	}

	// Every worksheet edit triggers a full re-evaluation
	store := events.NewInMemoryEventStore()
	worksheet := services.NewWorksheet(reference.Scenario(), store)
	recalculator := services.NewRecalculator(services.NewEvaluationService(catalog), worksheet, store)
	if err := recalculator.Attach(); err != nil {
		fmt.Printf("❌ Recalculator failed: %v\n", err)
		return
	}

	fmt.Printf("🏭 Evaluating %s plant (worksheet %s)\n\n", reference.Label, worksheet.ID())
	show("Baseline", recalculator)

	fmt.Println("✏️  Adding a second slitter...")
	if _, err := worksheet.AddAsset(entities.Asset{
		Name:            "Slitter Rewinder #2",
		CapitalCost:     800_000,
		UsefulLifeYears: 10,
		RatedPowerKW:    40,
	}); err != nil {
		fmt.Printf("❌ Edit failed: %v\n", err)
		return
	}
	show("With second slitter", recalculator)

	fmt.Println("✏️  Slowing the laminator to 120 m/min...")
	if err := worksheet.Apply("lamination", func(s *dto.Scenario) {
		s.Lamination.SpeedMPerMin = 120
	}); err != nil {
		fmt.Printf("❌ Edit failed: %v\n", err)
		return
	}
	show("Slow laminator", recalculator)

	all, _ := store.ReadAllEvents(0)
	fmt.Printf("📜 Event log: %d events\n", len(all))
	for _, event := range all {
		fmt.Printf("  v%d %s\n", event.Version(), event.Type())
	}
}

func show(title string, recalculator *services.Recalculator) {
	result, revision := recalculator.Latest()

	fmt.Printf("📊 %s (revision %d)\n", title, revision)
	fmt.Printf("  Output:        %s t/month\n", decimal.NewFromFloat(result.Structure.FinalTons).StringFixed(1))
	fmt.Printf("  Total CAPEX:   %s\n", decimal.NewFromFloat(result.Assets.TotalCapital).StringFixed(0))
	fmt.Printf("  Profit:        %s /month\n", decimal.NewFromFloat(result.Profitability.Profit).StringFixed(2))
	if result.Profitability.CostPerTon.Defined {
		fmt.Printf("  Cost per ton:  %s\n", decimal.NewFromFloat(result.Profitability.CostPerTon.Value).StringFixed(2))
	}
	fmt.Printf("  Lamination:    %s (%s%%)\n", result.Lamination.Status,
		decimal.NewFromFloat(result.Lamination.UtilizationPercent).StringFixed(1))
	for _, crossover := range result.Technology.Crossovers {
		if crossover.Exists {
			fmt.Printf("  %s vs %s break-even: %s t\n", crossover.VariantA, crossover.VariantB,
				decimal.NewFromFloat(crossover.Tons).StringFixed(1))
		}
	}
	for _, issue := range result.Issues {
		fmt.Printf("  ⚠️  %s %s: %s\n", issue.Kind, issue.Field, issue.Message)
	}
	fmt.Println()
}
