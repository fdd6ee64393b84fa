package services

import (
	"github.com/vsinha/filmplant/pkg/application/dto"
	"github.com/vsinha/filmplant/pkg/domain/entities"
	"github.com/vsinha/filmplant/pkg/domain/repositories"
	calc "github.com/vsinha/filmplant/pkg/domain/services"
	"github.com/vsinha/filmplant/pkg/infrastructure/repositories/memory"
)

// Stage names in the evaluation graph
const (
	StageCatalog       = "catalog"
	StageThroughput    = "throughput"
	StageConsumables   = "consumables"
	StageStructure     = "structure"
	StageLamination    = "lamination"
	StageAssets        = "assets"
	StageOverhead      = "overhead"
	StageProfitability = "profitability"
	StageTechnology    = "technology"
	StageMix           = "mix"
)

// EvaluationService turns a scenario into a complete evaluation result.
// It never fails: every problem with the inputs is reported as an issue.
type EvaluationService struct {
	catalog repositories.MaterialRepository
	graph   *StageGraph
}

// NewEvaluationService creates an evaluation service. Materials listed in a
// scenario take precedence over the shared catalog; catalog may be nil.
func NewEvaluationService(catalog repositories.MaterialRepository) *EvaluationService {
	return &EvaluationService{
		catalog: catalog,
		graph:   MustStageGraph(evaluationStages()),
	}
}

// Stages returns the stage names in the order they run
func (s *EvaluationService) Stages() []string {
	return s.graph.Names()
}

// Evaluate runs every stage against a private copy of the scenario
func (s *EvaluationService) Evaluate(scenario dto.Scenario) *dto.EvaluationResult {
	e := &evaluation{
		scenario: scenario.Clone(),
		base:     s.catalog,
		result: &dto.EvaluationResult{
			Issues: make([]entities.Issue, 0),
			Stages: make([]string, 0, len(s.graph.order)),
		},
	}
	s.graph.run(e)
	clearNonFinite(e.result)
	return e.result
}

// evaluation carries one run's inputs and partial results between stages
type evaluation struct {
	scenario dto.Scenario
	base     repositories.MaterialRepository
	catalog  repositories.MaterialRepository
	result   *dto.EvaluationResult
}

func (e *evaluation) report(issues []entities.Issue) {
	e.result.Issues = append(e.result.Issues, issues...)
}

func evaluationStages() []Stage {
	return []Stage{
		{Name: StageCatalog, Run: runCatalog},
		{Name: StageThroughput, Run: runThroughput},
		{Name: StageConsumables, DependsOn: []string{StageThroughput}, Run: runConsumables},
		{Name: StageStructure, DependsOn: []string{StageCatalog, StageThroughput}, Run: runStructure},
		{Name: StageLamination, DependsOn: []string{StageThroughput, StageStructure}, Run: runLamination},
		{Name: StageAssets, Run: runAssets},
		{Name: StageOverhead, Run: runOverhead},
		{
			Name:      StageProfitability,
			DependsOn: []string{StageConsumables, StageStructure, StageAssets, StageOverhead},
			Run:       runProfitability,
		},
		{Name: StageTechnology, DependsOn: []string{StageStructure}, Run: runTechnology},
		{Name: StageMix, Run: runMix},
	}
}

func runCatalog(e *evaluation) {
	validation := calc.ValidateCatalog(e.scenario.Materials)
	for _, msg := range validation.Errors {
		e.report([]entities.Issue{entities.NewIssue(entities.InvalidInput, "materials", "%s", msg)})
	}

	// First occurrence of a duplicated name wins.
	scenarioCatalog := memory.NewMaterialRepository(len(e.scenario.Materials))
	for i := range e.scenario.Materials {
		_ = scenarioCatalog.SaveMaterial(&e.scenario.Materials[i])
	}

	e.catalog = &overlayCatalog{primary: scenarioCatalog, fallback: e.base}
}

func runThroughput(e *evaluation) {
	result, issues := calc.CalculateThroughput(e.scenario.Process)
	e.result.Throughput = result
	e.report(issues)
}

func runConsumables(e *evaluation) {
	e.result.Consumables = calc.CalculateConsumables(
		e.result.Throughput.AreaM2,
		e.scenario.Process.InkCoverageGSM,
		e.scenario.Consumables,
	)
}

func runStructure(e *evaluation) {
	result, issues := calc.CalculateStructure(
		e.scenario.Structure,
		e.result.Throughput.AreaM2,
		e.catalog,
		e.scenario.Consumables.AdhesivePricePerKg,
	)
	e.result.Structure = result
	e.report(issues)
}

func runLamination(e *evaluation) {
	result, issues := calc.CalculateLamination(
		e.result.Structure.PassCount,
		e.result.Throughput.LinearMeters,
		e.scenario.Lamination,
		e.scenario.Process,
	)
	e.result.Lamination = result
	e.report(issues)
}

func runAssets(e *evaluation) {
	result, issues := calc.CalculateAssets(e.scenario.Assets, e.scenario.Utilities, e.scenario.Process)
	e.result.Assets = result
	e.report(issues)

	e.result.CapexBreakdown = make([]dto.CapexShare, 0, len(result.Lines))
	for _, line := range result.Lines {
		e.result.CapexBreakdown = append(e.result.CapexBreakdown, dto.CapexShare{
			Asset:        line.Name,
			CapitalCost:  line.CapitalCost,
			SharePercent: line.CapitalSharePercent,
		})
	}
}

func runOverhead(e *evaluation) {
	e.result.Overhead = calc.CalculateOverhead(e.scenario.Workforce)
}

func runProfitability(e *evaluation) {
	r := e.result
	r.Costs = calc.CostComponents{
		RawMaterial:  r.Structure.RawMaterialCost,
		Ink:          r.Consumables.InkCost,
		Solvent:      r.Consumables.SolventCost,
		Adhesive:     r.Structure.AdhesiveCost,
		Power:        r.Assets.TotalPowerCost,
		Depreciation: r.Assets.TotalDepreciation,
		Overhead:     r.Overhead.Total,
	}

	result, issues := calc.CalculateProfitability(r.Costs, r.Structure.FinalTons, r.Assets.TotalCapital, e.scenario.Commercial)
	r.Profitability = result
	r.CostBreakdown = calc.BreakDownCosts(r.Costs, r.Structure.FinalTons)
	e.report(issues)
}

// runTechnology fills any comparison input left at zero from the structure
// being evaluated: material cost and tonnage from the monthly bill, meters
// per ton from the final basis weight and web width.
func runTechnology(e *evaluation) {
	params := e.scenario.Technology
	structure := e.result.Structure

	if params.MaterialCostPerTon == 0 {
		params.MaterialCostPerTon = entities.Divide(structure.RawMaterialCost, structure.FinalTons, "no output").Float()
	}
	if params.MetersPerTon == 0 {
		params.MetersPerTon = calc.MetersPerTon(structure.FinalGSM, e.scenario.Process.WebWidthMM)
	}
	if params.AverageMonthlyTons == 0 {
		params.AverageMonthlyTons = structure.FinalTons
	}

	result, issues := calc.CompareTechnologies(params, e.scenario.Utilities, e.scenario.Process)
	e.result.Technology = result
	e.report(issues)
}

func runMix(e *evaluation) {
	result, issues := calc.CalculateRevenueMix(e.scenario.Mix)
	e.result.Mix = result
	e.report(issues)
}
