package events

const (
	RowAddedEvent   = "worksheet.row.added"
	RowUpdatedEvent = "worksheet.row.updated"
	RowRemovedEvent = "worksheet.row.removed"

	ParametersChangedEvent = "worksheet.parameters.changed"
	ScenarioReplacedEvent  = "worksheet.scenario.replaced"

	EvaluationCompletedEvent = "evaluation.completed"
)

// Editable worksheet tables
const (
	AssetsTable       = "assets"
	WorkforceTable    = "workforce"
	AdminCostsTable   = "admin_costs"
	TechnologiesTable = "technologies"
	MixTable          = "mix"
	MaterialsTable    = "materials"
)

// WorksheetChangeEvents lists every event that invalidates the last evaluation
var WorksheetChangeEvents = []string{
	RowAddedEvent,
	RowUpdatedEvent,
	RowRemovedEvent,
	ParametersChangedEvent,
	ScenarioReplacedEvent,
}

type RowAdded struct {
	Table string `json:"table"`
	Index int    `json:"index"`
	Row   any    `json:"row"`
}

type RowUpdated struct {
	Table  string `json:"table"`
	Index  int    `json:"index"`
	OldRow any    `json:"old_row"`
	NewRow any    `json:"new_row"`
}

type RowRemoved struct {
	Table string `json:"table"`
	Index int    `json:"index"`
	Row   any    `json:"row"`
}

type ParametersChanged struct {
	Section string `json:"section"`
}

type ScenarioReplaced struct {
	Label string `json:"label"`
}

type EvaluationCompleted struct {
	Revision   int     `json:"revision"`
	IssueCount int     `json:"issue_count"`
	Bottleneck bool    `json:"bottleneck"`
	Profit     float64 `json:"profit"`
}
