package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vsinha/filmplant/pkg/domain/entities"
	"github.com/vsinha/filmplant/pkg/infrastructure/repositories/memory"
)

func testCatalog(t *testing.T) *memory.MaterialRepository {
	t.Helper()
	repo, err := memory.NewMaterialRepositoryFrom([]entities.Material{
		{Name: "PET", Density: 1.4, UnitPrice: 9000},
		{Name: "PE", Density: 0.92, UnitPrice: 5000},
		{Name: "ALU", Density: 2.7, UnitPrice: 18000},
		{Name: "BOPP", Density: 0.91, UnitPrice: 7500},
	})
	require.NoError(t, err)
	return repo
}

func referenceProcess() entities.ProcessParameters {
	return entities.ProcessParameters{
		MachineSpeedMPerMin:     350,
		WebWidthMM:              1000,
		InkCoverageGSM:          3,
		JobsPerMonth:            60,
		ChangeoverMinutesPerJob: 120,
		ShiftMinutesPerMonth:    entities.ShiftMinutes(2, 12, 26),
		EfficiencyFactor:        0.85,
	}
}

func hasIssue(issues []entities.Issue, kind entities.IssueKind, field string) bool {
	for _, issue := range issues {
		if issue.Kind == kind && issue.Field == field {
			return true
		}
	}
	return false
}
