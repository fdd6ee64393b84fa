package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/filmplant/pkg/application/dto"
	testhelpers "github.com/vsinha/filmplant/pkg/application/services/testing"
	"github.com/vsinha/filmplant/pkg/domain/entities"
	"github.com/vsinha/filmplant/pkg/infrastructure/events"
)

func newTestWorksheet(t *testing.T) (*Worksheet, *events.InMemoryEventStore, *Recalculator) {
	t.Helper()
	store := events.NewInMemoryEventStore()
	worksheet := NewWorksheet(testhelpers.BuildPressScenario(), store)
	recalculator := NewRecalculator(NewEvaluationService(testhelpers.BuildCatalog()), worksheet, store)
	require.NoError(t, recalculator.Attach())
	return worksheet, store, recalculator
}

func TestWorksheet_StreamID(t *testing.T) {
	worksheet := NewWorksheet(dto.Scenario{}, nil)

	_, err := uuid.Parse(worksheet.ID())
	assert.NoError(t, err)
	assert.NotEqual(t, worksheet.ID(), NewWorksheet(dto.Scenario{}, nil).ID())
}

func TestWorksheet_AssetRowsDriveRecalculation(t *testing.T) {
	worksheet, store, recalculator := newTestWorksheet(t)
	initial, revision := recalculator.Latest()
	require.Equal(t, 1, revision)

	index, err := worksheet.AddAsset(entities.Asset{Name: "Slitter", CapitalCost: 800_000, UsefulLifeYears: 10, RatedPowerKW: 40})
	require.NoError(t, err)
	assert.Equal(t, 2, index)

	afterAdd, revision := recalculator.Latest()
	assert.Equal(t, 2, revision)
	assert.InDelta(t, initial.Assets.TotalCapital+800_000, afterAdd.Assets.TotalCapital, 1e-6)
	assert.Len(t, afterAdd.Assets.Lines, 3)

	require.NoError(t, worksheet.UpdateAsset(index, entities.Asset{Name: "Slitter", CapitalCost: 1_000_000, UsefulLifeYears: 10}))
	require.NoError(t, worksheet.RemoveAsset(0))

	latest, revision := recalculator.Latest()
	assert.Equal(t, 4, revision)
	assert.InDelta(t, 1_200_000+1_000_000.0, latest.Assets.TotalCapital, 1e-6)
	assert.Equal(t, "Laminator", latest.Assets.Lines[0].Name)

	stream, _ := store.ReadEvents(worksheet.ID(), 1)
	types := make([]string, 0, len(stream))
	for _, e := range stream {
		types = append(types, e.Type())
	}
	assert.Equal(t, []string{
		events.RowAddedEvent, events.EvaluationCompletedEvent,
		events.RowUpdatedEvent, events.EvaluationCompletedEvent,
		events.RowRemovedEvent, events.EvaluationCompletedEvent,
	}, types)
}

func TestWorksheet_RowEditsAcrossTables(t *testing.T) {
	worksheet, _, recalculator := newTestWorksheet(t)

	_, err := worksheet.AddRole(entities.WorkforceRole{Title: "Helper", Headcount: 4, BasicSalary: 2500})
	require.NoError(t, err)
	_, err = worksheet.AddAdminCost(entities.AdminCost{Label: "Rent", MonthlyAmount: 20000})
	require.NoError(t, err)
	require.NoError(t, worksheet.RemoveMixSegment(1))

	latest, _ := recalculator.Latest()
	assert.Equal(t, 16, latest.Overhead.TotalHeadcount)
	assert.Equal(t, 30000.0, latest.Overhead.Admin)
	assert.Len(t, latest.Mix.Segments, 1)
	assert.NotEmpty(t, latest.IssuesOfKind(entities.ConfigurationWarning), "remaining share is 60%")
}

func TestWorksheet_ApplyParameters(t *testing.T) {
	worksheet, store, recalculator := newTestWorksheet(t)

	require.NoError(t, worksheet.Apply("lamination", func(s *dto.Scenario) {
		s.Lamination.SpeedMPerMin = 150
	}))

	latest, _ := recalculator.Latest()
	assert.True(t, latest.HasBottleneck())

	completed, _ := store.ReadEvents(worksheet.ID(), 2)
	require.Len(t, completed, 1)
	data, ok := events.PayloadAs[events.EvaluationCompleted](completed[0])
	require.True(t, ok)
	assert.True(t, data.Bottleneck)
	assert.Equal(t, 2, data.Revision)
}

func TestWorksheet_OutOfRangeEdits(t *testing.T) {
	worksheet, store, _ := newTestWorksheet(t)

	err := worksheet.UpdateRole(5, entities.WorkforceRole{Title: "Ghost"})
	require.Error(t, err)
	assert.Equal(t, "workforce row 5 out of range (2 rows)", err.Error())
	assert.Error(t, worksheet.RemoveTechnology(-1))
	assert.Zero(t, store.Position(), "rejected edits publish nothing")
}

func TestWorksheet_SnapshotIsACopy(t *testing.T) {
	worksheet := NewWorksheet(testhelpers.BuildPressScenario(), nil)

	snapshot := worksheet.Snapshot()
	snapshot.Assets[0].CapitalCost = 1

	assert.Equal(t, 6_000_000.0, worksheet.Snapshot().Assets[0].CapitalCost)
}

func TestWorksheet_Replace(t *testing.T) {
	worksheet, _, recalculator := newTestWorksheet(t)

	require.NoError(t, worksheet.Replace(dto.Scenario{}))

	latest, revision := recalculator.Latest()
	assert.Equal(t, 2, revision)
	assert.Zero(t, latest.Profitability.Revenue)
}
