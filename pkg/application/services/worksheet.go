package services

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/vsinha/filmplant/pkg/application/dto"
	"github.com/vsinha/filmplant/pkg/domain/entities"
	"github.com/vsinha/filmplant/pkg/infrastructure/events"
)

// Worksheet holds the operator-editable scenario. Every edit is published
// to the event store under the worksheet's stream so subscribers such as
// the Recalculator can react.
type Worksheet struct {
	id       string
	scenario dto.Scenario
	store    events.EventStore
	mutex    sync.RWMutex
}

// NewWorksheet creates a worksheet seeded with a copy of scenario
func NewWorksheet(scenario dto.Scenario, store events.EventStore) *Worksheet {
	return &Worksheet{
		id:       uuid.NewString(),
		scenario: scenario.Clone(),
		store:    store,
	}
}

// ID returns the event stream identifier of this worksheet
func (w *Worksheet) ID() string {
	return w.id
}

// Snapshot returns a copy of the current scenario
func (w *Worksheet) Snapshot() dto.Scenario {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.scenario.Clone()
}

// Replace swaps in a whole new scenario
func (w *Worksheet) Replace(scenario dto.Scenario) error {
	w.mutex.Lock()
	w.scenario = scenario.Clone()
	label := w.scenario.Structure.Label
	w.mutex.Unlock()

	return w.publish(events.ScenarioReplacedEvent, events.ScenarioReplaced{Label: label})
}

// Apply edits the scalar parameters of one section of the scenario
func (w *Worksheet) Apply(section string, edit func(*dto.Scenario)) error {
	w.mutex.Lock()
	edit(&w.scenario)
	w.mutex.Unlock()

	return w.publish(events.ParametersChangedEvent, events.ParametersChanged{Section: section})
}

// AddAsset appends an asset and returns its row index
func (w *Worksheet) AddAsset(asset entities.Asset) (int, error) {
	return addRow(w, events.AssetsTable, &w.scenario.Assets, asset)
}

// UpdateAsset replaces the asset at index
func (w *Worksheet) UpdateAsset(index int, asset entities.Asset) error {
	return updateRow(w, events.AssetsTable, &w.scenario.Assets, index, asset)
}

// RemoveAsset deletes the asset at index
func (w *Worksheet) RemoveAsset(index int) error {
	return removeRow(w, events.AssetsTable, &w.scenario.Assets, index)
}

// AddRole appends a workforce role and returns its row index
func (w *Worksheet) AddRole(role entities.WorkforceRole) (int, error) {
	return addRow(w, events.WorkforceTable, &w.scenario.Workforce.Roles, role)
}

// UpdateRole replaces the workforce role at index
func (w *Worksheet) UpdateRole(index int, role entities.WorkforceRole) error {
	return updateRow(w, events.WorkforceTable, &w.scenario.Workforce.Roles, index, role)
}

// RemoveRole deletes the workforce role at index
func (w *Worksheet) RemoveRole(index int) error {
	return removeRow(w, events.WorkforceTable, &w.scenario.Workforce.Roles, index)
}

// AddAdminCost appends an administrative cost line and returns its row index
func (w *Worksheet) AddAdminCost(cost entities.AdminCost) (int, error) {
	return addRow(w, events.AdminCostsTable, &w.scenario.Workforce.Admin, cost)
}

// UpdateAdminCost replaces the administrative cost line at index
func (w *Worksheet) UpdateAdminCost(index int, cost entities.AdminCost) error {
	return updateRow(w, events.AdminCostsTable, &w.scenario.Workforce.Admin, index, cost)
}

// RemoveAdminCost deletes the administrative cost line at index
func (w *Worksheet) RemoveAdminCost(index int) error {
	return removeRow(w, events.AdminCostsTable, &w.scenario.Workforce.Admin, index)
}

// AddTechnology appends a printing technology variant and returns its row index
func (w *Worksheet) AddTechnology(variant entities.TechnologyVariant) (int, error) {
	return addRow(w, events.TechnologiesTable, &w.scenario.Technology.Variants, variant)
}

// UpdateTechnology replaces the technology variant at index
func (w *Worksheet) UpdateTechnology(index int, variant entities.TechnologyVariant) error {
	return updateRow(w, events.TechnologiesTable, &w.scenario.Technology.Variants, index, variant)
}

// RemoveTechnology deletes the technology variant at index
func (w *Worksheet) RemoveTechnology(index int) error {
	return removeRow(w, events.TechnologiesTable, &w.scenario.Technology.Variants, index)
}

// AddMixSegment appends a revenue mix segment and returns its row index
func (w *Worksheet) AddMixSegment(segment entities.MixSegment) (int, error) {
	return addRow(w, events.MixTable, &w.scenario.Mix.Segments, segment)
}

// UpdateMixSegment replaces the mix segment at index
func (w *Worksheet) UpdateMixSegment(index int, segment entities.MixSegment) error {
	return updateRow(w, events.MixTable, &w.scenario.Mix.Segments, index, segment)
}

// RemoveMixSegment deletes the mix segment at index
func (w *Worksheet) RemoveMixSegment(index int) error {
	return removeRow(w, events.MixTable, &w.scenario.Mix.Segments, index)
}

// AddMaterial appends a catalog material and returns its row index
func (w *Worksheet) AddMaterial(material entities.Material) (int, error) {
	return addRow(w, events.MaterialsTable, &w.scenario.Materials, material)
}

// UpdateMaterial replaces the catalog material at index
func (w *Worksheet) UpdateMaterial(index int, material entities.Material) error {
	return updateRow(w, events.MaterialsTable, &w.scenario.Materials, index, material)
}

// RemoveMaterial deletes the catalog material at index
func (w *Worksheet) RemoveMaterial(index int) error {
	return removeRow(w, events.MaterialsTable, &w.scenario.Materials, index)
}

// publish must be called without holding the worksheet lock; subscribers
// are notified synchronously and may read the worksheet back.
func (w *Worksheet) publish(eventType string, data any) error {
	if w.store == nil {
		return nil
	}
	return w.store.AppendEvent(w.id, events.NewRecord(eventType, w.id, data))
}

func addRow[T any](w *Worksheet, table string, rows *[]T, row T) (int, error) {
	w.mutex.Lock()
	*rows = append(*rows, row)
	index := len(*rows) - 1
	w.mutex.Unlock()

	return index, w.publish(events.RowAddedEvent, events.RowAdded{Table: table, Index: index, Row: row})
}

func updateRow[T any](w *Worksheet, table string, rows *[]T, index int, row T) error {
	w.mutex.Lock()
	if index < 0 || index >= len(*rows) {
		n := len(*rows)
		w.mutex.Unlock()
		return fmt.Errorf("%s row %d out of range (%d rows)", table, index, n)
	}
	old := (*rows)[index]
	(*rows)[index] = row
	w.mutex.Unlock()

	return w.publish(events.RowUpdatedEvent, events.RowUpdated{Table: table, Index: index, OldRow: old, NewRow: row})
}

func removeRow[T any](w *Worksheet, table string, rows *[]T, index int) error {
	w.mutex.Lock()
	if index < 0 || index >= len(*rows) {
		n := len(*rows)
		w.mutex.Unlock()
		return fmt.Errorf("%s row %d out of range (%d rows)", table, index, n)
	}
	removed := (*rows)[index]
	*rows = append((*rows)[:index:index], (*rows)[index+1:]...)
	w.mutex.Unlock()

	return w.publish(events.RowRemovedEvent, events.RowRemoved{Table: table, Index: index, Row: removed})
}
