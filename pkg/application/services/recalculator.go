package services

import (
	"fmt"
	"sync"

	"github.com/vsinha/filmplant/pkg/application/dto"
	"github.com/vsinha/filmplant/pkg/infrastructure/events"
)

// ScenarioSource supplies the scenario to re-evaluate
type ScenarioSource interface {
	Snapshot() dto.Scenario
}

// Recalculator re-evaluates the whole scenario whenever the worksheet
// changes and keeps the latest result.
type Recalculator struct {
	service  *EvaluationService
	source   ScenarioSource
	store    events.EventStore
	latest   *dto.EvaluationResult
	revision int
	mutex    sync.RWMutex
}

// NewRecalculator creates a recalculator and evaluates the source once
func NewRecalculator(service *EvaluationService, source ScenarioSource, store events.EventStore) *Recalculator {
	r := &Recalculator{
		service: service,
		source:  source,
		store:   store,
	}
	r.recalculate()
	return r
}

// Attach subscribes the recalculator to every worksheet change event
func (r *Recalculator) Attach() error {
	if r.store == nil {
		return fmt.Errorf("recalculator has no event store")
	}
	return r.store.Subscribe(events.WorksheetChangeEvents, r)
}

// Latest returns the most recent result and how many evaluations produced it
func (r *Recalculator) Latest() (*dto.EvaluationResult, int) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.latest, r.revision
}

// Handle re-evaluates the worksheet and records an EvaluationCompleted event
func (r *Recalculator) Handle(event events.Event) error {
	result, revision := r.recalculate()
	if r.store == nil {
		return nil
	}

	completed := events.EvaluationCompleted{
		Revision:   revision,
		IssueCount: len(result.Issues),
		Bottleneck: result.HasBottleneck(),
		Profit:     result.Profitability.Profit,
	}
	return r.store.AppendEvent(event.StreamID(), events.NewRecord(events.EvaluationCompletedEvent, event.StreamID(), completed))
}

// CanHandle reports whether eventType is a worksheet change
func (r *Recalculator) CanHandle(eventType string) bool {
	for _, t := range events.WorksheetChangeEvents {
		if t == eventType {
			return true
		}
	}
	return false
}

func (r *Recalculator) recalculate() (*dto.EvaluationResult, int) {
	result := r.service.Evaluate(r.source.Snapshot())

	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.latest = result
	r.revision++
	return result, r.revision
}
