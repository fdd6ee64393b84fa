package services

import (
	"fmt"
	"strings"
)

// Stage is one calculation step of an evaluation and the stages it reads from
type Stage struct {
	Name      string
	DependsOn []string
	Run       func(e *evaluation)
}

// StageGraph holds stages in an order where every stage runs after its dependencies
type StageGraph struct {
	stages []Stage
	order  []int
}

// NewStageGraph orders stages topologically. Stages with no ordering
// constraint between them keep their declaration order.
func NewStageGraph(stages []Stage) (*StageGraph, error) {
	index := make(map[string]int, len(stages))
	for i, stage := range stages {
		if _, exists := index[stage.Name]; exists {
			return nil, fmt.Errorf("duplicate stage %s", stage.Name)
		}
		index[stage.Name] = i
	}

	inDegree := make([]int, len(stages))
	dependents := make([][]int, len(stages))
	for i, stage := range stages {
		for _, dep := range stage.DependsOn {
			j, exists := index[dep]
			if !exists {
				return nil, fmt.Errorf("stage %s depends on unknown stage %s", stage.Name, dep)
			}
			inDegree[i]++
			dependents[j] = append(dependents[j], i)
		}
	}

	order := make([]int, 0, len(stages))
	done := make([]bool, len(stages))
	for len(order) < len(stages) {
		next := -1
		for i := range stages {
			if !done[i] && inDegree[i] == 0 {
				next = i
				break
			}
		}
		if next < 0 {
			return nil, fmt.Errorf("stage dependency cycle among: %s", strings.Join(pending(stages, done), ", "))
		}

		done[next] = true
		order = append(order, next)
		for _, d := range dependents[next] {
			inDegree[d]--
		}
	}

	return &StageGraph{stages: stages, order: order}, nil
}

// MustStageGraph is like NewStageGraph but panics on an invalid graph
func MustStageGraph(stages []Stage) *StageGraph {
	g, err := NewStageGraph(stages)
	if err != nil {
		panic(err)
	}
	return g
}

// Names returns the stage names in execution order
func (g *StageGraph) Names() []string {
	names := make([]string, 0, len(g.order))
	for _, i := range g.order {
		names = append(names, g.stages[i].Name)
	}
	return names
}

func (g *StageGraph) run(e *evaluation) {
	for _, i := range g.order {
		stage := g.stages[i]
		if stage.Run != nil {
			stage.Run(e)
		}
		e.result.Stages = append(e.result.Stages, stage.Name)
	}
}

func pending(stages []Stage, done []bool) []string {
	var names []string
	for i, stage := range stages {
		if !done[i] {
			names = append(names, stage.Name)
		}
	}
	return names
}
