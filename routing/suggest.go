package routing

import (
	"context"
	"fmt"

	"github.com/katalvlaran/shgat/hyperpath"
)

// Task is one node of a suggestedDag expansion: a tool invocation that
// depends on the task immediately before it in the DR-DSP node sequence
// (spec: "task_i.dependsOn = [task_{i-1}], dependsOn[0] = []").
type Task struct {
	ID        string
	ToolID    string
	DependsOn []string
}

// Suggestion is one ranked alternative capability offered when no single
// candidate clears the run-decision gate.
type Suggestion struct {
	CapabilityID string
	Score        float64
}

// SuggestResult is suggestDag's output shape (spec §6: {bestCapability?,
// confidence, suggestedDag?}).
type SuggestResult struct {
	BestCapabilityID string
	Confidence       float64
	// Run is true when confidence and successRate both clear their
	// acceptance gates: callers should execute BestCapabilityID directly
	// rather than walk SuggestedDag.
	Run bool
	// Suggestions holds the top-3 ranked alternatives when Run is false.
	Suggestions []Suggestion
	SuggestedDag []Task
}

// SuggestDag scores capabilities against intentEmbedding and decides
// between a direct "run" recommendation (confidence >= cfg.AcceptanceThreshold
// AND the best capability's successRate >= cfg.ReliabilityThreshold) and a
// suggested top-3 with a DAG expansion of the best capability's hyperpath
// (spec §6's suggestDag, §4.7's discover/suggest/accept pipeline). Always
// available, including while the engine is quarantined: it is a read path.
//
// It never returns ErrNoCapabilities: an empty capability set returns
// {Confidence: 0} with a nil error, matching the explicit worked example.
func (e *Engine) SuggestDag(ctx context.Context, intentEmbedding []float64, contextTools []string) (SuggestResult, error) {
	scored, err := e.ScoreCapabilities(ctx, intentEmbedding, contextTools)
	if err != nil {
		return SuggestResult{}, fmt.Errorf("routing.SuggestDag: %w", err)
	}
	if len(scored) == 0 {
		return SuggestResult{Confidence: 0}, nil
	}

	best := scored[0]
	bestNode, err := e.fs.GetNode(best.CapabilityID)
	if err != nil {
		return SuggestResult{}, fmt.Errorf("routing.SuggestDag: %w", err)
	}

	dag, err := e.suggestedDagFor(ctx, best.CapabilityID)
	if err != nil {
		return SuggestResult{}, fmt.Errorf("routing.SuggestDag: %w", err)
	}

	run := best.Score >= e.cfg.AcceptanceThreshold && bestNode.Features.Reliability.SuccessRate >= e.cfg.ReliabilityThreshold

	result := SuggestResult{
		BestCapabilityID: best.CapabilityID,
		Confidence:       best.Score,
		Run:              run,
		SuggestedDag:     dag,
	}

	if !run {
		top := scored
		if len(top) > 3 {
			top = top[:3]
		}
		result.Suggestions = make([]Suggestion, len(top))
		for i, s := range top {
			result.Suggestions[i] = Suggestion{CapabilityID: s.CapabilityID, Score: s.Score}
		}
	}

	return result, nil
}

// suggestedDagFor builds the Task DAG for capabilityID's hyperpath: the
// chain of tools DR-DSP returns between the capability's first source
// tool and last target tool, expanded into tasks chained one-to-one.
func (e *Engine) suggestedDagFor(ctx context.Context, capabilityID string) ([]Task, error) {
	inc, err := e.fs.Incidence()
	if err != nil {
		return nil, err
	}

	var found bool
	var sources, targets []string
	for _, he := range inc.Hyperedges() {
		if he.CapabilityID == capabilityID {
			sources, targets = he.Sources, he.Targets
			found = true
			break
		}
	}
	if !found || len(sources) == 0 || len(targets) == 0 {
		return nil, nil
	}

	source := sources[0]
	target := targets[len(targets)-1]

	result, err := hyperpath.FindShortestHyperpath(ctx, inc.Hyperedges(), source, target)
	if err != nil {
		return nil, err
	}
	if !result.Found {
		return nil, nil
	}

	tasks := make([]Task, len(result.NodeSequence))
	for i, toolID := range result.NodeSequence {
		var deps []string
		if i > 0 {
			deps = []string{fmt.Sprintf("task_%d", i-1)}
		}
		tasks[i] = Task{ID: fmt.Sprintf("task_%d", i), ToolID: toolID, DependsOn: deps}
	}

	return tasks, nil
}
