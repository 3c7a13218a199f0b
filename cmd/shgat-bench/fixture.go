package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/shgat/config"
	"github.com/katalvlaran/shgat/metrics"
	"github.com/katalvlaran/shgat/routing"
)

// fixtureTool is one entry of fixture.json's "tools" array.
type fixtureTool struct {
	ID          string    `json:"id"`
	Embedding   []float64 `json:"embedding"`
	Description string    `json:"description"`
}

// fixtureCapability is one entry of fixture.json's "capabilities" array.
type fixtureCapability struct {
	ID          string    `json:"id"`
	Embedding   []float64 `json:"embedding"`
	ToolsUsed   []string  `json:"toolsUsed"`
	SuccessRate float64   `json:"successRate"`
	Description string    `json:"description"`
}

// fixtureOutcome is one entry of fixture.json's optional "outcomes" array,
// consumed by the train subcommand to seed pendingExamples via
// RecordOutcome before calling Train.
type fixtureOutcome struct {
	CapabilityID    string    `json:"capabilityId"`
	IntentEmbedding []float64 `json:"intentEmbedding"`
	ContextTools    []string  `json:"contextTools"`
	Success         bool      `json:"success"`
	DurationMs      int64     `json:"durationMs"`
}

// fixture is the on-disk shape loaded by --fixture: a flat set of tools
// and capabilities to register before a subcommand runs the engine.
type fixture struct {
	Tools        []fixtureTool       `json:"tools"`
	Capabilities []fixtureCapability `json:"capabilities"`
	Outcomes     []fixtureOutcome    `json:"outcomes"`
}

func loadFixture(path string) (fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fixture{}, fmt.Errorf("loadFixture: %w", err)
	}

	var f fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return fixture{}, fmt.Errorf("loadFixture: %w", err)
	}

	return f, nil
}

// buildEngine loads configPath (or config.Default() if empty), constructs
// a routing.Engine wired to stderr logging and a private metrics
// registry, loads the fixture at fixturePath, and registers every tool and
// capability it names. It does not recompute hypergraph features; callers
// that score run UpdateHypergraphFeatures themselves.
func buildEngine() (*routing.Engine, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("buildEngine: %w", err)
		}
		cfg = loaded
	}

	collector := metrics.NewCollector()
	e, err := routing.New(cfg, 10,
		routing.WithLogger(metrics.NewLogger(logLevel)),
		routing.WithMetrics(collector))
	if err != nil {
		return nil, fmt.Errorf("buildEngine: %w", err)
	}

	f, err := loadFixture(fixturePath)
	if err != nil {
		return nil, err
	}

	for _, tool := range f.Tools {
		if err := e.RegisterTool(tool.ID, tool.Embedding, tool.Description); err != nil {
			return nil, fmt.Errorf("buildEngine: registering tool %q: %w", tool.ID, err)
		}
	}

	for _, cap := range f.Capabilities {
		if err := e.RegisterCapability(cap.ID, cap.Embedding, cap.ToolsUsed, cap.SuccessRate, cap.Description, nil); err != nil {
			return nil, fmt.Errorf("buildEngine: registering capability %q: %w", cap.ID, err)
		}
	}

	return e, nil
}
