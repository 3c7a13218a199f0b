// Package routing is the engine façade: it wires featurestore, spectral,
// shgat, trainer, and hyperpath behind the public call-contract table
// (scoreCapabilities, scoreTools, suggestDag, findShortestHyperpath,
// recordOutcome, train, snapshotParams, loadParams) plus the
// registerCapability/registerTool/updateHypergraphFeatures model-mutation
// calls. Grounded on the teacher's builder/api.go convention: one
// orchestrator (Engine) exposing thin public entry points, with
// implementation split across per-concern files in this package.
package routing
