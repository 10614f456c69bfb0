// Package app wires the engine together for the CLI harness: it owns the
// logger, loads the environment configuration once, validates it into an
// environment graph, and runs document exports against it.
//
// The split mirrors the engine's lifecycle rules: everything built in
// NewApp (model, graph, backend registry) is immutable and shared across
// runs, while Run constructs fresh per-run state (counter engine, orderer
// working set) for every export.
package app
