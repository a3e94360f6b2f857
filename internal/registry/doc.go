// Package registry runs the builder pipeline over a batch of analyzed
// packages.
//
// A run has two phases. Phase 1 names every builder the batch will produce
// (plan.NameIndex). Phase 2 plans and renders each target on its own, in
// parallel, reading the phase-1 index but never writing shared state. A
// failure in one target becomes a diagnostic and never affects another.
package registry
