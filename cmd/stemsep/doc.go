// Package main hosts the stemsep CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into
// validator and separation-pipeline calls, renders live progress and
// result tables, and maps failures onto process exit codes at the
// boundary (1 for validation and processing errors, 130 for
// user-initiated interrupts).
package main
