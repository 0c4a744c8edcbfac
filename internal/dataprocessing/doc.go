// Package dataprocessing normalizes heterogeneous social-media performance
// exports into one canonical tabular schema and operates on the result.
//
// # Architecture
//
// The package is organized around three entry points:
//
// 1. Reconciler: turns one raw export (Excel or CSV rows) into a canonical PostTable
// 2. Merge: concatenates many tables and collapses duplicate post ids
// 3. Compare: diffs an old and a new snapshot of the same dataset
//
// # Usage
//
// Reconciling a single export:
//
//	rec := dataprocessing.NewReconciler(logger)
//	table, err := rec.Reconcile(dataprocessing.Source{Filename: name, Rows: rows})
//
// Merging and comparing:
//
//	merged := dataprocessing.Merge(tables)
//	result, err := dataprocessing.Compare(oldTable, newTable)
//
// # Error Handling
//
// Field- and row-level problems never abort a file. Each one is recovered
// with a documented fallback (original string, 0, 0.0 or a sentinel post id)
// and recorded as a Diagnostic on the resulting table. Only structural
// failures, such as a source with no rows at all, surface as errors.
package dataprocessing
