// Package analyze adapts the Go front end to the builder generator.
//
// It loads packages with golang.org/x/tools/go/packages, discovers the types
// marked with //builder:generate, and normalizes each exported getter into a
// PropertyShape. The hand-written half of every builders package (hooks, aux
// structs, hand-written builders) is collected from syntax alone, since that
// package cannot type check before its generated files exist.
//
// Key types:
//   - Batch: every analyzed package of one run
//   - Target: one marked type with its properties and constructor candidates
//   - Companion: hooks, aux fields, and declared types of a builders package
//   - TypeIndex: qualified names of builder types that already exist: the
//     hand-written ones of the batch, plus every builder type (generated
//     included) of element packages loaded from outside the batch
package analyze
