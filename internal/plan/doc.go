// Package plan decides, per property of a target, what its builder stores
// and how the builder converts to and from the target type.
//
// Planning is a pure function of one analyze.Target, the immutable NameIndex
// of the batch, and the TypeIndex of existing builders. Resolution
// failures are returned as *ResolutionError values carrying the diagnostic
// kind; structural problems with the target (no unique constructor, clashing
// generated names) are plain errors.
package plan
