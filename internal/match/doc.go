// Package match provides identifier normalization and edit-distance ranking
// used to suggest likely builder names when a nested builder cannot be found.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks candidate names by similarity to a missing one
package match
