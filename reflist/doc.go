// Package reflist provides RefList, the growable container of value records
// that generated builders use for list-of-builder properties.
//
// Elements are stored by value in a single backing array and handed out by
// pointer, so nested builders can be populated in place without boxing each
// element:
//
//	lines := b.Lines()
//	lines.Add(builders.NewOrderLineBuilder(line))
//	lines.At(0).SetQuantity(3)
//
// A pointer returned by At is only valid until the next operation that grows
// the backing array (Add, Insert). Use Ref for a handle that survives growth.
//
// Capacity grows along a fixed step table (4, 8, 16, 32, 48, 64, 80, 96, 128,
// 192, 256, 1024, 4096, 16384) and falls back to an exact fit above the
// largest step. Capacity never shrinks.
//
// A RefList is not safe for concurrent mutation.
package reflist
