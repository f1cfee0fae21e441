// Package frontier implements the open set of a best-first search: an
// indexed binary min-heap keyed by estimated total cost.
//
// Contract:
//
//   - Insert adds an item once; inserting an item already present fails
//     with ErrDuplicate instead of creating a second entry.
//   - To change a key, Remove the item and Insert it again. Remove is
//     O(log n) thanks to a position index, so no stale entry is ever left
//     behind to be extracted later.
//   - ExtractMin and PeekMin order by key, then by the item itself, so equal
//     keys leave in a fixed, reproducible order.
//
// Complexity:
//
//   - Insert, ExtractMin, Remove: O(log n).
//   - PeekMin, Contains, Key, Len: O(1).
//   - Clear: O(n) to drop the index; Items: O(n log n).
//
// Frontier is not safe for concurrent use.
package frontier
