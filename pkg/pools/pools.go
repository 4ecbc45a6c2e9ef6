// Package pools provides object pooling for reducing GC pressure.
//
// Per-source sweeps (closeness, harmonic, diameter/radius) allocate one
// distance vector and one visit-order buffer per worker chunk. Pooling them
// keeps repeated analyses over the same graph from re-allocating O(n)
// scratch on every call.
//
//   - SlicePool: size-class based slice pooling for any element type
//   - GetInts/PutInts: the shared []int pool used by the BFS sweeps
package pools
