// Package tree provides the immutable binary aggregation tree the
// signing session is organized around.
//
// A tree is built bottom-up from an ordered, non-empty sequence of leaf
// values with a caller-supplied pairwise combine function; every
// internal node caches the combined value of its children. For n leaf
// public keys and a key-aggregation combine, the root value is the
// n-party aggregate key.
//
//	root, err := tree.Build(publicKeys, params.KeyAgg)
//
// The combine function is a capability: the package knows nothing about
// what the values mean or how they merge. The builder guarantees only
// the pairing order — values at indices (2i, 2i+1) combine, a trailing
// unpaired value is carried up unchanged — so the shape is a pure
// function of the leaf count, which is what lets two protocol rounds
// run over structurally identical trees.
//
// Trees are immutable once built. All mutable protocol state lives
// outside the tree, keyed by node value (see the session package).
package tree
