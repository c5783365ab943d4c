package tree

import (
	"errors"
	"fmt"
)

// ErrNoLeaves is returned by [Build] when given an empty leaf sequence.
var ErrNoLeaves = errors.New("tree: cannot build a tree from zero leaves")

// CombineFunc derives a parent value from two child values. A failure
// aborts the build; no partial tree is returned.
type CombineFunc[V any] func(left, right V) (V, error)

// Node is one node of an immutable binary aggregation tree. Every node
// carries a value; an internal node owns its two children and caches the
// combined value derived from them. Nodes never point back at their
// parent: position within the tree is always passed as an explicit
// parameter during traversal.
type Node[V any] struct {
	left  *Node[V]
	right *Node[V]
	value V
}

// Leaf returns a terminal node carrying v.
func Leaf[V any](v V) *Node[V] {
	return &Node[V]{value: v}
}

// Internal returns an internal node over the given children. left must
// not be nil. right may be nil for a degenerate node carrying a single
// child's value upward; [Build] never produces such nodes, but
// traversals are expected to account for them.
func Internal[V any](left, right *Node[V], v V) *Node[V] {
	return &Node[V]{left: left, right: right, value: v}
}

// Value returns the node's value: the participant key for a leaf, the
// combined key for an internal node.
func (n *Node[V]) Value() V {
	return n.value
}

// Left returns the left child, or nil for a leaf.
func (n *Node[V]) Left() *Node[V] {
	return n.left
}

// Right returns the right child, or nil for a leaf or a degenerate
// internal node.
func (n *Node[V]) Right() *Node[V] {
	return n.right
}

// IsLeaf reports whether the node is terminal.
func (n *Node[V]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// IsInternal reports whether the node has children.
func (n *Node[V]) IsInternal() bool {
	return !n.IsLeaf()
}

// Height returns the number of levels in the subtree rooted at n,
// counting the leaf level as 1.
func (n *Node[V]) Height() int {
	if n.IsLeaf() {
		return 1
	}
	h := n.left.Height()
	if n.right != nil {
		if rh := n.right.Height(); rh > h {
			h = rh
		}
	}
	return 1 + h
}

// LeafCount returns the number of leaves reachable from n.
func (n *Node[V]) LeafCount() int {
	if n.IsLeaf() {
		return 1
	}
	count := n.left.LeafCount()
	if n.right != nil {
		count += n.right.LeafCount()
	}
	return count
}

// Leaves returns the leaf values in left-to-right order.
func (n *Node[V]) Leaves() []V {
	out := make([]V, 0, n.LeafCount())
	return n.appendLeaves(out)
}

func (n *Node[V]) appendLeaves(out []V) []V {
	if n.IsLeaf() {
		return append(out, n.value)
	}
	out = n.left.appendLeaves(out)
	if n.right != nil {
		out = n.right.appendLeaves(out)
	}
	return out
}

// Build folds the leaf values into a single tree, level by level: nodes
// at indices (2i, 2i+1) of the current level combine into one parent
// whose value is combine(left, right), and a trailing unpaired node is
// carried up to the next level unchanged. The resulting shape depends
// only on len(leaves), so the same participant ordering always yields
// the same structural tree.
func Build[V any](leaves []V, combine CombineFunc[V]) (*Node[V], error) {
	if len(leaves) == 0 {
		return nil, ErrNoLeaves
	}
	if combine == nil {
		return nil, errors.New("tree: nil combine function")
	}

	level := make([]*Node[V], len(leaves))
	for i, v := range leaves {
		level[i] = Leaf(v)
	}

	for len(level) > 1 {
		next := make([]*Node[V], 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				// Unpaired trailing node: carry it up unchanged.
				next = append(next, level[i])
				continue
			}
			left, right := level[i], level[i+1]
			v, err := combine(left.Value(), right.Value())
			if err != nil {
				return nil, fmt.Errorf("tree: combining values: %w", err)
			}
			next = append(next, Internal(left, right, v))
		}
		level = next
	}
	return level[0], nil
}
