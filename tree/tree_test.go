package tree

import (
	"errors"
	"fmt"
	"testing"
)

func add(x, y int) (int, error) {
	return x + y, nil
}

func concat(x, y string) (string, error) {
	return x + y, nil
}

func TestBuildEmptyFails(t *testing.T) {
	_, err := Build(nil, add)
	if !errors.Is(err, ErrNoLeaves) {
		t.Fatalf("expected ErrNoLeaves, got %v", err)
	}

	_, err = Build([]int{}, add)
	if !errors.Is(err, ErrNoLeaves) {
		t.Fatalf("expected ErrNoLeaves, got %v", err)
	}
}

func TestBuildNilCombineFails(t *testing.T) {
	_, err := Build([]int{1, 2}, nil)
	if err == nil {
		t.Fatal("expected error for nil combine function")
	}
}

func TestSingleLeaf(t *testing.T) {
	n, err := Build([]int{42}, add)
	if err != nil {
		t.Fatal(err)
	}

	if !n.IsLeaf() {
		t.Error("single-leaf tree root should be a leaf")
	}
	if n.Value() != 42 {
		t.Errorf("expected value 42, got %d", n.Value())
	}
	if h := n.Height(); h != 1 {
		t.Errorf("expected height 1, got %d", h)
	}
	if c := n.LeafCount(); c != 1 {
		t.Errorf("expected leaf count 1, got %d", c)
	}
}

func TestLeafCountMatchesInput(t *testing.T) {
	n, err := Build([]int{1, 2, 3, 4, 5}, add)
	if err != nil {
		t.Fatal(err)
	}
	if c := n.LeafCount(); c != 5 {
		t.Errorf("expected leaf count 5, got %d", c)
	}
}

func TestLeavesPreserveOrder(t *testing.T) {
	input := []int{5, 1, 5, 9, 1, 2}
	n, err := Build(input, add)
	if err != nil {
		t.Fatal(err)
	}

	got := n.Leaves()
	if len(got) != len(input) {
		t.Fatalf("expected %d leaves, got %d", len(input), len(got))
	}
	for i, v := range input {
		if got[i] != v {
			t.Errorf("leaf %d: expected %d, got %d", i, v, got[i])
		}
	}
}

// For powers of two this construction is perfectly balanced:
// height = log2(n) + 1, counting the leaf level as height 1.
func TestPowerOfTwoHeights(t *testing.T) {
	for exp := 0; exp <= 5; exp++ {
		n := 1 << exp
		input := make([]int, n)
		for i := range input {
			input[i] = i
		}

		root, err := Build(input, add)
		if err != nil {
			t.Fatal(err)
		}
		if h := root.Height(); h != exp+1 {
			t.Errorf("n=%d: expected height %d, got %d", n, exp+1, h)
		}
		if c := root.LeafCount(); c != n {
			t.Errorf("n=%d: expected leaf count %d, got %d", n, c, root.LeafCount())
		}
	}
}

// Height is within [1, n] and the leaf sequence survives for every size.
func TestTreeProperties(t *testing.T) {
	for n := 1; n <= 64; n++ {
		input := make([]int, n)
		for i := range input {
			input[i] = i * 7
		}

		root, err := Build(input, add)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if c := root.LeafCount(); c != n {
			t.Errorf("n=%d: leaf count %d", n, c)
		}
		h := root.Height()
		if h < 1 || h > n {
			t.Errorf("n=%d: height %d out of bounds", n, h)
		}
		for i, v := range root.Leaves() {
			if v != input[i] {
				t.Errorf("n=%d: leaf %d changed", n, i)
			}
		}
	}
}

func TestInternalValuesAreCombined(t *testing.T) {
	t.Run("FourLeaves", func(t *testing.T) {
		root, err := Build([]string{"a", "b", "c", "d"}, concat)
		if err != nil {
			t.Fatal(err)
		}

		if v := root.Value(); v != "abcd" {
			t.Errorf("root value: %q", v)
		}
		if v := root.Left().Value(); v != "ab" {
			t.Errorf("left value: %q", v)
		}
		if v := root.Right().Value(); v != "cd" {
			t.Errorf("right value: %q", v)
		}
		if h := root.Height(); h != 3 {
			t.Errorf("height: %d", h)
		}
	})

	t.Run("ThreeLeavesCarryUp", func(t *testing.T) {
		root, err := Build([]string{"a", "b", "c"}, concat)
		if err != nil {
			t.Fatal(err)
		}

		// (a,b) pair first; c is carried up unchanged and pairs with
		// the (ab) node at the next level.
		if v := root.Value(); v != "abc" {
			t.Errorf("root value: %q", v)
		}
		if v := root.Left().Value(); v != "ab" {
			t.Errorf("left value: %q", v)
		}
		right := root.Right()
		if !right.IsLeaf() || right.Value() != "c" {
			t.Errorf("right should be the carried leaf c, got %q", right.Value())
		}
		if h := root.Height(); h != 3 {
			t.Errorf("height: %d", h)
		}
		if c := root.LeafCount(); c != 3 {
			t.Errorf("leaf count: %d", c)
		}
	})
}

func TestCombineErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	failing := func(x, y int) (int, error) {
		return 0, fmt.Errorf("combine: %w", boom)
	}

	_, err := Build([]int{1, 2, 3}, failing)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped combine error, got %v", err)
	}
}

func TestDegenerateInternal(t *testing.T) {
	n := Internal(Leaf(1), nil, 1)

	if n.IsLeaf() {
		t.Error("degenerate internal node is not a leaf")
	}
	if h := n.Height(); h != 2 {
		t.Errorf("height: %d", h)
	}
	if c := n.LeafCount(); c != 1 {
		t.Errorf("leaf count: %d", c)
	}
	if leaves := n.Leaves(); len(leaves) != 1 || leaves[0] != 1 {
		t.Errorf("leaves: %v", leaves)
	}
}
