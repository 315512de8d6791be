// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"math/rand"
	"sort"
	"testing"
)

func weightedPathLength(node *Node, depth uint64) uint64 {
	if node.IsLeaf() {
		return node.Weight * depth
	}
	return weightedPathLength(node.Left, depth+1) + weightedPathLength(node.Right, depth+1)
}

// The optimal cost is the sum of the weights of all merged nodes, whatever the tie-breaking.
func referenceCost(h Histogram) uint64 {
	var weights []uint64
	for _, count := range h {
		if count > 0 {
			weights = append(weights, uint64(count))
		}
	}

	var cost uint64
	for len(weights) > 1 {
		sort.Slice(weights, func(i, j int) bool { return weights[i] < weights[j] })
		merged := weights[0] + weights[1]
		cost += merged
		weights = append(weights[2:], merged)
	}
	return cost
}

func checkTreeShape(t *testing.T, node *Node) {
	t.Helper()
	if (node.Left == nil) != (node.Right == nil) {
		t.Fatalf("node with weight %d has exactly one child", node.Weight)
	}
	if node.IsLeaf() {
		return
	}
	if node.Weight != node.Left.Weight+node.Right.Weight {
		t.Fatalf("internal weight %d != %d + %d", node.Weight, node.Left.Weight, node.Right.Weight)
	}
	checkTreeShape(t, node.Left)
	checkTreeShape(t, node.Right)
}

func TestBuildTreeOptimal(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5a025ca11825a5e7))

	for iteration := 0; iteration < 200; iteration++ {
		var h Histogram
		for n := 2 + rng.Intn(30); n > 0; n-- {
			h[rng.Intn(totalSymbols)] = uint32(1 + rng.Intn(1000))
		}
		if h.Distinct() < 2 {
			continue
		}

		root := BuildTree(h)
		checkTreeShape(t, root)
		if root.Weight != h.Total() {
			t.Fatalf("iteration #%d: root weight %d != total %d", iteration, root.Weight, h.Total())
		}
		if got, want := weightedPathLength(root, 0), referenceCost(h); got != want {
			t.Fatalf("iteration #%d: weighted path length %d, optimum %d", iteration, got, want)
		}
	}
}

func TestBuildTreeDegenerate(t *testing.T) {
	if root := BuildTree(Histogram{}); root != nil {
		t.Fatalf("empty histogram built %+v", root)
	}

	table, err := NewTable(nil)
	if err != nil || table.Len() != 0 || table.MaxLen() != 0 {
		t.Fatalf("empty table: len=%d maxLen=%d err=%v", table.Len(), table.MaxLen(), err)
	}

	var h Histogram
	h[7] = 3
	root := BuildTree(h)
	if !root.IsLeaf() || root.Symbol != 7 || root.Weight != 3 {
		t.Fatalf("single symbol built %+v", root)
	}
}

func TestBuildTreeTieBreak(t *testing.T) {
	// Four equal weights: leaves merge pairwise in byte order, then the two pairs merge.
	var h Histogram
	for _, b := range []byte{'d', 'c', 'b', 'a'} {
		h[b] = 5
	}

	table, err := NewTable(BuildTree(h))
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	want := map[byte]string{'a': "00", 'b': "01", 'c': "10", 'd': "11"}
	for symbol, code := range want {
		cw, ok := table.Code(symbol)
		if !ok || cw.String() != code {
			t.Errorf("code for %q = %v (ok=%v), want %s", symbol, cw, ok, code)
		}
	}
}

func TestQueueOrder(t *testing.T) {
	q := nodeQueue{
		{&Node{Weight: 3}, 0},
		{&Node{Weight: 1}, 2},
		{&Node{Weight: 1}, 1},
	}
	if !q.Less(2, 1) || q.Less(1, 2) {
		t.Fatalf("equal weights must order by sequence")
	}
	if !q.Less(1, 0) {
		t.Fatalf("lighter node must order first")
	}
}
