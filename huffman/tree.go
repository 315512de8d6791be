// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"container/heap"
)

// Node is a Huffman tree node.  Left and Right are either both nil, in which case the node is a leaf for
// Symbol, or both non-nil, in which case Symbol is meaningless.  Weight is the symbol count for a leaf and
// the sum of the children's weights otherwise.
type Node struct {
	Symbol      byte
	Weight      uint64
	Left, Right *Node
}

// IsLeaf reports whether node holds a symbol.
func (node *Node) IsLeaf() bool {
	return node.Left == nil
}

// BuildTree builds the Huffman tree for h and returns its root.  A histogram with one symbol yields a lone
// leaf, and an empty histogram yields nil.
//
// Nodes of equal weight are merged in order of creation: leaves first, in ascending byte order, then
// internal nodes as they are made.  The same histogram therefore always yields the same tree.
func BuildTree(h Histogram) *Node {
	pq := make(nodeQueue, 0, totalSymbols)
	for i, count := range h {
		if count > 0 {
			pq = append(pq, queuedNode{
				node: &Node{Symbol: byte(i), Weight: uint64(count)},
				seq:  len(pq),
			})
		}
	}
	if len(pq) == 0 {
		return nil
	}

	seq := len(pq)
	heap.Init(&pq)
	for pq.Len() > 1 {
		a := heap.Pop(&pq).(queuedNode)
		b := heap.Pop(&pq).(queuedNode)
		heap.Push(&pq, queuedNode{
			node: &Node{Weight: a.node.Weight + b.node.Weight, Left: a.node, Right: b.node},
			seq:  seq,
		})
		seq++
	}
	return heap.Pop(&pq).(queuedNode).node
}

// Priority queue of tree nodes, used during tree building.

type queuedNode struct {
	node *Node
	seq  int
}

type nodeQueue []queuedNode

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].node.Weight != q[j].node.Weight {
		return q[i].node.Weight < q[j].node.Weight
	}
	return q[i].seq < q[j].seq
}

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x any) {
	*q = append(*q, x.(queuedNode))
}

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[0 : n-1]
	return x
}
