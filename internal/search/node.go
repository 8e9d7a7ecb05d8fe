package search

import (
	"container/heap"

	"github.com/pipeline-route-engine/internal/domain"
)

// node is a single interned position within one search. g carries the
// per-criterion accumulated cost; f is the scalar priority used to
// order the open queue.
type node struct {
	pos    domain.Point
	g      domain.GScore
	f      float64
	parent *node
}

// queueItem is an open-queue entry. seq breaks ties among equal f by
// insertion order, per the ordering guarantee the search must
// preserve for reproducible output.
type queueItem struct {
	pos domain.Point
	f   float64
	seq int
}

// openQueue is a container/heap priority queue ordered by (f, seq).
// Stale entries (superseded by a later, strictly better insertion for
// the same position) are discarded lazily when popped, by comparing
// against the authoritative f held in the position->node table.
type openQueue []queueItem

func (q openQueue) Len() int { return len(q) }
func (q openQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}
func (q openQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *openQueue) Push(x any) {
	*q = append(*q, x.(queueItem))
}

func (q *openQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

var _ heap.Interface = (*openQueue)(nil)
