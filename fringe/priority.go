package fringe

import "container/heap"

// NewPriority returns a min-heap fringe ordered by Node.Priority. Equal
// priorities break ties by insertion sequence, so expansion order is
// deterministic for a fixed input - required for reproducible statistics.
//
// The heap follows the lazy-decrease-key pattern: a cheaper rediscovery of
// a state is pushed as a fresh entry and the stale one is discarded by the
// engine's visited check when popped.
func NewPriority(bound *Bound) Fringe {
	p := &priority{bound: bound}
	heap.Init(&p.items)
	return p
}

type priority struct {
	items nodeHeap
	bound *Bound
	seq   uint64
}

func (p *priority) Push(n *Node) error {
	if err := p.bound.acquire(); err != nil {
		return err
	}
	p.seq++
	n.seq = p.seq
	heap.Push(&p.items, n)
	return nil
}

func (p *priority) Pop() (*Node, bool) {
	if p.items.Len() == 0 {
		return nil, false
	}
	n := heap.Pop(&p.items).(*Node)
	p.bound.release()
	return n, true
}

func (p *priority) Len() int { return p.items.Len() }

// nodeHeap implements heap.Interface over *Node, smallest Priority first.
type nodeHeap []*Node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(*Node)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
