package search

// entry is a frontier item: a state with the tentative cost it was pushed at.
// seq breaks cost ties in insertion order.
type entry[S comparable] struct {
	state S
	cost  int64
	seq   uint64
}

// frontier is a min-heap of entries ordered by (cost, seq).
// It may hold stale entries; the runner discards them on pop.
type frontier[S comparable] []entry[S]

// Len returns the number of entries in the heap.
func (pq frontier[S]) Len() int { return len(pq) }

// Less orders by cost, then by insertion order.
func (pq frontier[S]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two entries.
func (pq frontier[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push with an entry[S].
func (pq *frontier[S]) Push(x any) { *pq = append(*pq, x.(entry[S])) }

// Pop removes the last element; called by heap.Pop.
func (pq *frontier[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
