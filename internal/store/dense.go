package store

import "iter"

// denseTable indexes a 16^width counter array directly by value.
type denseTable struct {
	width  int
	counts []uint64
}

func newDense(width int) *denseTable {
	return &denseTable{width: width, counts: make([]uint64, 1<<(4*uint(width)))}
}

func (t *denseTable) Width() int { return t.width }

func (t *denseTable) Add(value, delta uint64) {
	t.counts[value] += delta
}

func (t *denseTable) Get(value uint64) uint64 {
	if value >= uint64(len(t.counts)) {
		return 0
	}
	return t.counts[value]
}

func (t *denseTable) Len() int {
	n := 0
	for _, c := range t.counts {
		if c != 0 {
			n++
		}
	}
	return n
}

func (t *denseTable) Total() uint64 {
	var n uint64
	for _, c := range t.counts {
		n += c
	}
	return n
}

// All already yields in ascending order.
func (t *denseTable) All() iter.Seq2[uint64, uint64] {
	return func(yield func(uint64, uint64) bool) {
		for v, c := range t.counts {
			if c == 0 {
				continue
			}
			if !yield(uint64(v), c) {
				return
			}
		}
	}
}

func (t *denseTable) Ascending() iter.Seq2[uint64, uint64] {
	return t.All()
}
