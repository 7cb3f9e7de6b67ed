package store

import (
	"iter"
	"slices"
)

// sparseTable is backed by a map and suits any width up to 16.
type sparseTable struct {
	width  int
	counts map[uint64]uint64
}

func newSparse(width int) *sparseTable {
	return &sparseTable{width: width, counts: make(map[uint64]uint64)}
}

func (t *sparseTable) Width() int { return t.width }

func (t *sparseTable) Add(value, delta uint64) {
	t.counts[value] += delta
}

func (t *sparseTable) Get(value uint64) uint64 {
	return t.counts[value]
}

func (t *sparseTable) Len() int { return len(t.counts) }

func (t *sparseTable) Total() uint64 {
	var n uint64
	for _, c := range t.counts {
		n += c
	}
	return n
}

func (t *sparseTable) All() iter.Seq2[uint64, uint64] {
	return func(yield func(uint64, uint64) bool) {
		for v, c := range t.counts {
			if !yield(v, c) {
				return
			}
		}
	}
}

func (t *sparseTable) Ascending() iter.Seq2[uint64, uint64] {
	return func(yield func(uint64, uint64) bool) {
		keys := getKeySlice()
		defer func() { putKeySlice(keys) }()

		for v := range t.counts {
			keys = append(keys, v)
		}
		slices.Sort(keys)

		for _, v := range keys {
			if !yield(v, t.counts[v]) {
				return
			}
		}
	}
}
