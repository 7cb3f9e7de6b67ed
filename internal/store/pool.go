package store

import "sync"

var keyPool = sync.Pool{
	New: func() interface{} {
		return make([]uint64, 0, 256)
	},
}

func getKeySlice() []uint64 {
	return keyPool.Get().([]uint64)[:0]
}

func putKeySlice(keys []uint64) {
	if cap(keys) > 1<<20 { // Don't pool very large slices
		return
	}
	keyPool.Put(keys[:0])
}
