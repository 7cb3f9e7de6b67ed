package source

import "sync"

var bufferPool = sync.Pool{
	New: func() interface{} {
		return make([]byte, DefaultBufferSize)
	},
}

func getBuffer(size int) []byte {
	if size != DefaultBufferSize {
		return make([]byte, size)
	}
	return bufferPool.Get().([]byte)
}

func putBuffer(buf []byte) {
	if len(buf) != DefaultBufferSize { // Only the default size is pooled
		return
	}
	bufferPool.Put(buf)
}
