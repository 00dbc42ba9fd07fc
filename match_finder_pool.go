package lzokay

import "sync"

const (
	// maxPooledSpan is the largest prev arena kept in the pool.
	maxPooledSpan = 1 << 22

	// maxPooledBuffer is the largest compression scratch buffer kept in the pool.
	maxPooledBuffer = 1 << 24
)

// matchFinderPool is a pool of match finders.
var matchFinderPool = sync.Pool{
	New: func() any {
		return &matchFinder{}
	},
}

// acquireMatchFinder acquires a match finder from the pool, reset for src.
func acquireMatchFinder(src []byte, p compressLevelParams) *matchFinder {
	m := matchFinderPool.Get().(*matchFinder)
	m.reset(src, p)
	return m
}

// releaseMatchFinder releases a match finder to the pool.
func releaseMatchFinder(m *matchFinder) {
	if m == nil {
		return
	}

	m.src = nil
	if cap(m.prev) > maxPooledSpan {
		return
	}

	matchFinderPool.Put(m)
}

// compressBuffer is a reusable encoder output buffer.
type compressBuffer struct {
	data []byte
}

// compressBufferPool is a pool of encoder output buffers.
var compressBufferPool = sync.Pool{
	New: func() any {
		return &compressBuffer{}
	},
}

// acquireCompressBuffer acquires an empty buffer with at least size bytes of capacity.
func acquireCompressBuffer(size int) *compressBuffer {
	b := compressBufferPool.Get().(*compressBuffer)
	if cap(b.data) < size {
		b.data = make([]byte, 0, size)
	}

	b.data = b.data[:0]
	return b
}

// releaseCompressBuffer releases a buffer to the pool.
func releaseCompressBuffer(b *compressBuffer) {
	if b == nil || cap(b.data) > maxPooledBuffer {
		return
	}

	compressBufferPool.Put(b)
}
