package hexcodec

import "sync"

// scratchSize covers the common fixed-size buffers (hashes, keys, signatures) and their
// hex forms without growing.
const scratchSize = 256

// scratchPool holds buffers for the fixed-size decode and encode paths, so those paths do
// not allocate per call.
var scratchPool = sync.Pool{
	New: func() any {
		b := make([]byte, scratchSize)
		return &b
	},
}

// getScratch returns a pooled buffer of length n. Callers must hand the returned pointer
// back to putScratch.
func getScratch(n int) *[]byte {
	p := scratchPool.Get().(*[]byte)
	if cap(*p) < n {
		*p = make([]byte, n)
	}
	*p = (*p)[:n]
	return p
}

func putScratch(p *[]byte) {
	// Oversized buffers are dropped so one large value does not pin memory in the pool.
	if cap(*p) > 64*1024 {
		return
	}
	scratchPool.Put(p)
}
