// Package pool provides the pooled append buffers used when serializing record streams.
package pool

import "sync"

const (
	RecordBufferDefaultSize  = 1024 * 4         // 4KiB, enough for most single records
	RecordBufferMaxThreshold = 1024 * 64        // 64KiB
	StreamBufferDefaultSize  = 1024 * 64        // 64KiB
	StreamBufferMaxThreshold = 1024 * 1024 * 16 // 16MiB
)

// ByteBuffer is an append-only byte slice wrapper.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of buffered bytes.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// MustWrite appends data, growing the buffer if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// WriteByte appends a single byte. It never fails.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// Grow ensures the buffer can take n more bytes without reallocating.
//
// Small buffers grow by RecordBufferDefaultSize; buffers past four times that grow by a
// quarter of their capacity.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	growBy := RecordBufferDefaultSize
	if cap(bb.B) > 4*RecordBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends data. It always returns len(data), nil.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// Detach returns a copy of the buffered bytes that stays valid after the buffer is
// returned to its pool.
func (bb *ByteBuffer) Detach() []byte {
	out := make([]byte, len(bb.B))
	copy(out, bb.B)

	return out
}

// ByteBufferPool is a sync.Pool of ByteBuffers that drops buffers grown past a
// threshold, so one huge stream does not pin memory for the life of the process.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers of defaultSize capacity.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	recordPool = NewByteBufferPool(RecordBufferDefaultSize, RecordBufferMaxThreshold)
	streamPool = NewByteBufferPool(StreamBufferDefaultSize, StreamBufferMaxThreshold)
)

// GetRecordBuffer retrieves a buffer sized for one record body.
func GetRecordBuffer() *ByteBuffer {
	return recordPool.Get()
}

// PutRecordBuffer returns a record buffer to its pool.
func PutRecordBuffer(bb *ByteBuffer) {
	recordPool.Put(bb)
}

// GetStreamBuffer retrieves a buffer sized for a whole record stream.
func GetStreamBuffer() *ByteBuffer {
	return streamPool.Get()
}

// PutStreamBuffer returns a stream buffer to its pool.
func PutStreamBuffer(bb *ByteBuffer) {
	streamPool.Put(bb)
}
