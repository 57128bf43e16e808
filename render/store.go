package render

import (
	"fmt"

	"github.com/apokalypsix/chartx"
)

// PrimitiveMode selects how a vertex buffer is assembled into primitives.
type PrimitiveMode int

const (
	// Triangles assembles every three vertices into one filled triangle.
	Triangles PrimitiveMode = iota

	// Lines assembles every two vertices into one line segment.
	Lines

	// LineStrip connects consecutive vertices into a polyline.
	LineStrip
)

// String returns the mode name for logs.
func (m PrimitiveMode) String() string {
	switch m {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	case LineStrip:
		return "line-strip"
	}
	return "unknown"
}

// Vertex strides in floats for the two layouts the engine emits.
const (
	// StridePosition is (x, y), used by curve and contour output.
	StridePosition = 2

	// StridePositionColor is (x, y, r, g, b, a), used by arc output.
	StridePositionColor = 6
)

// BufferStore owns vertex buffers keyed by name. The geometry engine
// uploads tessellated floats and issues draws; the store maps them onto
// whatever backend it fronts.
//
// Upload replaces any buffer previously stored under the key. data is
// valid only for the duration of the call; implementations copy what
// they keep.
type BufferStore interface {
	Upload(key string, data []float32, stride int, mode PrimitiveMode) error
	Draw(key string) error
	Release(key string)
}

// MemoryStore is a CPU-backed BufferStore. It retains uploaded buffers
// and counts draws, which makes it the reference backend for tests and
// benchmarks.
//
// A MemoryStore is not safe for concurrent use.
type MemoryStore struct {
	buffers map[string]memoryBuffer
}

type memoryBuffer struct {
	data   []float32
	stride int
	mode   PrimitiveMode
	draws  int
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{buffers: make(map[string]memoryBuffer)}
}

// Upload copies data into the store under key. The float count must be a
// whole number of vertices for the given stride.
func (s *MemoryStore) Upload(key string, data []float32, stride int, mode PrimitiveMode) error {
	if stride <= 0 {
		return fmt.Errorf("render: invalid stride %d for %q", stride, key)
	}
	if len(data)%stride != 0 {
		return fmt.Errorf("render: %q holds %d floats, not a multiple of stride %d",
			key, len(data), stride)
	}

	buf := s.buffers[key]
	buf.data = append(buf.data[:0], data...)
	buf.stride = stride
	buf.mode = mode
	s.buffers[key] = buf

	chartx.Logger().Debug("buffer uploaded",
		"key", key,
		"vertices", len(data)/stride,
		"mode", mode.String())
	return nil
}

// Draw records a draw of the named buffer.
func (s *MemoryStore) Draw(key string) error {
	buf, ok := s.buffers[key]
	if !ok {
		return fmt.Errorf("render: draw of unknown buffer %q", key)
	}
	buf.draws++
	s.buffers[key] = buf
	return nil
}

// Release drops the named buffer. Releasing an absent key is a no-op.
func (s *MemoryStore) Release(key string) {
	delete(s.buffers, key)
}

// Has reports whether a buffer exists under key.
func (s *MemoryStore) Has(key string) bool {
	_, ok := s.buffers[key]
	return ok
}

// VertexCount returns the number of vertices stored under key, or 0.
func (s *MemoryStore) VertexCount(key string) int {
	buf, ok := s.buffers[key]
	if !ok || buf.stride == 0 {
		return 0
	}
	return len(buf.data) / buf.stride
}

// Data returns the stored floats for key. The slice is the store's own;
// callers must not modify it.
func (s *MemoryStore) Data(key string) []float32 {
	return s.buffers[key].data
}

// Mode returns the primitive mode stored under key.
func (s *MemoryStore) Mode(key string) PrimitiveMode {
	return s.buffers[key].mode
}

// DrawCount returns how many times key has been drawn since upload.
func (s *MemoryStore) DrawCount(key string) int {
	return s.buffers[key].draws
}

// Len returns the number of stored buffers.
func (s *MemoryStore) Len() int { return len(s.buffers) }
