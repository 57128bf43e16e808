// Package render defines the boundary between the geometry engine and a
// GPU backend.
//
// The tessellation packages emit flat float32 vertex buffers; a
// BufferStore owns their lifetime on the device side. The engine never
// creates a GPU device: the host application hands one in through
// DeviceHandle, and a Target describes where the output lands.
//
// MemoryStore is the CPU-backed implementation, used by tests and by the
// benchmark binary; GPU implementations live with the host.
package render
