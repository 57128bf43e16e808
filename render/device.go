package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// The engine never creates a device. The host implements DeviceHandle
// (or passes any gpucontext.DeviceProvider) and GPU-backed BufferStore
// implementations draw through it. DeviceHandle is an alias so chartx
// code can name the contract without importing gpucontext directly.
type DeviceHandle = gpucontext.DeviceProvider

// Target describes the surface a frame of chart geometry lands on.
// Hosts implement it over their swapchain or offscreen textures.
type Target interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the target's pixel format.
	Format() gputypes.TextureFormat
}

// FixedTarget is a Target with static dimensions, enough for layout
// sizing and for the CPU-backed store.
type FixedTarget struct {
	W, H   int
	Pixels gputypes.TextureFormat
}

// NewFixedTarget returns an RGBA8 target of the given size.
func NewFixedTarget(width, height int) FixedTarget {
	return FixedTarget{W: width, H: height, Pixels: gputypes.TextureFormatRGBA8Unorm}
}

func (t FixedTarget) Width() int                     { return t.W }
func (t FixedTarget) Height() int                    { return t.H }
func (t FixedTarget) Format() gputypes.TextureFormat { return t.Pixels }
