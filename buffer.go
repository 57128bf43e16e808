package chartx

// minBufferLen is the smallest buffer GrowFloats allocates. Small series
// would otherwise trigger several reallocations in the first frames.
const minBufferLen = 64

// GrowFloats returns a buffer with length at least need, reusing buf when
// it is already large enough. Growth is geometric (1.5x) so per-frame
// tessellation settles on a stable allocation after a few frames.
// Existing contents are preserved.
//
// Callers size need with the tessellators' companion sizing functions
// (curve.CatmullRomFloats, contour.EstimateFloats, arc.DonutSegmentFloats,
// and friends) before invoking the tessellator itself.
func GrowFloats(buf []float32, need int) []float32 {
	if need <= len(buf) {
		return buf
	}
	if need <= cap(buf) {
		return buf[:need]
	}
	n := len(buf)
	if n < minBufferLen {
		n = minBufferLen
	}
	for n < need {
		n += n / 2
	}
	next := make([]float32, n)
	copy(next, buf)
	return next
}
