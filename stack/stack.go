package stack

import (
	"github.com/apokalypsix/chartx"
	"github.com/chewxy/math32"
)

// Series is a read-only view of one series' values. Indices outside
// [0, Len()) are never requested.
type Series interface {
	Len() int
	Value(i int) float32
}

// Values adapts a plain float32 slice to the Series interface.
type Values []float32

func (v Values) Len() int            { return len(v) }
func (v Values) Value(i int) float32 { return v[i] }

// Mode selects how series are combined.
type Mode int

const (
	// ModeCumulative stacks raw values: each series' baseline is the
	// running sum of the series below it.
	ModeCumulative Mode = iota

	// ModePercent normalizes each point to its share of the point's
	// same-sign total, stacking percentages instead of raw values.
	ModePercent
)

// String returns the mode name for logs.
func (m Mode) String() string {
	switch m {
	case ModeCumulative:
		return "cumulative"
	case ModePercent:
		return "percent"
	}
	return "unknown"
}

// Calculator computes and caches stacked values for a series list.
//
// Compute fills the cache; Baseline, Top, and Percent then answer in
// constant time using absolute data indices. A Calculator is not safe
// for concurrent use.
type Calculator struct {
	baselines [][]float32
	tops      [][]float32
	percents  [][]float32

	// Cache identity. from = -1 means no valid computation.
	lastSeries []Series
	lastFrom   int
	lastTo     int
	lastMode   Mode
	lastShape  uint64

	// Reusable per-point accumulators.
	posStack []float32
	negStack []float32
	posSum   []float32
	negSum   []float32
}

// NewCalculator creates an empty calculator.
func NewCalculator() *Calculator {
	return &Calculator{lastFrom: -1, lastTo: -1}
}

// Compute stacks the series over the inclusive index range [from, to].
// series is ordered bottom to top. A nil or empty list, or an inverted
// range, leaves the previous results in place. Repeated calls with
// unchanged inputs reuse the cached results.
//
// A point where a series has no value (NaN, or the index is past the
// series' end) contributes zero height: the running stacks pass through
// unchanged and that series' baseline and top are NaN at the point.
func (c *Calculator) Compute(series []Series, from, to int, mode Mode) {
	if len(series) == 0 || from > to {
		return
	}
	if c.cacheValid(series, from, to, mode) {
		return
	}

	dataCount := to - from + 1
	c.ensureCapacity(len(series), dataCount)

	if mode == ModePercent {
		c.computePercent(series, from, dataCount)
	} else {
		c.computeCumulative(series, from, dataCount)
	}

	c.lastSeries = series
	c.lastFrom = from
	c.lastTo = to
	c.lastMode = mode
	c.lastShape = shapeVersion(series)

	chartx.Logger().Debug("stacking recomputed",
		"series", len(series),
		"points", dataCount,
		"mode", mode.String())
}

// Baseline returns the bottom of the given series' band at an absolute
// data index, or 0 when the index or series is outside the computed
// range.
func (c *Calculator) Baseline(seriesIndex, dataIndex int) float32 {
	if seriesIndex < 0 || seriesIndex >= len(c.baselines) {
		return 0
	}
	d := dataIndex - c.lastFrom
	if d < 0 || d >= len(c.baselines[seriesIndex]) {
		return 0
	}
	return c.baselines[seriesIndex][d]
}

// Top returns the top of the given series' band at an absolute data
// index, or 0 when the index or series is outside the computed range.
func (c *Calculator) Top(seriesIndex, dataIndex int) float32 {
	if seriesIndex < 0 || seriesIndex >= len(c.tops) {
		return 0
	}
	d := dataIndex - c.lastFrom
	if d < 0 || d >= len(c.tops[seriesIndex]) {
		return 0
	}
	return c.tops[seriesIndex][d]
}

// Percent returns the point's share of its same-sign total in percent,
// filled only by ModePercent. Out-of-range queries return NaN.
func (c *Calculator) Percent(seriesIndex, dataIndex int) float32 {
	if seriesIndex < 0 || seriesIndex >= len(c.percents) {
		return math32.NaN()
	}
	d := dataIndex - c.lastFrom
	if d < 0 || d >= len(c.percents[seriesIndex]) {
		return math32.NaN()
	}
	return c.percents[seriesIndex][d]
}

// MinStacked returns the smallest baseline across all series in the
// computed range, ignoring NaN. Returns 0 if nothing valid was computed.
func (c *Calculator) MinStacked() float32 {
	min := math32.Inf(1)
	for _, row := range c.baselines {
		for _, v := range row {
			if !math32.IsNaN(v) && v < min {
				min = v
			}
		}
	}
	if math32.IsInf(min, 1) {
		return 0
	}
	return min
}

// MaxStacked returns the largest top across all series in the computed
// range, ignoring NaN. Returns 0 if nothing valid was computed.
func (c *Calculator) MaxStacked() float32 {
	max := math32.Inf(-1)
	for _, row := range c.tops {
		for _, v := range row {
			if !math32.IsNaN(v) && v > max {
				max = v
			}
		}
	}
	if math32.IsInf(max, -1) {
		return 0
	}
	return max
}

// Invalidate forces the next Compute to run even with unchanged inputs.
// Call after mutating series values in place, which the shape check
// cannot see.
func (c *Calculator) Invalidate() {
	c.lastSeries = nil
	c.lastFrom = -1
	c.lastTo = -1
}

func (c *Calculator) computeCumulative(series []Series, from, dataCount int) {
	zero(c.posStack[:dataCount])
	zero(c.negStack[:dataCount])

	for s, sr := range series {
		n := sr.Len()
		for d := 0; d < dataCount; d++ {
			idx := from + d
			if idx >= n {
				c.baselines[s][d] = math32.NaN()
				c.tops[s][d] = math32.NaN()
				continue
			}

			v := sr.Value(idx)
			if math32.IsNaN(v) {
				c.baselines[s][d] = math32.NaN()
				c.tops[s][d] = math32.NaN()
				continue
			}

			if v >= 0 {
				c.baselines[s][d] = c.posStack[d]
				c.posStack[d] += v
				c.tops[s][d] = c.posStack[d]
			} else {
				c.baselines[s][d] = c.negStack[d]
				c.negStack[d] += v
				c.tops[s][d] = c.negStack[d]
			}
		}
	}
}

func (c *Calculator) computePercent(series []Series, from, dataCount int) {
	zero(c.posSum[:dataCount])
	zero(c.negSum[:dataCount])

	// First pass: per-point totals, split by sign.
	for _, sr := range series {
		n := sr.Len()
		for d := 0; d < dataCount; d++ {
			idx := from + d
			if idx >= n {
				continue
			}
			v := sr.Value(idx)
			if math32.IsNaN(v) {
				continue
			}
			if v >= 0 {
				c.posSum[d] += v
			} else {
				c.negSum[d] += math32.Abs(v)
			}
		}
	}

	// Second pass: stack the normalized shares. Negative shares mirror
	// below the zero line.
	zero(c.posStack[:dataCount])
	zero(c.negStack[:dataCount])

	for s, sr := range series {
		n := sr.Len()
		for d := 0; d < dataCount; d++ {
			idx := from + d
			if idx >= n {
				c.baselines[s][d] = math32.NaN()
				c.tops[s][d] = math32.NaN()
				c.percents[s][d] = math32.NaN()
				continue
			}

			v := sr.Value(idx)
			if math32.IsNaN(v) {
				c.baselines[s][d] = math32.NaN()
				c.tops[s][d] = math32.NaN()
				c.percents[s][d] = math32.NaN()
				continue
			}

			total := c.posSum[d]
			if v < 0 {
				total = c.negSum[d]
			}
			var percent float32
			if total > 0 {
				percent = math32.Abs(v) / total * 100
			}
			c.percents[s][d] = percent

			if v >= 0 {
				c.baselines[s][d] = c.posStack[d]
				c.posStack[d] += percent
				c.tops[s][d] = c.posStack[d]
			} else {
				c.baselines[s][d] = -c.negStack[d]
				c.negStack[d] += percent
				c.tops[s][d] = -c.negStack[d]
			}
		}
	}
}

func (c *Calculator) ensureCapacity(seriesCount, dataCount int) {
	if len(c.baselines) < seriesCount {
		c.baselines = make([][]float32, seriesCount)
		c.tops = make([][]float32, seriesCount)
		c.percents = make([][]float32, seriesCount)
	}
	for s := 0; s < seriesCount; s++ {
		if len(c.baselines[s]) < dataCount {
			c.baselines[s] = make([]float32, dataCount)
			c.tops[s] = make([]float32, dataCount)
			c.percents[s] = make([]float32, dataCount)
		} else {
			c.baselines[s] = c.baselines[s][:dataCount]
			c.tops[s] = c.tops[s][:dataCount]
			c.percents[s] = c.percents[s][:dataCount]
		}
	}
	c.baselines = c.baselines[:seriesCount]
	c.tops = c.tops[:seriesCount]
	c.percents = c.percents[:seriesCount]

	if len(c.posStack) < dataCount {
		c.posStack = make([]float32, dataCount)
		c.negStack = make([]float32, dataCount)
		c.posSum = make([]float32, dataCount)
		c.negSum = make([]float32, dataCount)
	}
}

func (c *Calculator) cacheValid(series []Series, from, to int, mode Mode) bool {
	if from != c.lastFrom || to != c.lastTo || mode != c.lastMode {
		return false
	}
	// Identity of the list, not deep equality: a rebuilt slice means the
	// caller changed something. Series values may be slice-backed, so
	// interface comparison is off the table.
	if len(series) != len(c.lastSeries) || &series[0] != &c.lastSeries[0] {
		return false
	}
	return shapeVersion(series) == c.lastShape
}

// shapeVersion hashes the series lengths. It catches appends and
// truncations but not in-place edits; those need Invalidate.
func shapeVersion(series []Series) uint64 {
	var v uint64
	for _, s := range series {
		v = v*31 + uint64(s.Len())
	}
	return v
}

func zero(s []float32) {
	for i := range s {
		s[i] = 0
	}
}
