package stack

import (
	"testing"

	"github.com/chewxy/math32"
)

const epsilon = 1e-4

func almost(a, b float32) bool {
	if math32.IsNaN(a) || math32.IsNaN(b) {
		return math32.IsNaN(a) && math32.IsNaN(b)
	}
	return math32.Abs(a-b) <= epsilon
}

// countingSeries counts Value accesses, for cache behavior tests.
type countingSeries struct {
	values []float32
	reads  *int
}

func (s countingSeries) Len() int { return len(s.values) }
func (s countingSeries) Value(i int) float32 {
	*s.reads++
	return s.values[i]
}

func TestCumulativeStacking(t *testing.T) {
	series := []Series{
		Values{1, 2},
		Values{3, 4},
	}
	c := NewCalculator()
	c.Compute(series, 0, 1, ModeCumulative)

	tests := []struct {
		name               string
		s, d               int
		baseline, top      float32
	}{
		{name: "bottom series point 0", s: 0, d: 0, baseline: 0, top: 1},
		{name: "bottom series point 1", s: 0, d: 1, baseline: 0, top: 2},
		{name: "top series point 0", s: 1, d: 0, baseline: 1, top: 4},
		{name: "top series point 1", s: 1, d: 1, baseline: 2, top: 6},
	}
	for _, tt := range tests {
		if got := c.Baseline(tt.s, tt.d); !almost(got, tt.baseline) {
			t.Errorf("%s: Baseline = %v, want %v", tt.name, got, tt.baseline)
		}
		if got := c.Top(tt.s, tt.d); !almost(got, tt.top) {
			t.Errorf("%s: Top = %v, want %v", tt.name, got, tt.top)
		}
	}

	if got := c.MinStacked(); got != 0 {
		t.Errorf("MinStacked = %v, want 0", got)
	}
	if got := c.MaxStacked(); got != 6 {
		t.Errorf("MaxStacked = %v, want 6", got)
	}
}

func TestMixedSignStacking(t *testing.T) {
	series := []Series{
		Values{2},
		Values{-3},
		Values{1},
		Values{-1},
	}
	c := NewCalculator()
	c.Compute(series, 0, 0, ModeCumulative)

	// Positives and negatives grow in separate stacks from zero.
	if b, top := c.Baseline(0, 0), c.Top(0, 0); b != 0 || top != 2 {
		t.Errorf("series 0 band [%v, %v], want [0, 2]", b, top)
	}
	if b, top := c.Baseline(1, 0), c.Top(1, 0); b != 0 || top != -3 {
		t.Errorf("series 1 band [%v, %v], want [0, -3]", b, top)
	}
	if b, top := c.Baseline(2, 0), c.Top(2, 0); b != 2 || top != 3 {
		t.Errorf("series 2 band [%v, %v], want [2, 3]", b, top)
	}
	if b, top := c.Baseline(3, 0), c.Top(3, 0); b != -3 || top != -4 {
		t.Errorf("series 3 band [%v, %v], want [-3, -4]", b, top)
	}

	if got := c.MinStacked(); got != -3 {
		t.Errorf("MinStacked = %v, want -3", got)
	}
	if got := c.MaxStacked(); got != 3 {
		t.Errorf("MaxStacked = %v, want 3", got)
	}
}

func TestNaNGapPassesThrough(t *testing.T) {
	series := []Series{
		Values{1, math32.NaN(), 3},
		Values{2, 2, 2},
	}
	c := NewCalculator()
	c.Compute(series, 0, 2, ModeCumulative)

	// The gap series reports NaN at the hole.
	if got := c.Baseline(0, 1); !math32.IsNaN(got) {
		t.Errorf("gap baseline = %v, want NaN", got)
	}
	if got := c.Top(0, 1); !math32.IsNaN(got) {
		t.Errorf("gap top = %v, want NaN", got)
	}

	// The series above the gap stacks from zero at that point.
	if b, top := c.Baseline(1, 1), c.Top(1, 1); b != 0 || top != 2 {
		t.Errorf("series above gap band [%v, %v], want [0, 2]", b, top)
	}
	// Neighboring points are unaffected.
	if b, top := c.Baseline(1, 0), c.Top(1, 0); b != 1 || top != 3 {
		t.Errorf("band at point 0 [%v, %v], want [1, 3]", b, top)
	}
	if b, top := c.Baseline(1, 2), c.Top(1, 2); b != 3 || top != 5 {
		t.Errorf("band at point 2 [%v, %v], want [3, 5]", b, top)
	}
}

func TestShortSeriesPadsWithNaN(t *testing.T) {
	series := []Series{
		Values{1},
		Values{2, 2},
	}
	c := NewCalculator()
	c.Compute(series, 0, 1, ModeCumulative)

	if got := c.Top(0, 1); !math32.IsNaN(got) {
		t.Errorf("past-end top = %v, want NaN", got)
	}
	if b, top := c.Baseline(1, 1), c.Top(1, 1); b != 0 || top != 2 {
		t.Errorf("band above short series [%v, %v], want [0, 2]", b, top)
	}
}

func TestPercentStacking(t *testing.T) {
	series := []Series{
		Values{1, 3},
		Values{3, 1},
	}
	c := NewCalculator()
	c.Compute(series, 0, 1, ModePercent)

	if got := c.Percent(0, 0); !almost(got, 25) {
		t.Errorf("Percent(0,0) = %v, want 25", got)
	}
	if got := c.Percent(1, 0); !almost(got, 75) {
		t.Errorf("Percent(1,0) = %v, want 75", got)
	}
	// The topmost band always reaches 100.
	for d := 0; d < 2; d++ {
		if got := c.Top(1, d); !almost(got, 100) {
			t.Errorf("Top(1,%d) = %v, want 100", d, got)
		}
	}
	if got := c.Baseline(1, 1); !almost(got, 75) {
		t.Errorf("Baseline(1,1) = %v, want 75", got)
	}
}

func TestPercentNegativesMirror(t *testing.T) {
	series := []Series{
		Values{-1},
		Values{-3},
	}
	c := NewCalculator()
	c.Compute(series, 0, 0, ModePercent)

	if got := c.Percent(0, 0); !almost(got, 25) {
		t.Errorf("Percent(0,0) = %v, want 25", got)
	}
	if b, top := c.Baseline(0, 0), c.Top(0, 0); !almost(b, 0) || !almost(top, -25) {
		t.Errorf("band 0 [%v, %v], want [0, -25]", b, top)
	}
	if b, top := c.Baseline(1, 0), c.Top(1, 0); !almost(b, -25) || !almost(top, -100) {
		t.Errorf("band 1 [%v, %v], want [-25, -100]", b, top)
	}
}

func TestPercentZeroTotal(t *testing.T) {
	series := []Series{
		Values{0},
		Values{0},
	}
	c := NewCalculator()
	c.Compute(series, 0, 0, ModePercent)

	if got := c.Percent(0, 0); got != 0 {
		t.Errorf("Percent over zero total = %v, want 0", got)
	}
	if got := c.Top(1, 0); got != 0 {
		t.Errorf("Top over zero total = %v, want 0", got)
	}
}

func TestRangeWindow(t *testing.T) {
	series := []Series{
		Values{10, 20, 1, 2, 30},
	}
	c := NewCalculator()
	c.Compute(series, 2, 3, ModeCumulative)

	// Getters address absolute data indices within the computed window.
	if got := c.Top(0, 2); got != 1 {
		t.Errorf("Top(0,2) = %v, want 1", got)
	}
	if got := c.Top(0, 3); got != 2 {
		t.Errorf("Top(0,3) = %v, want 2", got)
	}
	// Indices outside the window fall back to zero.
	if got := c.Top(0, 0); got != 0 {
		t.Errorf("Top outside window = %v, want 0", got)
	}
	if got := c.Top(0, 4); got != 0 {
		t.Errorf("Top outside window = %v, want 0", got)
	}
}

func TestGetterBounds(t *testing.T) {
	c := NewCalculator()

	// Before any computation everything is empty.
	if got := c.Baseline(0, 0); got != 0 {
		t.Errorf("Baseline on empty calculator = %v, want 0", got)
	}
	if got := c.Percent(0, 0); !math32.IsNaN(got) {
		t.Errorf("Percent on empty calculator = %v, want NaN", got)
	}

	c.Compute([]Series{Values{1}}, 0, 0, ModeCumulative)
	if got := c.Baseline(-1, 0); got != 0 {
		t.Errorf("negative series index = %v, want 0", got)
	}
	if got := c.Top(5, 0); got != 0 {
		t.Errorf("out-of-range series index = %v, want 0", got)
	}
	if got := c.MinStacked(); got != 0 {
		t.Errorf("MinStacked = %v, want 0", got)
	}
}

func TestComputeCachesResults(t *testing.T) {
	reads := 0
	series := []Series{
		countingSeries{values: []float32{1, 2, 3}, reads: &reads},
	}
	c := NewCalculator()

	c.Compute(series, 0, 2, ModeCumulative)
	afterFirst := reads
	if afterFirst == 0 {
		t.Fatal("first Compute read no values")
	}

	// Identical inputs: the cache answers, no data access.
	c.Compute(series, 0, 2, ModeCumulative)
	if reads != afterFirst {
		t.Errorf("cached Compute read %d extra values", reads-afterFirst)
	}

	// A different mode recomputes.
	c.Compute(series, 0, 2, ModePercent)
	if reads == afterFirst {
		t.Error("mode change did not recompute")
	}

	// Invalidate forces recomputation with unchanged inputs.
	beforeInvalidate := reads
	c.Invalidate()
	c.Compute(series, 0, 2, ModePercent)
	if reads == beforeInvalidate {
		t.Error("Invalidate did not force recomputation")
	}
}

func TestShapeChangeRecomputes(t *testing.T) {
	reads := 0
	series := []Series{
		countingSeries{values: []float32{1, 2}, reads: &reads},
	}
	c := NewCalculator()
	c.Compute(series, 0, 1, ModeCumulative)
	before := reads

	// Swapping in a longer series under the same list identity is
	// caught by the shape check.
	series[0] = countingSeries{values: []float32{1, 2, 9}, reads: &reads}
	c.Compute(series, 0, 1, ModeCumulative)
	if reads == before {
		t.Error("length change did not recompute")
	}
}
