package treemap

import "testing"

func TestSunburstFullCircle(t *testing.T) {
	tree := NewTree("rings")
	a := tree.AddNode("a", "", 3)
	b := tree.AddNode("b", "", 1)

	cache := NewLayoutCache()
	sb := &SunburstLayout{}
	sb.Layout(tree, cache)

	if got := cache.StartAngle(tree.Root()); got != 0 {
		t.Errorf("root start = %v, want 0", got)
	}
	if got := cache.EndAngle(tree.Root()); got != 360 {
		t.Errorf("root end = %v, want 360", got)
	}

	spanA := cache.EndAngle(a) - cache.StartAngle(a)
	spanB := cache.EndAngle(b) - cache.StartAngle(b)
	if spanA < 270-epsilon || spanA > 270+epsilon {
		t.Errorf("span(a) = %v, want 270", spanA)
	}
	if spanB < 90-epsilon || spanB > 90+epsilon {
		t.Errorf("span(b) = %v, want 90", spanB)
	}
	// Siblings pack edge to edge without a gap.
	if cache.StartAngle(b) != cache.EndAngle(a) {
		t.Errorf("b starts at %v, a ends at %v", cache.StartAngle(b), cache.EndAngle(a))
	}
}

func TestSunburstSegmentGap(t *testing.T) {
	tree := NewTree("gapped")
	a := tree.AddNode("a", "", 1)
	b := tree.AddNode("b", "", 1)

	cache := NewLayoutCache()
	sb := &SunburstLayout{SegmentGap: 10}
	sb.Layout(tree, cache)

	// Two equal children: usable = 360 - 2*10, split evenly.
	spanA := cache.EndAngle(a) - cache.StartAngle(a)
	spanB := cache.EndAngle(b) - cache.StartAngle(b)
	if spanA < 170-epsilon || spanA > 170+epsilon {
		t.Errorf("span(a) = %v, want 170", spanA)
	}
	if spanB < 170-epsilon || spanB > 170+epsilon {
		t.Errorf("span(b) = %v, want 170", spanB)
	}
	gap := cache.StartAngle(b) - cache.EndAngle(a)
	if gap < 10-epsilon || gap > 10+epsilon {
		t.Errorf("gap = %v, want 10", gap)
	}
}

func TestSunburstNestedProportions(t *testing.T) {
	tree := NewTree("nested")
	a := tree.AddNode("a", "", 0)
	a1 := a.NewChild("a1", "", 2)
	a2 := a.NewChild("a2", "", 2)
	tree.AddNode("b", "", 4)

	cache := NewLayoutCache()
	sb := &SunburstLayout{}
	sb.LayoutSpan(tree, 90, 270, cache)

	// a aggregates to 4, matching b: each takes half of the 180 span.
	spanA := cache.EndAngle(a) - cache.StartAngle(a)
	if spanA < 90-epsilon || spanA > 90+epsilon {
		t.Errorf("span(a) = %v, want 90", spanA)
	}
	// a's children split a's span evenly and stay inside it.
	for _, child := range []*Node{a1, a2} {
		span := cache.EndAngle(child) - cache.StartAngle(child)
		if span < 45-epsilon || span > 45+epsilon {
			t.Errorf("span(%s) = %v, want 45", child.ID, span)
		}
		if cache.StartAngle(child) < cache.StartAngle(a)-epsilon ||
			cache.EndAngle(child) > cache.EndAngle(a)+epsilon {
			t.Errorf("child %s escapes parent span", child.ID)
		}
	}
}

func TestSunburstZeroValueChildSkipped(t *testing.T) {
	tree := NewTree("skip")
	tree.AddNode("a", "", 5)
	z := tree.AddNode("z", "", 0)

	cache := NewLayoutCache()
	sb := &SunburstLayout{}
	sb.Layout(tree, cache)

	if cache.Has(z) {
		t.Error("zero-value child received an angular span")
	}
}
