package datagen

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/apokalypsix/chartx/stack"
	"github.com/apokalypsix/chartx/treemap"
	"github.com/chewxy/math32"
)

// RandomWalk returns n values starting at start, stepping by draws from
// a zero-mean Gaussian with the given standard deviation.
func RandomWalk(n int, start, sigma float32, seed uint64) []float32 {
	step := distuv.Normal{Mu: 0, Sigma: float64(sigma), Src: rand.NewSource(seed)}

	out := make([]float32, n)
	v := float64(start)
	for i := range out {
		out[i] = float32(v)
		v += step.Rand()
	}
	return out
}

// RandomWalkWithGaps is RandomWalk with roughly gapFraction of the
// points replaced by NaN, in short runs, the way real feeds drop data.
func RandomWalkWithGaps(n int, start, sigma, gapFraction float32, seed uint64) []float32 {
	out := RandomWalk(n, start, sigma, seed)
	if gapFraction <= 0 {
		return out
	}

	rng := rand.New(rand.NewSource(seed + 1))
	remaining := int(float64(gapFraction) * float64(n))
	for remaining > 0 {
		runLen := 1 + rng.Intn(3)
		if runLen > remaining {
			runLen = remaining
		}
		at := rng.Intn(n)
		for i := 0; i < runLen && at+i < n; i++ {
			out[at+i] = math32.NaN()
		}
		remaining -= runLen
	}
	return out
}

// LinearAxis returns n evenly spaced coordinates from min to max
// inclusive, for use as contour grid axes.
func LinearAxis(n int, min, max float32) []float32 {
	out := make([]float32, n)
	if n == 1 {
		out[0] = (min + max) / 2
		return out
	}
	step := (max - min) / float32(n-1)
	for i := range out {
		out[i] = min + float32(i)*step
	}
	return out
}

// Grid returns a rows*cols scalar field in row-major order: a smooth
// surface built from a handful of randomly placed Gaussian bumps, the
// kind of field contour extraction is meant for.
func Grid(rows, cols int, seed uint64) []float32 {
	rng := rand.New(rand.NewSource(seed))

	type bump struct {
		row, col, amp, radius float64
	}
	bumps := make([]bump, 3+rng.Intn(3))
	for i := range bumps {
		bumps[i] = bump{
			row:    rng.Float64() * float64(rows-1),
			col:    rng.Float64() * float64(cols-1),
			amp:    2 + rng.Float64()*8,
			radius: 1 + rng.Float64()*float64(min(rows, cols))/3,
		}
	}

	out := make([]float32, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			var v float64
			for _, b := range bumps {
				dr := float64(r) - b.row
				dc := float64(c) - b.col
				v += b.amp * math.Exp(-(dr*dr+dc*dc)/(2*b.radius*b.radius))
			}
			out[r*cols+c] = float32(v)
		}
	}
	return out
}

// GridWithHoles is Grid with the given number of rectangular NaN patches
// punched out, to exercise gap handling in contour extraction.
func GridWithHoles(rows, cols, holes int, seed uint64) []float32 {
	out := Grid(rows, cols, seed)
	rng := rand.New(rand.NewSource(seed + 1))

	for h := 0; h < holes; h++ {
		hr := 1 + rng.Intn(max(rows/6, 1))
		hc := 1 + rng.Intn(max(cols/6, 1))
		r0 := rng.Intn(rows)
		c0 := rng.Intn(cols)
		for r := r0; r < r0+hr && r < rows; r++ {
			for c := c0; c < c0+hc && c < cols; c++ {
				out[r*cols+c] = math32.NaN()
			}
		}
	}
	return out
}

// Hierarchy returns a weighted tree with the given number of top-level
// nodes, random fan-out below them down to depth levels, and log-normal
// leaf weights. Heavy-tailed weights give layouts the uneven cell sizes
// real datasets produce.
func Hierarchy(topLevel, maxChildren, depth int, seed uint64) *treemap.Tree {
	rng := rand.New(rand.NewSource(seed))
	weight := distuv.LogNormal{Mu: 2, Sigma: 1, Src: rand.NewSource(seed + 1)}

	tree := treemap.NewTree("generated")
	id := 0
	for i := 0; i < topLevel; i++ {
		node := tree.AddNode(fmt.Sprintf("n%d", id), fmt.Sprintf("Group %d", i), 0)
		id++
		growHierarchy(node, maxChildren, depth-1, rng, &weight, &id)
		if node.IsLeaf() {
			node.Value = weight.Rand()
		}
	}
	return tree
}

func growHierarchy(parent *treemap.Node, maxChildren, depth int, rng *rand.Rand, weight *distuv.LogNormal, id *int) {
	if depth <= 0 {
		return
	}
	n := rng.Intn(maxChildren + 1)
	for i := 0; i < n; i++ {
		child := parent.NewChild(fmt.Sprintf("n%d", *id), fmt.Sprintf("Item %d", *id), 0)
		*id++
		growHierarchy(child, maxChildren, depth-1, rng, weight, id)
		if child.IsLeaf() {
			child.Value = weight.Rand()
		}
	}
}

// StackedGroup returns seriesCount non-negative series of length n,
// suitable for stacking demos. Each series is the absolute value of an
// independent random walk.
func StackedGroup(seriesCount, n int, sigma float32, seed uint64) []stack.Series {
	out := make([]stack.Series, seriesCount)
	for s := 0; s < seriesCount; s++ {
		values := RandomWalk(n, 10*sigma, sigma, seed+uint64(s))
		for i, v := range values {
			values[i] = math32.Abs(v)
		}
		out[s] = stack.Values(values)
	}
	return out
}
