// Command chartx-bench exercises the full geometry engine against the
// CPU-backed buffer store and reports tessellation throughput.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/chewxy/math32"

	"github.com/apokalypsix/chartx"
	"github.com/apokalypsix/chartx/arc"
	"github.com/apokalypsix/chartx/contour"
	"github.com/apokalypsix/chartx/curve"
	"github.com/apokalypsix/chartx/datagen"
	"github.com/apokalypsix/chartx/render"
	"github.com/apokalypsix/chartx/stack"
	"github.com/apokalypsix/chartx/treemap"
)

func main() {
	var (
		width    = flag.Int("width", 1920, "target width in pixels")
		height   = flag.Int("height", 1080, "target height in pixels")
		points   = flag.Int("points", 10000, "points per series")
		series   = flag.Int("series", 8, "stacked series count")
		gridSize = flag.Int("grid", 256, "contour grid rows and columns")
		levels   = flag.Int("levels", 12, "contour level count")
		slices   = flag.Int("slices", 48, "donut slices")
		nodes    = flag.Int("nodes", 5, "hierarchy top-level nodes")
		seed     = flag.Uint64("seed", 42, "generator seed")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		chartx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	store := render.NewMemoryStore()
	target := render.NewFixedTarget(*width, *height)
	log.Printf("target %dx%d (%v)", target.Width(), target.Height(), target.Format())

	benchCurves(store, *points, *seed)
	benchContours(store, *gridSize, *levels, *seed)
	benchArcs(store, *slices)
	benchTreemap(store, *nodes, *width, *height, *seed)
	benchStacking(*series, *points, *seed)
}

func benchCurves(store *render.MemoryStore, points int, seed uint64) {
	xs := datagen.LinearAxis(points, 0, float32(points))
	ys := datagen.RandomWalk(points, 100, 2, seed)

	const segments = 8
	buf := chartx.GrowFloats(nil, curve.CatmullRomFloats(points, segments))

	start := time.Now()
	n := curve.CatmullRom(xs, ys, 0, points, segments, curve.DefaultTension, buf, 0)
	elapsed := time.Since(start)

	if err := store.Upload("curve", buf[:n], render.StridePosition, render.LineStrip); err != nil {
		log.Fatalf("curve upload: %v", err)
	}
	store.Draw("curve")
	report("catmull-rom", n/render.StridePosition, elapsed)
}

func benchContours(store *render.MemoryStore, size, levelCount int, seed uint64) {
	values := datagen.GridWithHoles(size, size, 2, seed)
	xs := datagen.LinearAxis(size, 0, 100)
	ys := datagen.LinearAxis(size, 0, 100)

	min, max := gridRange(values)
	levels := contour.Levels(min, max, levelCount)
	buf := make([]float32, contour.EstimateFloats(size, size, levelCount))
	counts := make([]int, levelCount)

	start := time.Now()
	n := contour.Extract(values, size, size, xs, ys, levels, buf, 0, counts)
	elapsed := time.Since(start)

	if err := store.Upload("contours", buf[:n], render.StridePosition, render.Lines); err != nil {
		log.Fatalf("contour upload: %v", err)
	}
	store.Draw("contours")
	report("marching-squares", n/render.StridePosition, elapsed)
}

func benchArcs(store *render.MemoryStore, slices int) {
	center := chartx.Pt(0, 0)
	sweep := 2 * math.Pi / float64(slices)
	segments := arc.SegmentsForSpan(sweep)

	total := slices * arc.DonutSegmentFloats(segments)
	buf := make([]float32, total)

	start := time.Now()
	off := 0
	for i := 0; i < slices; i++ {
		col := chartx.RGB(float32(i)/float32(slices), 0.5, 0.8)
		a0 := float64(i) * sweep
		off = arc.DonutSegment(buf, off, center, 80, 140, a0, a0+sweep, segments, col)
	}
	elapsed := time.Since(start)

	if err := store.Upload("donut", buf[:off], render.StridePositionColor, render.Triangles); err != nil {
		log.Fatalf("arc upload: %v", err)
	}
	store.Draw("donut")
	report("donut-segments", off/render.StridePositionColor, elapsed)
}

func benchTreemap(store *render.MemoryStore, topLevel, width, height int, seed uint64) {
	tree := datagen.Hierarchy(topLevel, 6, 4, seed)
	cache := treemap.NewLayoutCache()

	start := time.Now()
	layout := treemap.DefaultSquarify
	layout.Layout(tree, chartx.NewRect(0, 0, float32(width), float32(height)), cache)
	visible := layout.VisibleNodes(tree, cache)
	elapsed := time.Since(start)

	// Two triangles per visible cell.
	buf := make([]float32, 0, len(visible)*6*render.StridePosition)
	for _, n := range visible {
		r := cache.Rect(n)
		buf = append(buf,
			r.X, r.Y, r.Right(), r.Y, r.Right(), r.Bottom(),
			r.X, r.Y, r.Right(), r.Bottom(), r.X, r.Bottom(),
		)
	}
	if err := store.Upload("treemap", buf, render.StridePosition, render.Triangles); err != nil {
		log.Fatalf("treemap upload: %v", err)
	}
	store.Draw("treemap")
	log.Printf("treemap: %d nodes, %d visible in %v", cache.Len(), len(visible), elapsed)

	sunburst := treemap.SunburstLayout{SegmentGap: 1}
	angles := treemap.NewLayoutCache()
	sunburst.Layout(tree, angles)
	log.Printf("sunburst: %d spans", angles.Len())
}

func benchStacking(seriesCount, points int, seed uint64) {
	group := datagen.StackedGroup(seriesCount, points, 3, seed)
	calc := stack.NewCalculator()

	start := time.Now()
	calc.Compute(group, 0, points-1, stack.ModeCumulative)
	elapsed := time.Since(start)

	log.Printf("stacking: %d series x %d points in %v, range [%.1f, %.1f]",
		seriesCount, points, elapsed, calc.MinStacked(), calc.MaxStacked())
}

func gridRange(values []float32) (min, max float32) {
	first := true
	for _, v := range values {
		if math32.IsNaN(v) {
			continue
		}
		if first {
			min, max = v, v
			first = false
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

func report(name string, vertices int, elapsed time.Duration) {
	perSec := float64(vertices) / elapsed.Seconds()
	log.Printf("%s: %d vertices in %v (%s/s)", name, vertices, elapsed, humanCount(perSec))
}

func humanCount(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.1fk", v/1e3)
	}
	return fmt.Sprintf("%.0f", v)
}
