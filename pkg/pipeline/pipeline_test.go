package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	charmlog "github.com/charmbracelet/log"

	"github.com/treescope/treescope/pkg/cache"
	"github.com/treescope/treescope/pkg/errors"
	"github.com/treescope/treescope/pkg/layout"
	"github.com/treescope/treescope/pkg/tree"
)

func quietLogger() *charmlog.Logger {
	return charmlog.NewWithOptions(io.Discard, charmlog.Options{})
}

func writeTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "a"), 0755); err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{"a/x", "a/y", "b"} {
		if err := os.WriteFile(filepath.Join(dir, f), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// fixedMeasurer reports the same width for every label.
type fixedMeasurer struct{ w float64 }

func (m fixedMeasurer) Width(string) float64 { return m.w }

func TestRunnerScan(t *testing.T) {
	dir := writeTree(t)
	r := NewRunner(nil, quietLogger())
	defer r.Close()

	root, err := r.Scan(dir, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := tree.Count(root); got != 5 {
		t.Errorf("node count = %d, want 5", got)
	}
	if root.LeafCount != 3 {
		t.Errorf("leaf count = %d, want 3", root.LeafCount)
	}
}

func TestRunnerScanInvalidPath(t *testing.T) {
	r := NewRunner(nil, quietLogger())
	defer r.Close()

	_, err := r.Scan(filepath.Join(t.TempDir(), "missing"), Options{})
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("err = %v, want code %s", err, errors.ErrCodeInvalidPath)
	}
}

func TestRunnerPosition(t *testing.T) {
	x := &tree.Node{Name: "x"}
	y := &tree.Node{Name: "y"}
	a := &tree.Node{Name: "a", Children: []*tree.Node{x, y}}
	b := &tree.Node{Name: "b"}
	root := &tree.Node{Name: "root", Children: []*tree.Node{a, b}}
	tree.ComputeMetrics(root)

	r := NewRunner(nil, quietLogger())
	defer r.Close()

	opts := Options{Labels: true, VerticalExtent: 800}
	opts.SetDefaults()
	cfg := r.Position(root, fixedMeasurer{w: 30}, opts)

	if want := 30 + layout.HorizontalPadding; cfg.SlotWidth != want {
		t.Errorf("SlotWidth = %v, want %v", cfg.SlotWidth, want)
	}
	// Three levels share the 800-pixel extent.
	if want := 800.0 / 3; cfg.RowHeight != want {
		t.Errorf("RowHeight = %v, want %v", cfg.RowHeight, want)
	}
	// Positions were assigned in place.
	if x.X == 0 && y.X == 0 {
		t.Error("leaf positions were not assigned")
	}
	if root.X != (a.X+b.X)/2 {
		t.Errorf("root.X = %v, want midpoint of children %v", root.X, (a.X+b.X)/2)
	}
}

func TestRunnerPositionWithoutLabels(t *testing.T) {
	root := &tree.Node{Name: "root", Children: []*tree.Node{{Name: "a"}, {Name: "b"}}}
	tree.ComputeMetrics(root)

	r := NewRunner(nil, quietLogger())
	defer r.Close()

	opts := Options{}
	opts.SetDefaults()
	cfg := r.Position(root, nil, opts)

	// No labels: slot width collapses to the padding alone.
	if cfg.SlotWidth != layout.HorizontalPadding {
		t.Errorf("SlotWidth = %v, want %v", cfg.SlotWidth, layout.HorizontalPadding)
	}
}

func TestRunnerLayoutCaches(t *testing.T) {
	dir := writeTree(t)
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, quietLogger())
	defer r.Close()

	ctx := context.Background()
	opts := Options{}
	opts.SetDefaults()

	first, hit, err := r.Layout(ctx, dir, nil, opts)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Error("first run reported a cache hit")
	}

	second, hit, err := r.Layout(ctx, dir, nil, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Error("second run missed the cache")
	}
	if len(second.Nodes) != len(first.Nodes) || second.SlotWidth != first.SlotWidth {
		t.Errorf("cached layout differs: %d nodes vs %d", len(second.Nodes), len(first.Nodes))
	}

	// Different options key a different entry.
	opts2 := opts
	opts2.YScale = 2.0
	_, hit, err = r.Layout(ctx, dir, nil, opts2)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Error("changed options reused the old cache entry")
	}
}

func TestRunnerLayoutNullCacheNeverHits(t *testing.T) {
	dir := writeTree(t)
	r := NewRunner(nil, quietLogger())
	defer r.Close()

	opts := Options{}
	opts.SetDefaults()
	for i := 0; i < 2; i++ {
		_, hit, err := r.Layout(context.Background(), dir, nil, opts)
		if err != nil {
			t.Fatal(err)
		}
		if hit {
			t.Error("null cache reported a hit")
		}
	}
}

func TestOptionsSetDefaults(t *testing.T) {
	var o Options
	o.SetDefaults()
	if o.YScale != 1.0 || o.TextSize != 20 || o.VerticalExtent != 800 {
		t.Errorf("defaults = %+v", o)
	}

	o = Options{YScale: 2.5, TextSize: 14, VerticalExtent: 600}
	o.SetDefaults()
	if o.YScale != 2.5 || o.TextSize != 14 || o.VerticalExtent != 600 {
		t.Errorf("explicit values were overwritten: %+v", o)
	}
}
