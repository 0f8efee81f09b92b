// Package pipeline orchestrates the scan → measure → layout → snapshot
// flow shared by the CLI commands.
//
// The Runner owns the cross-cutting pieces (cache, logger); each stage
// delegates to pkg/tree, pkg/layout, and pkg/snapshot. Layout results are
// cached as snapshot JSON so repeated exports of the same root skip the
// filesystem walk.
package pipeline

import (
	"context"
	"time"

	charmlog "github.com/charmbracelet/log"

	"github.com/treescope/treescope/pkg/cache"
	"github.com/treescope/treescope/pkg/fonts"
	"github.com/treescope/treescope/pkg/layout"
	"github.com/treescope/treescope/pkg/snapshot"
	"github.com/treescope/treescope/pkg/tree"
)

// Options configure a pipeline run.
type Options struct {
	// Labels controls whether every node is labeled. Slot width is sized
	// to the widest label only when set.
	Labels bool

	// YScale stretches or compresses the vertical axis.
	YScale float64

	// TextSize is the label glyph size in pixels.
	TextSize float64

	// FontName selects a system font by file name; empty tries common
	// sans-serif fonts.
	FontName string

	// VerticalExtent is the vertical pixel budget the tree is fitted
	// into; row height shrinks as tree depth grows.
	VerticalExtent float64

	// Scan options.
	MaxDepth   int
	SkipHidden bool
}

// SetDefaults fills zero-valued fields with sensible defaults.
func (o *Options) SetDefaults() {
	if o.YScale == 0 {
		o.YScale = 1.0
	}
	if o.TextSize == 0 {
		o.TextSize = fonts.DefaultTextSize
	}
	if o.VerticalExtent == 0 {
		o.VerticalExtent = 800
	}
}

// cacheKey is the subset of Options that affects layout output.
type cacheKey struct {
	Labels         bool    `json:"labels"`
	YScale         float64 `json:"y_scale"`
	TextSize       float64 `json:"text_size"`
	FontName       string  `json:"font_name"`
	VerticalExtent float64 `json:"vertical_extent"`
	MaxDepth       int     `json:"max_depth"`
	SkipHidden     bool    `json:"skip_hidden"`
}

// Runner executes pipeline stages with shared cache and logger.
type Runner struct {
	cache  cache.Cache
	logger *charmlog.Logger
}

// NewRunner creates a runner. A nil cache disables caching; a nil logger
// falls back to the default logger.
func NewRunner(c cache.Cache, logger *charmlog.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = charmlog.Default()
	}
	return &Runner{cache: c, logger: logger}
}

// Close releases the runner's cache.
func (r *Runner) Close() error {
	return r.cache.Close()
}

// Scan builds and metric-decorates the tree for path.
func (r *Runner) Scan(path string, opts Options) (*tree.Node, error) {
	start := time.Now()
	root, err := tree.Scan(path, tree.ScanOptions{MaxDepth: opts.MaxDepth, SkipHidden: opts.SkipHidden}, r.logger)
	if err != nil {
		return nil, err
	}
	leaves, maxDepth := tree.ComputeMetrics(root)
	r.logger.Debug("scanned tree",
		"path", path,
		"nodes", tree.Count(root),
		"leaves", leaves,
		"levels", maxDepth+1,
		"elapsed", time.Since(start).Round(time.Millisecond))
	return root, nil
}

// Position computes the spacing configuration for a metrics-decorated
// tree and assigns world positions in place. The measurer is only
// consulted when labels are enabled; pass nil otherwise.
func (r *Runner) Position(root *tree.Node, m layout.Measurer, opts Options) layout.Config {
	var maxLabel float64
	if opts.Labels && m != nil {
		maxLabel = layout.MaxLabelWidth(root, m)
	}

	// Levels derive from the deepest node, not the root.
	maxDepth := 0
	for _, n := range tree.PreOrder(root) {
		if n.Depth > maxDepth {
			maxDepth = n.Depth
		}
	}

	cfg := layout.Config{
		SlotWidth: layout.SlotWidth(maxLabel),
		RowHeight: layout.RowHeight(opts.YScale, opts.VerticalExtent, maxDepth+1),
	}
	layout.Assign(root, cfg)
	return cfg
}

// Layout produces a layout snapshot for path, consulting the cache
// first. The bool reports whether the result came from cache.
func (r *Runner) Layout(ctx context.Context, path string, m layout.Measurer, opts Options) (snapshot.Layout, bool, error) {
	key := cache.LayoutKey(path, cacheKey{
		Labels:         opts.Labels,
		YScale:         opts.YScale,
		TextSize:       opts.TextSize,
		FontName:       opts.FontName,
		VerticalExtent: opts.VerticalExtent,
		MaxDepth:       opts.MaxDepth,
		SkipHidden:     opts.SkipHidden,
	})

	if data, ok, err := r.cache.Get(ctx, key); err == nil && ok {
		if l, err := snapshot.Unmarshal(data); err == nil {
			return l, true, nil
		}
		// A stale or corrupt entry falls through to recompute.
		_ = r.cache.Delete(ctx, key)
	}

	root, err := r.Scan(path, opts)
	if err != nil {
		return snapshot.Layout{}, false, err
	}
	cfg := r.Position(root, m, opts)
	l := snapshot.FromTree(root, path, cfg.SlotWidth, cfg.RowHeight)

	if data, err := snapshot.Marshal(l); err == nil {
		if err := r.cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
			r.logger.Debug("layout cache write failed", "err", err)
		}
	}

	return l, false, nil
}
