package tree

import (
	"os"
	"path/filepath"
	"strings"

	charmlog "github.com/charmbracelet/log"

	"github.com/treescope/treescope/pkg/errors"
)

// ScanOptions control filesystem traversal.
type ScanOptions struct {
	// MaxDepth limits how many directory levels below the root are entered.
	// Zero means unlimited.
	MaxDepth int

	// SkipHidden drops entries whose name starts with a dot.
	SkipHidden bool
}

// Scan builds a Node hierarchy for the directory at path.
//
// The root must exist and be a directory; anything else is a fatal
// [errors.ErrCodeInvalidPath]. Below the root, unreadable entries are
// logged at warn level and skipped so one bad directory never sinks the
// whole build. Children follow os.ReadDir's name ordering, which keeps
// sibling order deterministic across runs.
func Scan(path string, opts ScanOptions, logger *charmlog.Logger) (*Node, error) {
	if logger == nil {
		logger = charmlog.Default()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", path)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "stat %s", abs)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidPath, "%s is not a directory", abs)
	}

	root := &Node{Name: filepath.Base(abs)}

	type frame struct {
		node  *Node
		path  string
		depth int
	}
	stack := []frame{{node: root, path: abs, depth: 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(f.path)
		if err != nil {
			// Partial results from ReadDir are still used below.
			logger.Warn("skipping unreadable directory", "path", f.path, "err", err)
		}

		for _, e := range entries {
			if opts.SkipHidden && strings.HasPrefix(e.Name(), ".") {
				continue
			}
			child := &Node{Name: e.Name()}
			f.node.Children = append(f.node.Children, child)
			if e.IsDir() && (opts.MaxDepth == 0 || f.depth+1 < opts.MaxDepth) {
				stack = append(stack, frame{
					node:  child,
					path:  filepath.Join(f.path, e.Name()),
					depth: f.depth + 1,
				})
			}
		}
	}

	return root, nil
}
