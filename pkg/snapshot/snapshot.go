// Package snapshot serializes computed layouts to JSON.
//
// A snapshot captures everything the render commands need without
// re-scanning the filesystem: node names, derived metrics, world
// positions, and the spacing parameters the layout was computed with.
// The format is human-readable and designed for round-trip fidelity:
// compute → export → re-import produces an identical tree.
package snapshot

import (
	"encoding/json"
	"io"
	"os"

	"github.com/treescope/treescope/pkg/errors"
	"github.com/treescope/treescope/pkg/tree"
)

// Layout is the canonical serialization format for a positioned tree.
// Node IDs are pre-order indexes, so output is deterministic and a
// parent's ID is always smaller than its children's.
type Layout struct {
	Root      string  `json:"root"` // absolute path the tree was scanned from
	SlotWidth float64 `json:"slot_width"`
	RowHeight float64 `json:"row_height"`
	Leaves    int     `json:"leaves"`
	Levels    int     `json:"levels"`
	Nodes     []Node  `json:"nodes"`
	Edges     []Edge  `json:"edges"`
}

// Node is one serialized tree node.
type Node struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Depth     int     `json:"depth"`
	LeafCount int     `json:"leaf_count"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
}

// Edge is a parent→child relation between node IDs. Edges are grouped by
// parent in node pre-order; within a group, edge order encodes sibling
// order.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// FromTree converts a positioned tree to its serialization format.
func FromTree(root *tree.Node, rootPath string, slotWidth, rowHeight float64) Layout {
	order := tree.PreOrder(root)
	index := make(map[*tree.Node]int, len(order))
	for i, n := range order {
		index[n] = i
	}

	out := Layout{
		Root:      rootPath,
		SlotWidth: slotWidth,
		RowHeight: rowHeight,
		Leaves:    root.LeafCount,
		Nodes:     make([]Node, len(order)),
	}
	for i, n := range order {
		out.Nodes[i] = Node{
			ID:        i,
			Name:      n.Name,
			Depth:     n.Depth,
			LeafCount: n.LeafCount,
			X:         n.X,
			Y:         n.Y,
		}
		if n.Depth+1 > out.Levels {
			out.Levels = n.Depth + 1
		}
		for _, c := range n.Children {
			out.Edges = append(out.Edges, Edge{From: i, To: index[c]})
		}
	}
	return out
}

// ToTree rebuilds the node hierarchy from a snapshot. Edge order restores
// sibling order. Returns ErrCodeInvalidLayout for structural violations:
// no nodes, out-of-range IDs, a non-root node without exactly one parent.
func ToTree(l Layout) (*tree.Node, error) {
	if len(l.Nodes) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "snapshot has no nodes")
	}

	nodes := make([]*tree.Node, len(l.Nodes))
	for i, sn := range l.Nodes {
		if sn.ID != i {
			return nil, errors.New(errors.ErrCodeInvalidLayout, "node IDs must be dense pre-order indexes, got %d at position %d", sn.ID, i)
		}
		nodes[i] = &tree.Node{
			Name:      sn.Name,
			Depth:     sn.Depth,
			LeafCount: sn.LeafCount,
			X:         sn.X,
			Y:         sn.Y,
		}
	}

	parents := make([]int, len(nodes))
	for i := range parents {
		parents[i] = -1
	}
	for _, e := range l.Edges {
		if e.From < 0 || e.From >= len(nodes) || e.To < 0 || e.To >= len(nodes) {
			return nil, errors.New(errors.ErrCodeInvalidLayout, "edge %d→%d references unknown node", e.From, e.To)
		}
		if parents[e.To] != -1 {
			return nil, errors.New(errors.ErrCodeInvalidLayout, "node %d has multiple parents", e.To)
		}
		if e.To == 0 {
			return nil, errors.New(errors.ErrCodeInvalidLayout, "root node must not have a parent")
		}
		parents[e.To] = e.From
		nodes[e.From].Children = append(nodes[e.From].Children, nodes[e.To])
	}
	for i := 1; i < len(nodes); i++ {
		if parents[i] == -1 {
			return nil, errors.New(errors.ErrCodeInvalidLayout, "node %d is unreachable from the root", i)
		}
	}

	return nodes[0], nil
}

// Marshal serializes a Layout to pretty-printed JSON bytes.
func Marshal(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// Unmarshal deserializes JSON bytes into a Layout and validates it by
// rebuilding the hierarchy once.
func Unmarshal(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidLayout, err, "unmarshal snapshot")
	}
	if _, err := ToTree(l); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// WriteFile writes a Layout to a JSON file with 0644 permissions.
func WriteFile(l Layout, path string) error {
	data, err := Marshal(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFile reads and validates a Layout from a JSON file. A missing or
// unreadable file is [errors.ErrCodeFileNotFound].
func ReadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	return Unmarshal(data)
}

// Write writes a Layout as JSON to an io.Writer.
func Write(l Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(l)
}
