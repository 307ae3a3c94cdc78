package scan

import "path/filepath"

// Node is a directory and its cumulative size, including all descendants.
type Node struct {
	// Path is the directory path.
	Path string
	// Size is the cumulative size in bytes.
	Size int64
	// Children are the immediate subdirectories that contained files.
	Children []*Node
}

// buildTree assembles the directory tree rooted at root from per-directory
// file totals. Intermediate directories that held no files themselves are
// created as needed so that sizes roll up through them.
func buildTree(root string, direct map[string]int64) *Node {
	nodes := map[string]*Node{root: {Path: root}}

	var ensure func(dir string) *Node
	ensure = func(dir string) *Node {
		if node, ok := nodes[dir]; ok {
			return node
		}

		node := &Node{Path: dir}
		nodes[dir] = node

		parent := filepath.Dir(dir)
		if parent == dir {
			// Filesystem root reached without meeting the walk root;
			// attach directly rather than lose the subtree.
			parent = root
		}

		up := ensure(parent)
		up.Children = append(up.Children, node)

		return node
	}

	for dir, size := range direct {
		ensure(dir).Size += size
	}

	tree := nodes[root]
	tree.rollup()

	return tree
}

// rollup folds child sizes into each ancestor, bottom-up.
func (n *Node) rollup() int64 {
	for _, child := range n.Children {
		n.Size += child.rollup()
	}

	return n.Size
}
