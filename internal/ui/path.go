package ui

import (
	"fmt"
	"strconv"
	"strings"
)

// RootPath is the reserved marker addressing the root node itself.
const RootPath = "r"

// FormatPath renders a root-relative sequence of child indices as a
// slash-delimited path, e.g. "r", "r/0", "r/1/3".
func FormatPath(indices []int) string {
	if len(indices) == 0 {
		return RootPath
	}
	parts := make([]string, 0, len(indices)+1)
	parts = append(parts, RootPath)
	for _, idx := range indices {
		parts = append(parts, strconv.Itoa(idx))
	}
	return strings.Join(parts, "/")
}

// ParsePath decodes a path string into child indices. The empty string and
// the bare root marker address the root (empty slice). The leading root
// marker is optional: "r/0/2" and "0/2" decode identically.
func ParsePath(path string) ([]int, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == RootPath {
		return nil, nil
	}
	path = strings.TrimPrefix(path, RootPath+"/")

	segments := strings.Split(path, "/")
	indices := make([]int, len(segments))
	for i, seg := range segments {
		idx, err := strconv.Atoi(seg)
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("invalid path segment %q", seg)
		}
		indices[i] = idx
	}
	return indices, nil
}

// ResolvePath descends from root one level per path segment and returns the
// addressed node, or nil if the path is malformed, an index is out of range,
// or a child cannot be retrieved. Paths are only meaningful against the tree
// snapshot they were derived from; callers must re-resolve by query when the
// UI may have changed.
func ResolvePath(root Node, path string) Node {
	if root == nil {
		return nil
	}
	indices, err := ParsePath(path)
	if err != nil {
		return nil
	}
	n := root
	for _, idx := range indices {
		if idx >= n.ChildCount() {
			return nil
		}
		child := n.Child(idx)
		if child == nil {
			return nil
		}
		n = child
	}
	return n
}
