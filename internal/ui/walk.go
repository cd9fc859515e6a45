package ui

// bfsItem pairs a node with its root-relative index path during traversal.
type bfsItem struct {
	node    Node
	indices []int
}

// walkBFS visits the reachable tree in level order, calling visit for each
// node with its index path. Children that cannot be retrieved are skipped
// without failing the traversal. Returning false from visit stops the walk.
func walkBFS(root Node, visit func(n Node, indices []int) bool) {
	queue := []bfsItem{{node: root}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if !visit(item.node, item.indices) {
			return
		}

		count := item.node.ChildCount()
		for i := 0; i < count; i++ {
			child := item.node.Child(i)
			if child == nil {
				continue
			}
			childIndices := make([]int, len(item.indices), len(item.indices)+1)
			copy(childIndices, item.indices)
			childIndices = append(childIndices, i)
			queue = append(queue, bfsItem{node: child, indices: childIndices})
		}
	}
}

// FindBest walks the entire reachable tree breadth-first and returns a dump
// of the highest-scoring node for the query, or nil when nothing matches.
// A node replaces the running best only on a strictly greater score, so the
// first-seen node wins ties and results are reproducible for an unchanged
// tree. The full tree is always visited: a deeper node may outscore an
// earlier shallow one.
func FindBest(root Node, query string) *NodeDump {
	if root == nil || query == "" {
		return nil
	}
	var best *NodeDump
	bestScore := 0
	walkBFS(root, func(n Node, indices []int) bool {
		if s := Score(n, query); s > bestScore {
			d := DumpNode(n, indices)
			best = &d
			bestScore = s
		}
		return true
	})
	return best
}

// FirstMatch returns the first node in BFS order clearing the score
// threshold, or nil. Unlike FindBest it accepts any match rather than the
// global maximum; editable-target resolution uses this cheaper variant.
func FirstMatch(root Node, query string) Node {
	if root == nil || query == "" {
		return nil
	}
	var match Node
	walkBFS(root, func(n Node, _ []int) bool {
		if Score(n, query) > 0 {
			match = n
			return false
		}
		return true
	})
	return match
}

// Snapshot returns dumps of the first maxNodes nodes in BFS level order.
// maxNodes is clamped to at least 1. A nil root yields an empty snapshot.
func Snapshot(root Node, maxNodes int) []NodeDump {
	if root == nil {
		return nil
	}
	if maxNodes < 1 {
		maxNodes = 1
	}
	dumps := make([]NodeDump, 0, maxNodes)
	walkBFS(root, func(n Node, indices []int) bool {
		dumps = append(dumps, DumpNode(n, indices))
		return len(dumps) < maxNodes
	})
	return dumps
}
