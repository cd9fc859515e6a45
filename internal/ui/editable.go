package ui

// Resolver selects the node that should receive text-input or paste actions.
// It needs the tree source (to re-fetch after a click may have changed the
// UI) and an actor (to focus/click nodes that reveal an input on interaction).
type Resolver struct {
	Tree  TreeSource
	Actor Actor
}

// ResolveTarget applies the editable-target policy, first success wins:
//
//  1. A focused, editable node anywhere in the tree is used unconditionally —
//     the user's own focus is the strongest signal of intent.
//  2. With a query: the first matching node. If it is editable it is focused
//     and then clicked (some devices only raise the keyboard on a tap) and
//     used directly. Otherwise the match or its nearest ancestor accepting a
//     click is clicked, the tree is re-fetched and the newly focused input
//     re-checked; failing that, the match's subtree is searched for the first
//     editable descendant.
//  3. Otherwise: the first editable node anywhere, depth-first pre-order.
//
// Returns nil when every step fails, meaning no editable target is currently
// available — not an error about the query.
func (r *Resolver) ResolveTarget(query string) Node {
	root := r.root()
	if root == nil {
		return nil
	}

	if n := findFocusedEditable(root); n != nil {
		return n
	}

	if q := NormalizeQuery(query); q != "" {
		if target := r.resolveByQuery(root, q); target != nil {
			return target
		}
	}

	return firstEditable(root)
}

func (r *Resolver) resolveByQuery(root Node, query string) Node {
	match := FirstMatch(root, query)
	if match == nil {
		return nil
	}

	if match.Attrs().Editable {
		// Focus alone does not raise the on-screen keyboard everywhere;
		// a click after the focus does.
		r.Actor.Focus(match)
		r.Actor.Click(match)
		return match
	}

	// The match is not editable. Clicking it (or the nearest clickable
	// ancestor) may mount or focus an input, e.g. a search bar that expands
	// on tap.
	if ClickOrAncestor(r.Actor, match) {
		if fresh := r.root(); fresh != nil {
			if n := findFocusedEditable(fresh); n != nil {
				return n
			}
		}
	}

	return firstEditable(match)
}

func (r *Resolver) root() Node {
	if r.Tree == nil {
		return nil
	}
	root, err := r.Tree.Root()
	if err != nil {
		return nil
	}
	return root
}

// ClickOrAncestor clicks the node, walking upward to the nearest ancestor
// that accepts the click. Returns false when the node and all its ancestors
// refused.
func ClickOrAncestor(actor Actor, n Node) bool {
	for cur := n; cur != nil; cur = cur.Parent() {
		if actor.Click(cur) {
			return true
		}
	}
	return false
}

// findFocusedEditable returns the first focused, input-capable node in
// depth-first pre-order, or nil.
func findFocusedEditable(root Node) Node {
	return findDFS(root, func(a Attrs) bool { return a.Focused && a.Editable })
}

// firstEditable returns the first editable node in depth-first pre-order,
// or nil. A node qualifies before its children are inspected.
func firstEditable(root Node) Node {
	return findDFS(root, func(a Attrs) bool { return a.Editable })
}

func findDFS(n Node, pred func(Attrs) bool) Node {
	if n == nil {
		return nil
	}
	if pred(n.Attrs()) {
		return n
	}
	count := n.ChildCount()
	for i := 0; i < count; i++ {
		if found := findDFS(n.Child(i), pred); found != nil {
			return found
		}
	}
	return nil
}
