package ui

// fakeNode is an in-memory Node for tests, mirroring the capability set of
// the live accessibility tree.
type fakeNode struct {
	attrs    Attrs
	parent   *fakeNode
	children []*fakeNode
	hidden   bool // parent reports this child as unavailable
}

func newNode(attrs Attrs, children ...*fakeNode) *fakeNode {
	n := &fakeNode{attrs: attrs, children: children}
	for _, c := range children {
		c.parent = n
	}
	return n
}

func (n *fakeNode) Attrs() Attrs    { return n.attrs }
func (n *fakeNode) ChildCount() int { return len(n.children) }

func (n *fakeNode) Child(i int) Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	if n.children[i].hidden {
		return nil
	}
	return n.children[i]
}

func (n *fakeNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// fakeTree returns a sequence of roots, one per Root call, to simulate the
// UI changing between fetches. The last root repeats once exhausted.
type fakeTree struct {
	roots []Node
	err   error
	calls int
}

func (t *fakeTree) Root() (Node, error) {
	if t.err != nil {
		return nil, t.err
	}
	if len(t.roots) == 0 {
		return nil, nil
	}
	i := t.calls
	if i >= len(t.roots) {
		i = len(t.roots) - 1
	}
	t.calls++
	return t.roots[i], nil
}

// recordingActor records which nodes were clicked and focused. Clicks are
// accepted only for clickable or editable nodes, like the real action layer.
type recordingActor struct {
	clicked []Node
	focused []Node
}

func (a *recordingActor) Click(n Node) bool {
	attrs := n.Attrs()
	if !attrs.Clickable && !attrs.Editable {
		return false
	}
	a.clicked = append(a.clicked, n)
	return true
}

func (a *recordingActor) Focus(n Node) bool {
	a.focused = append(a.focused, n)
	return true
}
