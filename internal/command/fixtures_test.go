package command

import (
	"image"
	"time"

	"github.com/tmcf/droidctl/internal/platform"
	"github.com/tmcf/droidctl/internal/ui"
)

type fakeNode struct {
	attrs    ui.Attrs
	parent   *fakeNode
	children []*fakeNode
}

func node(attrs ui.Attrs, children ...*fakeNode) *fakeNode {
	n := &fakeNode{attrs: attrs, children: children}
	for _, c := range children {
		c.parent = n
	}
	return n
}

func (n *fakeNode) Attrs() ui.Attrs { return n.attrs }
func (n *fakeNode) ChildCount() int { return len(n.children) }

func (n *fakeNode) Child(i int) ui.Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

func (n *fakeNode) Parent() ui.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// fakeTree serves a sequence of roots, one per fetch; the last repeats.
type fakeTree struct {
	roots []ui.Node
	err   error
	calls int
}

func (t *fakeTree) Root() (ui.Node, error) {
	t.calls++
	if t.err != nil {
		return nil, t.err
	}
	if len(t.roots) == 0 {
		return nil, nil
	}
	i := t.calls - 1
	if i >= len(t.roots) {
		i = len(t.roots) - 1
	}
	return t.roots[i], nil
}

type fakeActions struct {
	clicked    []ui.Node
	focused    []ui.Node
	setTexts   []string
	pastes     int
	setTextOK  bool
	pasteOK    bool
	refuseAll  bool
	anyCalled  bool
}

func newFakeActions() *fakeActions {
	return &fakeActions{setTextOK: true, pasteOK: true}
}

func (a *fakeActions) Click(n ui.Node) bool {
	a.anyCalled = true
	attrs := n.Attrs()
	if a.refuseAll || (!attrs.Clickable && !attrs.Editable) {
		return false
	}
	a.clicked = append(a.clicked, n)
	return true
}

func (a *fakeActions) Focus(n ui.Node) bool {
	a.anyCalled = true
	a.focused = append(a.focused, n)
	return true
}

func (a *fakeActions) SetText(n ui.Node, text string) bool {
	a.anyCalled = true
	if !a.setTextOK {
		return false
	}
	a.setTexts = append(a.setTexts, text)
	return true
}

func (a *fakeActions) Paste(n ui.Node) bool {
	a.anyCalled = true
	if !a.pasteOK {
		return false
	}
	a.pastes++
	return true
}

type fakeGestures struct {
	dispatchErr  error
	cancel       bool
	calls        int
	lastX, lastY int
	lastDuration time.Duration
}

func (g *fakeGestures) DispatchTap(x, y int, d time.Duration) (*platform.GestureResult, error) {
	g.calls++
	g.lastX, g.lastY, g.lastDuration = x, y, d
	if g.dispatchErr != nil {
		return nil, g.dispatchErr
	}
	r := platform.NewGestureResult()
	r.Complete(!g.cancel)
	return r, nil
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) SetText(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type fakeLauncher struct {
	err      error
	pkg      string
	activity string
}

func (l *fakeLauncher) Launch(pkg, activity string) error {
	l.pkg, l.activity = pkg, activity
	return l.err
}

type fakeScreens struct {
	err error
}

func (s *fakeScreens) Capture(_ platform.ScreenshotOptions) (image.Image, error) {
	if s.err != nil {
		return nil, s.err
	}
	return image.NewRGBA(image.Rect(0, 0, 4, 8)), nil
}

// testProvider wires all fakes into a Provider.
func testProvider(tree *fakeTree, actions *fakeActions, gestures *fakeGestures) (*platform.Provider, *fakeClipboard, *fakeLauncher) {
	clip := &fakeClipboard{}
	launcher := &fakeLauncher{}
	return &platform.Provider{
		Tree:      tree,
		Actions:   actions,
		Gestures:  gestures,
		Clipboard: clip,
		Launcher:  launcher,
		Screens:   &fakeScreens{},
	}, clip, launcher
}
