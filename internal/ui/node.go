package ui

import "fmt"

// Attrs is the read-only attribute set of a node, captured at observation time.
type Attrs struct {
	Text        string
	Description string
	Hint        string
	ViewID      string
	Bounds      Rect
	Clickable   bool
	Editable    bool
	Focusable   bool
	Focused     bool
	Enabled     bool
}

// Rect is a screen rectangle in absolute pixel coordinates.
type Rect struct {
	Left, Top, Right, Bottom int
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() int { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() int { return (r.Top + r.Bottom) / 2 }

// String renders the rectangle in the accessibility bounds format "[l,t][r,b]".
func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d][%d,%d]", r.Left, r.Top, r.Right, r.Bottom)
}

// Node is one element of a live accessibility tree. The tree is owned by the
// device; nodes are referenced only for the duration of a single resolution
// pass and must not be held across tree fetches.
type Node interface {
	// Attrs returns the node's attributes as observed when the tree was read.
	Attrs() Attrs
	// ChildCount returns the number of children.
	ChildCount() int
	// Child returns the i-th child, or nil if it cannot be retrieved.
	Child(i int) Node
	// Parent returns the parent node, or nil at the root.
	Parent() Node
}

// TreeSource supplies the current root of the live accessibility tree.
// A (nil, nil) return means the tree is transiently unavailable (app not in
// foreground, bridge not ready) — an expected condition, not an error.
// A non-nil error means the bridge itself failed.
type TreeSource interface {
	Root() (Node, error)
}

// Actor performs platform actions on a node and reports whether the node
// accepted the action.
type Actor interface {
	Click(n Node) bool
	Focus(n Node) bool
}
