package adb

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tmcf/droidctl/internal/ui"
)

// TreeSource reads the device UI hierarchy through uiautomator. Every call
// produces a fresh snapshot; nodes are only valid against the snapshot they
// came from.
type TreeSource struct {
	dev *Device
}

// NewTreeSource returns a TreeSource for the device.
func NewTreeSource(dev *Device) *TreeSource {
	return &TreeSource{dev: dev}
}

// Root dumps and parses the current UI hierarchy. A (nil, nil) return means
// uiautomator produced no hierarchy right now (screen off, secure surface,
// transition in progress) — an expected transient condition.
func (t *TreeSource) Root() (ui.Node, error) {
	// Dumping to /dev/tty streams the XML over stdout instead of a file
	// on the device that would need a second round-trip to pull.
	out, err := t.dev.ExecOut("uiautomator", "dump", "/dev/tty")
	if err != nil {
		return nil, fmt.Errorf("ui dump: %w", err)
	}
	return parseHierarchy(out)
}

type xmlNode struct {
	Text      string    `xml:"text,attr"`
	Desc      string    `xml:"content-desc,attr"`
	Hint      string    `xml:"hint,attr"`
	ViewID    string    `xml:"resource-id,attr"`
	Class     string    `xml:"class,attr"`
	Bounds    string    `xml:"bounds,attr"`
	Clickable bool      `xml:"clickable,attr"`
	Enabled   bool      `xml:"enabled,attr"`
	Focusable bool      `xml:"focusable,attr"`
	Focused   bool      `xml:"focused,attr"`
	Children  []xmlNode `xml:"node"`
}

type xmlHierarchy struct {
	XMLName xml.Name  `xml:"hierarchy"`
	Nodes   []xmlNode `xml:"node"`
}

// parseHierarchy converts a uiautomator dump into a node tree. The dump may
// carry trailing status text ("UI hierchary dumped to: ..."); only the XML
// document between the declaration and </hierarchy> is parsed. Returns
// (nil, nil) when no hierarchy is present.
func parseHierarchy(raw []byte) (ui.Node, error) {
	start := bytes.Index(raw, []byte("<?xml"))
	if start < 0 {
		return nil, nil
	}
	const closeTag = "</hierarchy>"
	end := bytes.LastIndex(raw, []byte(closeTag))
	if end < 0 {
		return nil, nil
	}

	var h xmlHierarchy
	if err := xml.Unmarshal(raw[start:end+len(closeTag)], &h); err != nil {
		return nil, fmt.Errorf("ui dump parse: %w", err)
	}
	if len(h.Nodes) == 0 {
		return nil, nil
	}
	if len(h.Nodes) == 1 {
		return buildNode(&h.Nodes[0], nil), nil
	}

	// Multi-window dumps have several top-level nodes; hold them under a
	// synthetic root so paths stay rooted in one tree.
	root := &treeNode{attrs: ui.Attrs{Enabled: true}}
	for i := range h.Nodes {
		root.children = append(root.children, buildNode(&h.Nodes[i], root))
	}
	return root, nil
}

// treeNode is the in-memory ui.Node for one parsed hierarchy snapshot.
type treeNode struct {
	attrs    ui.Attrs
	parent   *treeNode
	children []*treeNode
}

func (n *treeNode) Attrs() ui.Attrs { return n.attrs }
func (n *treeNode) ChildCount() int { return len(n.children) }

func (n *treeNode) Child(i int) ui.Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

func (n *treeNode) Parent() ui.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func buildNode(x *xmlNode, parent *treeNode) *treeNode {
	n := &treeNode{
		parent: parent,
		attrs: ui.Attrs{
			Text:        x.Text,
			Description: x.Desc,
			Hint:        x.Hint,
			ViewID:      x.ViewID,
			Bounds:      parseBounds(x.Bounds),
			Clickable:   x.Clickable,
			Editable:    isEditableClass(x.Class),
			Focusable:   x.Focusable,
			Focused:     x.Focused,
			Enabled:     x.Enabled,
		},
	}
	for i := range x.Children {
		n.children = append(n.children, buildNode(&x.Children[i], n))
	}
	return n
}

// isEditableClass reports whether the widget class accepts text input.
// uiautomator dumps expose no explicit editable flag, so the class is the
// signal.
func isEditableClass(class string) bool {
	switch class {
	case "android.widget.AutoCompleteTextView",
		"android.widget.MultiAutoCompleteTextView",
		"android.inputmethodservice.ExtractEditText",
		"android.widget.SearchView":
		return true
	}
	return strings.HasSuffix(class, "EditText")
}

var boundsRe = regexp.MustCompile(`^\[(-?\d+),(-?\d+)\]\[(-?\d+),(-?\d+)\]$`)

// parseBounds decodes the "[l,t][r,b]" bounds attribute; malformed bounds
// yield the zero rectangle.
func parseBounds(s string) ui.Rect {
	m := boundsRe.FindStringSubmatch(s)
	if m == nil {
		return ui.Rect{}
	}
	atoi := func(v string) int {
		n, _ := strconv.Atoi(v)
		return n
	}
	return ui.Rect{Left: atoi(m[1]), Top: atoi(m[2]), Right: atoi(m[3]), Bottom: atoi(m[4])}
}
