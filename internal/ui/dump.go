package ui

// NodeDump is an immutable projection of a node taken during one traversal.
// It is created fresh per query/snapshot call and never mutated.
type NodeDump struct {
	Path        string `yaml:"path"                  json:"path"`
	Text        string `yaml:"text,omitempty"        json:"text,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Hint        string `yaml:"hint,omitempty"        json:"hint,omitempty"`
	ViewID      string `yaml:"viewId,omitempty"      json:"viewId,omitempty"`
	Bounds      string `yaml:"bounds"                json:"bounds"`
	CenterX     int    `yaml:"centerX"               json:"centerX"`
	CenterY     int    `yaml:"centerY"               json:"centerY"`
	Clickable   bool   `yaml:"clickable"             json:"clickable"`
	Editable    bool   `yaml:"editable"              json:"editable"`
	Focusable   bool   `yaml:"focusable"             json:"focusable"`
	Focused     bool   `yaml:"focused"               json:"focused"`
	Enabled     bool   `yaml:"enabled"               json:"enabled"`
}

// DumpNode projects a node at the given tree position into a NodeDump.
func DumpNode(n Node, indices []int) NodeDump {
	a := n.Attrs()
	return NodeDump{
		Path:        FormatPath(indices),
		Text:        a.Text,
		Description: a.Description,
		Hint:        a.Hint,
		ViewID:      a.ViewID,
		Bounds:      a.Bounds.String(),
		CenterX:     a.Bounds.CenterX(),
		CenterY:     a.Bounds.CenterY(),
		Clickable:   a.Clickable,
		Editable:    a.Editable,
		Focusable:   a.Focusable,
		Focused:     a.Focused,
		Enabled:     a.Enabled,
	}
}
