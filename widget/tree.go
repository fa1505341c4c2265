package widget

import (
	"sort"
	"strings"
)

// Kind classifies a node of a view tree.
type Kind string

const (
	// KindBar is a positioned container along an edge of the window.
	KindBar Kind = "bar"
	// KindTrigger is an interactive control that requests a state change.
	KindTrigger Kind = "trigger"
)

// Props holds presentation hints for a node, such as position or color
// role. Style lookups happen elsewhere, keyed by the node's Name.
type Props map[string]string

// Node describes one element of a view tree. A Node is a plain value:
// it holds no widget state and can be compared and inspected without a
// graphics context.
type Node struct {
	Kind Kind
	// Name is the style key of the node.
	Name string
	// Label is the accessible description of the node.
	Label       string
	Interactive bool
	Props       Props
	Children    []Node
}

// Bar builds a bar container holding children.
func Bar(name string, props Props, children ...Node) Node {
	return Node{
		Kind:     KindBar,
		Name:     name,
		Props:    props,
		Children: children,
	}
}

// Trigger builds an interactive trigger control.
func Trigger(name, label string) Node {
	return Node{
		Kind:        KindTrigger,
		Name:        name,
		Label:       label,
		Interactive: true,
	}
}

// Walk calls fn for n and every descendant of n, depth first.
func (n Node) Walk(fn func(Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns every node in the tree with the given kind.
func (n Node) Find(kind Kind) []Node {
	var out []Node
	n.Walk(func(c Node) {
		if c.Kind == kind {
			out = append(out, c)
		}
	})
	return out
}

// Controls returns every interactive node in the tree.
func (n Node) Controls() []Node {
	var out []Node
	n.Walk(func(c Node) {
		if c.Interactive {
			out = append(out, c)
		}
	})
	return out
}

// Equal reports whether two trees are structurally identical.
func (n Node) Equal(o Node) bool {
	if n.Kind != o.Kind || n.Name != o.Name || n.Label != o.Label || n.Interactive != o.Interactive {
		return false
	}
	if len(n.Props) != len(o.Props) {
		return false
	}
	for k, v := range n.Props {
		if ov, ok := o.Props[k]; !ok || ov != v {
			return false
		}
	}
	if len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// String renders the tree as an indented outline, one node per line.
func (n Node) String() string {
	var b strings.Builder
	n.write(&b, 0)
	return b.String()
}

func (n Node) write(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(string(n.Kind))
	if n.Name != "" {
		b.WriteString(" " + n.Name)
	}
	if n.Label != "" {
		b.WriteString(" " + `"` + n.Label + `"`)
	}
	keys := make([]string, 0, len(n.Props))
	for k := range n.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" " + k + "=" + n.Props[k])
	}
	b.WriteString("\n")
	for _, c := range n.Children {
		c.write(b, depth+1)
	}
}
