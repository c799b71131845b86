package figma

import (
	"strings"

	"github.com/kataras/figma-harvester/pkg/host"
)

// view adapts a document node to the host interfaces. The concrete type
// returned by wrap depends on the node kind: containerView implements
// host.Container, textView implements host.TextLeaf.
type view struct {
	node       *Node
	containers map[string]bool
}

func (v view) ID() string   { return v.node.ID }
func (v view) Name() string { return v.node.Name }

func (v view) Kind() host.Kind {
	switch {
	case v.containers[v.node.Type]:
		return host.KindContainer
	case v.node.Type == TypeText:
		return host.KindText
	default:
		return host.KindOther
	}
}

func (v view) raw() *Node { return v.node }

type containerView struct{ view }

// FindAll walks the subtree depth first in document order.
func (c containerView) FindAll(pred func(host.Node) bool) []host.Node {
	var found []host.Node
	var walk func(parent *Node)
	walk = func(parent *Node) {
		for i := range parent.Children {
			child := wrap(&parent.Children[i], c.containers)
			if pred(child) {
				found = append(found, child)
			}
			walk(&parent.Children[i])
		}
	}
	walk(c.node)
	return found
}

type textView struct{ view }

func (t textView) Characters() string { return t.node.Characters }

func (t textView) FontFamily() string {
	if t.node.Style == nil {
		return ""
	}
	return t.node.Style.FontFamily
}

// FontStyle prefers the explicit style name, then the PostScript name suffix
// ("Inter-SemiBold" gives "SemiBold"), then "Regular".
func (t textView) FontStyle() string {
	s := t.node.Style
	if s == nil {
		return "Regular"
	}
	if s.FontStyle != "" {
		return s.FontStyle
	}
	if i := strings.LastIndexByte(s.FontPostScriptName, '-'); i >= 0 && i < len(s.FontPostScriptName)-1 {
		return s.FontPostScriptName[i+1:]
	}
	if s.Italic {
		return "Italic"
	}
	return "Regular"
}

func (t textView) FontSize() float64 {
	if t.node.Style == nil {
		return 0
	}
	return t.node.Style.FontSize
}

func (t textView) FontWeight() float64 {
	if t.node.Style == nil {
		return 0
	}
	return t.node.Style.FontWeight
}

// wrap returns the host view of n.
func wrap(n *Node, containers map[string]bool) host.Node {
	v := view{node: n, containers: containers}
	switch v.Kind() {
	case host.KindContainer:
		return containerView{v}
	case host.KindText:
		return textView{v}
	default:
		return v
	}
}

// unwrap returns the document node behind a host node created by a canvas.
func unwrap(n host.Node) (*Node, bool) {
	r, ok := n.(interface{ raw() *Node })
	if !ok {
		return nil, false
	}
	return r.raw(), true
}
