package extractor

import "github.com/kataras/figma-harvester/pkg/host"

// fakeNode is a minimal in-memory node tree for extractor tests.
type fakeNode struct {
	id, name string
	kind     host.Kind
	children []*fakeNode

	characters string
	family     string
	style      string
	size       float64
	weight     float64
}

func (n *fakeNode) ID() string      { return n.id }
func (n *fakeNode) Name() string    { return n.name }
func (n *fakeNode) Kind() host.Kind { return n.kind }

func (n *fakeNode) FindAll(pred func(host.Node) bool) []host.Node {
	var found []host.Node
	var walk func(*fakeNode)
	walk = func(parent *fakeNode) {
		for _, child := range parent.children {
			if pred(child) {
				found = append(found, child)
			}
			walk(child)
		}
	}
	walk(n)
	return found
}

func (n *fakeNode) Characters() string  { return n.characters }
func (n *fakeNode) FontFamily() string  { return n.family }
func (n *fakeNode) FontStyle() string   { return n.style }
func (n *fakeNode) FontSize() float64   { return n.size }
func (n *fakeNode) FontWeight() float64 { return n.weight }

func frame(id, name string, children ...*fakeNode) *fakeNode {
	return &fakeNode{id: id, name: name, kind: host.KindContainer, children: children}
}

func group(id string, children ...*fakeNode) *fakeNode {
	return &fakeNode{id: id, name: "Group", kind: host.KindOther, children: children}
}

func text(id, characters string) *fakeNode {
	return &fakeNode{
		id:         id,
		name:       characters,
		kind:       host.KindText,
		characters: characters,
		family:     "Inter",
		style:      "Regular",
		size:       14,
		weight:     400,
	}
}

func styled(id string, family, style string, size, weight float64) *fakeNode {
	n := text(id, id)
	n.family, n.style, n.size, n.weight = family, style, size, weight
	return n
}

func selection(nodes ...*fakeNode) []host.Node {
	out := make([]host.Node, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}
