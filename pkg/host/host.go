// Package host defines the read-only view of a design tool that the
// extractors, the command dispatcher and the navigator work against.
//
// A host owns the node tree, the current selection, the viewport, user
// notifications and the companion panel. Nothing in this module mutates
// nodes; the only side effects go through Host.
package host

import "context"

// Kind classifies a node for the extractors.
type Kind int

const (
	// KindOther is any node the extractors do not look into.
	KindOther Kind = iota
	// KindContainer is a frame-like node used as the grouping unit.
	KindContainer
	// KindText is a text leaf.
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindText:
		return "text"
	default:
		return "other"
	}
}

// Node is an element of the host's document tree.
type Node interface {
	ID() string
	Name() string
	Kind() Kind
}

// Container is a frame-like node. Nodes of KindContainer implement it.
type Container interface {
	Node
	// FindAll returns every descendant matching pred, depth first in
	// document order. The container itself is never included.
	FindAll(pred func(Node) bool) []Node
}

// TextLeaf is a node carrying literal characters and typography.
// Nodes of KindText implement it.
type TextLeaf interface {
	Node
	Characters() string
	FontFamily() string
	// FontStyle is the style name of the font, e.g. "Regular" or "SemiBold Italic".
	FontStyle() string
	FontSize() float64
	FontWeight() float64
}

// RGB is a color with channels in [0, 1].
type RGB struct {
	R, G, B float64
}

// PaintType identifies the kind of a paint.
type PaintType string

// Paint types reported by hosts.
const (
	PaintSolid           PaintType = "SOLID"
	PaintGradientLinear  PaintType = "GRADIENT_LINEAR"
	PaintGradientRadial  PaintType = "GRADIENT_RADIAL"
	PaintGradientAngular PaintType = "GRADIENT_ANGULAR"
	PaintGradientDiamond PaintType = "GRADIENT_DIAMOND"
	PaintImage           PaintType = "IMAGE"
)

// Paint is a fill or stroke definition. Color is meaningful for solid paints only.
type Paint struct {
	Type  PaintType
	Color RGB
}

// NotifyOptions configures a user notification.
type NotifyOptions struct {
	Error bool
}

// UIOptions configures the companion panel.
type UIOptions struct {
	// Resource names the panel UI to load.
	Resource string
	Width    int
	Height   int
}

// Host is the capability surface consumed from the design tool.
type Host interface {
	// Selection returns the top-level selected nodes in selection order.
	Selection() []Node
	// SelectionColors returns the paints used by the selection, aggregated by the host.
	SelectionColors() []Paint
	// NodeByID resolves an identifier. A nil node with a nil error means the
	// node does not exist. The call may block until the host answers.
	NodeByID(ctx context.Context, id string) (Node, error)
	// ScrollAndZoomIntoView moves the viewport so that nodes are framed.
	ScrollAndZoomIntoView(nodes ...Node)
	// Notify shows a transient message to the user.
	Notify(message string, opts NotifyOptions)
	// ShowUI opens the companion panel.
	ShowUI(opts UIOptions) error
	// PostMessage sends a one-way message to the open panel.
	PostMessage(msg any) error
	// ClosePlugin ends the plugin session.
	ClosePlugin()
}

// IsContainer reports whether n is a frame-like container.
func IsContainer(n Node) bool { return n.Kind() == KindContainer }

// IsText reports whether n is a text leaf.
func IsText(n Node) bool { return n.Kind() == KindText }
