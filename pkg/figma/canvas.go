package figma

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/kataras/figma-harvester/pkg/host"
)

var (
	// ErrPluginClosed is returned by panel operations after ClosePlugin.
	ErrPluginClosed = errors.New("plugin session closed")
	// ErrPanelNotOpen is returned by PostMessage before ShowUI.
	ErrPanelNotOpen = errors.New("panel not open")
)

// Zoom limits of the Figma editor.
const (
	MinZoom = 0.02
	MaxZoom = 256
)

// CanvasOptions configures a Canvas.
type CanvasOptions struct {
	// ContainerTypes lists the node types exposed as frame-like containers.
	// Defaults to FRAME.
	ContainerTypes []string
	// ViewportWidth and ViewportHeight are the visible area in screen
	// pixels. Default to 1440x900.
	ViewportWidth  float64
	ViewportHeight float64
	// OnNotify, when set, is called for every notification.
	OnNotify func(Notification)
	// OnMessage, when set, is called for every message posted to the panel.
	OnMessage func(msg any)
}

// Notification is a message shown to the user.
type Notification struct {
	Message string `json:"message"`
	Error   bool   `json:"error,omitempty"`
}

// Viewport is the visible canvas region: its center in canvas coordinates
// and the zoom factor.
type Viewport struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zoom float64 `json:"zoom"`
}

// Panel is the state of the companion panel.
type Panel struct {
	Resource string
	Width    int
	Height   int
	Open     bool
}

// Canvas is an in-memory host over one page of a Document. It implements
// host.Host for a single plugin session and is not safe for concurrent use.
type Canvas struct {
	doc        *Document
	page       *Node
	containers map[string]bool
	opts       CanvasOptions

	selection     []*Node
	viewport      Viewport
	notifications []Notification
	panel         Panel
	messages      []any
	closed        bool
}

var _ host.Host = (*Canvas)(nil)

// NewCanvas opens the page of doc identified by pageRef (id or name, empty
// for the first page). Every top-level node of the page starts selected.
func NewCanvas(doc *Document, pageRef string, opts CanvasOptions) (*Canvas, error) {
	page, err := doc.Page(pageRef)
	if err != nil {
		return nil, err
	}

	if len(opts.ContainerTypes) == 0 {
		opts.ContainerTypes = []string{TypeFrame}
	}
	if opts.ViewportWidth <= 0 {
		opts.ViewportWidth = 1440
	}
	if opts.ViewportHeight <= 0 {
		opts.ViewportHeight = 900
	}

	containers := make(map[string]bool, len(opts.ContainerTypes))
	for _, t := range opts.ContainerTypes {
		containers[t] = true
	}

	c := &Canvas{
		doc:        doc,
		page:       page,
		containers: containers,
		opts:       opts,
		viewport:   Viewport{Zoom: 1},
	}
	c.SelectAll()
	return c, nil
}

// Page returns the current page.
func (c *Canvas) Page() *Node { return c.page }

// SelectAll selects every top-level node of the current page.
func (c *Canvas) SelectAll() {
	c.selection = c.selection[:0]
	for i := range c.page.Children {
		c.selection = append(c.selection, &c.page.Children[i])
	}
}

// Select replaces the selection with the nodes of the current page having
// the given ids, in that order.
func (c *Canvas) Select(ids ...string) error {
	selected := make([]*Node, 0, len(ids))
	for _, raw := range ids {
		id, err := NormalizeNodeID(raw)
		if err != nil {
			return err
		}
		n := find(c.page, id)
		if n == nil || n == c.page {
			return fmt.Errorf("select: node %s is not on page %q", id, c.page.Name)
		}
		selected = append(selected, n)
	}
	c.selection = selected
	return nil
}

// Selection implements host.Host.
func (c *Canvas) Selection() []host.Node {
	nodes := make([]host.Node, len(c.selection))
	for i, n := range c.selection {
		nodes[i] = wrap(n, c.containers)
	}
	return nodes
}

// SelectionColors implements host.Host. Visible fills then visible strokes
// of every selected node and its descendants, depth first.
func (c *Canvas) SelectionColors() []host.Paint {
	var paints []host.Paint
	for _, n := range c.selection {
		paints = collectPaints(n, paints)
	}
	return paints
}

func collectPaints(n *Node, paints []host.Paint) []host.Paint {
	for _, group := range [][]Paint{n.Fills, n.Strokes} {
		for _, p := range group {
			if !p.IsVisible() {
				continue
			}
			paint := host.Paint{Type: host.PaintType(p.Type)}
			if p.Color != nil {
				paint.Color = host.RGB{R: p.Color.R, G: p.Color.G, B: p.Color.B}
			}
			paints = append(paints, paint)
		}
	}
	for i := range n.Children {
		paints = collectPaints(&n.Children[i], paints)
	}
	return paints
}

// NodeByID implements host.Host. It searches the whole document, not only
// the current page. Malformed ids are lookup errors.
func (c *Canvas) NodeByID(ctx context.Context, id string) (host.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	normalized, err := NormalizeNodeID(id)
	if err != nil {
		return nil, err
	}

	n, ok := c.doc.Lookup(normalized)
	if !ok {
		return nil, nil
	}
	return wrap(n, c.containers), nil
}

// ScrollAndZoomIntoView implements host.Host. The viewport is centered on
// the union of the nodes' bounding boxes and zoomed to fit it. Nodes without
// a bounding box are ignored; if none has one the viewport does not move.
func (c *Canvas) ScrollAndZoomIntoView(nodes ...host.Node) {
	var (
		minX, minY = math.Inf(1), math.Inf(1)
		maxX, maxY = math.Inf(-1), math.Inf(-1)
		found      bool
	)
	for _, hn := range nodes {
		n, ok := unwrap(hn)
		if !ok || n.AbsoluteBoundingBox == nil {
			continue
		}
		b := n.AbsoluteBoundingBox
		minX, minY = math.Min(minX, b.X), math.Min(minY, b.Y)
		maxX, maxY = math.Max(maxX, b.X+b.Width), math.Max(maxY, b.Y+b.Height)
		found = true
	}
	if !found {
		return
	}

	width, height := maxX-minX, maxY-minY
	zoom := math.Inf(1)
	if width > 0 {
		zoom = math.Min(zoom, c.opts.ViewportWidth/width)
	}
	if height > 0 {
		zoom = math.Min(zoom, c.opts.ViewportHeight/height)
	}
	if math.IsInf(zoom, 1) {
		zoom = c.viewport.Zoom
	}

	c.viewport = Viewport{
		X:    minX + width/2,
		Y:    minY + height/2,
		Zoom: math.Max(MinZoom, math.Min(MaxZoom, zoom)),
	}
}

// Viewport returns the current viewport.
func (c *Canvas) Viewport() Viewport { return c.viewport }

// Notify implements host.Host.
func (c *Canvas) Notify(message string, opts host.NotifyOptions) {
	n := Notification{Message: message, Error: opts.Error}
	c.notifications = append(c.notifications, n)
	if c.opts.OnNotify != nil {
		c.opts.OnNotify(n)
	}
}

// Notifications returns every notification shown so far.
func (c *Canvas) Notifications() []Notification { return c.notifications }

// ShowUI implements host.Host.
func (c *Canvas) ShowUI(opts host.UIOptions) error {
	if c.closed {
		return ErrPluginClosed
	}
	c.panel = Panel{Resource: opts.Resource, Width: opts.Width, Height: opts.Height, Open: true}
	return nil
}

// PostMessage implements host.Host.
func (c *Canvas) PostMessage(msg any) error {
	if c.closed {
		return ErrPluginClosed
	}
	if !c.panel.Open {
		return ErrPanelNotOpen
	}
	c.messages = append(c.messages, msg)
	if c.opts.OnMessage != nil {
		c.opts.OnMessage(msg)
	}
	return nil
}

// Panel returns the panel state.
func (c *Canvas) Panel() Panel { return c.panel }

// Messages returns the messages posted to the panel, oldest first.
func (c *Canvas) Messages() []any { return c.messages }

// ClosePlugin implements host.Host.
func (c *Canvas) ClosePlugin() {
	c.closed = true
	c.panel.Open = false
}

// Closed reports whether the session was closed.
func (c *Canvas) Closed() bool { return c.closed }
