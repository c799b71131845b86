package figma

// FileResponse is the payload of the Figma file endpoint, as saved by
// `GET /v1/files/:key`. Only the fields the canvas reads are decoded.
type FileResponse struct {
	Name         string `json:"name"`
	LastModified string `json:"lastModified"`
	Version      string `json:"version"`
	Document     Node   `json:"document"`
}

// NodesResponse is the payload of the Figma nodes endpoint, as saved by
// `GET /v1/files/:key/nodes?ids=...`.
type NodesResponse struct {
	Name  string              `json:"name"`
	Nodes map[string]NodeData `json:"nodes"`
}

// NodeData wraps one requested node of a NodesResponse.
type NodeData struct {
	Document Node `json:"document"`
}

// Node is a single element of the Figma document tree: the document itself,
// pages (CANVAS), frames, groups, text layers, shapes and so on.
type Node struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Type                string     `json:"type"`
	Children            []Node     `json:"children,omitempty"`
	Fills               []Paint    `json:"fills,omitempty"`
	Strokes             []Paint    `json:"strokes,omitempty"`
	Characters          string     `json:"characters,omitempty"`
	Style               *TypeStyle `json:"style,omitempty"`
	AbsoluteBoundingBox *Rectangle `json:"absoluteBoundingBox,omitempty"`
}

// Node types the canvas gives a meaning to.
const (
	TypeDocument = "DOCUMENT"
	TypeCanvas   = "CANVAS"
	TypeFrame    = "FRAME"
	TypeText     = "TEXT"
)

// Color is an RGBA color with channels in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Paint is a fill or stroke. The API omits "visible" for visible paints,
// hence the pointer.
type Paint struct {
	Type    string  `json:"type"`
	Visible *bool   `json:"visible,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
	Color   *Color  `json:"color,omitempty"`
}

// IsVisible reports whether the paint is rendered.
func (p Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// TypeStyle holds the typography of a TEXT node.
type TypeStyle struct {
	FontFamily         string  `json:"fontFamily"`
	FontPostScriptName string  `json:"fontPostScriptName,omitempty"`
	// FontStyle is the style name shown in the editor ("Regular",
	// "SemiBold Italic"). Exports made by plugins carry it; the REST API
	// only has the PostScript name.
	FontStyle  string  `json:"fontStyle,omitempty"`
	FontWeight float64 `json:"fontWeight"`
	FontSize   float64 `json:"fontSize"`
	Italic     bool    `json:"italic,omitempty"`
}

// Rectangle is an absolute bounding box on the canvas.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
