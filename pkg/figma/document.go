package figma

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrNoPage is returned when a document has no page matching a reference.
var ErrNoPage = errors.New("page not found")

// DefaultLookupCacheSize is the number of resolved node ids a Document keeps.
const DefaultLookupCacheSize = 512

// Document is a read-only Figma document tree. It is safe for concurrent
// use; canvases built on it never modify it.
type Document struct {
	Name string
	Root *Node

	lookups *lru.Cache[string, *Node]
}

// NewDocument wraps root. A root that is not a DOCUMENT node is placed in a
// synthetic document, on a page of its own unless it already is a page.
func NewDocument(name string, root *Node, cacheSize int) (*Document, error) {
	if root == nil {
		return nil, errors.New("nil document root")
	}
	if cacheSize <= 0 {
		cacheSize = DefaultLookupCacheSize
	}

	lookups, err := lru.New[string, *Node](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create lookup cache: %w", err)
	}

	return &Document{
		Name:    name,
		Root:    asDocumentRoot(root),
		lookups: lookups,
	}, nil
}

// LoadDocument decodes a saved file response, nodes response or bare node.
func LoadDocument(r io.Reader, cacheSize int) (*Document, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	var probe struct {
		Name     string              `json:"name"`
		Document *Node               `json:"document"`
		Nodes    map[string]NodeData `json:"nodes"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	switch {
	case probe.Document != nil:
		return NewDocument(probe.Name, probe.Document, cacheSize)
	case len(probe.Nodes) > 0:
		return NewDocument(probe.Name, nodesPage(probe.Nodes), cacheSize)
	}

	var node Node
	if err := json.Unmarshal(body, &node); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if node.ID == "" {
		return nil, errors.New("parse document: no document, nodes or node id found")
	}
	return NewDocument(node.Name, &node, cacheSize)
}

// LoadDocumentFile reads a document saved at path.
func LoadDocumentFile(path string, cacheSize int) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	return LoadDocument(f, cacheSize)
}

// Pages returns the CANVAS children of the document root.
func (d *Document) Pages() []*Node {
	var pages []*Node
	for i := range d.Root.Children {
		if d.Root.Children[i].Type == TypeCanvas {
			pages = append(pages, &d.Root.Children[i])
		}
	}
	return pages
}

// Page returns the page whose id or name is ref, or the first page when ref
// is empty.
func (d *Document) Page(ref string) (*Node, error) {
	pages := d.Pages()
	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: document %q has no pages", ErrNoPage, d.Name)
	}
	if ref == "" {
		return pages[0], nil
	}
	for _, p := range pages {
		if p.ID == ref || p.Name == ref {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoPage, ref)
}

// Lookup finds a node anywhere in the document by normalized id.
func (d *Document) Lookup(id string) (*Node, bool) {
	if n, ok := d.lookups.Get(id); ok {
		return n, true
	}

	n := find(d.Root, id)
	if n == nil {
		return nil, false
	}
	d.lookups.Add(id, n)
	return n, true
}

// find returns the node with the given id in the subtree of root, root included.
func find(root *Node, id string) *Node {
	if root.ID == id {
		return root
	}
	for i := range root.Children {
		if n := find(&root.Children[i], id); n != nil {
			return n
		}
	}
	return nil
}

func asDocumentRoot(root *Node) *Node {
	switch root.Type {
	case TypeDocument:
		return root
	case TypeCanvas:
		return &Node{ID: "0:0", Name: "Document", Type: TypeDocument, Children: []Node{*root}}
	default:
		page := Node{ID: "0:1", Name: "Page 1", Type: TypeCanvas, Children: []Node{*root}}
		return &Node{ID: "0:0", Name: "Document", Type: TypeDocument, Children: []Node{page}}
	}
}

// nodesPage puts the requested nodes of a nodes response on one page,
// ordered by id.
func nodesPage(nodes map[string]NodeData) *Node {
	ids := make([]string, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	page := &Node{ID: "0:1", Name: "Page 1", Type: TypeCanvas}
	for _, id := range ids {
		// Ids the API could not resolve come back as null.
		if doc := nodes[id].Document; doc.ID != "" {
			page.Children = append(page.Children, doc)
		}
	}
	return page
}
