package figmaharvester

import (
	"github.com/kataras/figma-harvester/pkg/config"
	"github.com/kataras/figma-harvester/pkg/figma"
)

// OpenDocument loads a Figma JSON export with a node lookup cache sized by
// cfg. A nil cfg means config.Default().
func OpenDocument(path string, cfg *config.Config) (*figma.Document, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	return figma.LoadDocumentFile(path, cfg.LookupCacheSize)
}

// OpenCanvas opens the page of doc identified by page (id or name, empty for
// the first one) with the container types and viewport of cfg. The callbacks
// of opts are kept.
func OpenCanvas(doc *figma.Document, page string, cfg *config.Config, opts figma.CanvasOptions) (*figma.Canvas, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	opts.ContainerTypes = cfg.ContainerTypes
	opts.ViewportWidth = cfg.Viewport.Width
	opts.ViewportHeight = cfg.Viewport.Height
	return figma.NewCanvas(doc, page, opts)
}
