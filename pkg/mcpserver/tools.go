package mcpserver

import "github.com/mark3labs/mcp-go/mcp"

// Tool names.
const (
	toolExtractText       = "extract_text"
	toolExtractTextStyles = "extract_text_styles"
	toolExtractColors     = "extract_colors"
	toolZoomViaID         = "zoom_via_id"
)

func selectionOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("selection",
			mcp.Description("Comma separated node ids (1:2 or 1-2) or a Figma URL with a node-id. Defaults to every top-level node of the page."),
		),
		mcp.WithString("page",
			mcp.Description("Page id or name. Defaults to the first page."),
		),
	}
}

func extractTextTool() mcp.Tool {
	return mcp.NewTool(toolExtractText, append([]mcp.ToolOption{
		mcp.WithDescription("Collects the text of the selected frames with generated localization keys. Returns the preview-text panel message."),
	}, selectionOptions()...)...)
}

func extractTextStylesTool() mcp.Tool {
	return mcp.NewTool(toolExtractTextStyles, append([]mcp.ToolOption{
		mcp.WithDescription("Collects the distinct typography of the selected text, named by type scale. Returns the preview-text-styles panel message."),
	}, selectionOptions()...)...)
}

func extractColorsTool() mcp.Tool {
	return mcp.NewTool(toolExtractColors, append([]mcp.ToolOption{
		mcp.WithDescription("Collects the distinct solid colors of the selection as hex. Returns the load-colors panel message."),
	}, selectionOptions()...)...)
}

func zoomViaIDTool() mcp.Tool {
	return mcp.NewTool(toolZoomViaID,
		mcp.WithDescription("Scrolls and zooms the viewport to the node with the given id, on any page. Returns the resulting viewport."),
		mcp.WithString("nodeId",
			mcp.Required(),
			mcp.Description("Node id such as 12:34."),
		),
	)
}
