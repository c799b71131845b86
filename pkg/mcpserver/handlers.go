package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	figmaharvester "github.com/kataras/figma-harvester"
	"github.com/kataras/figma-harvester/pkg/figma"
)

// zoomResult is returned by zoom_via_id.
type zoomResult struct {
	NodeID   string         `json:"nodeId"`
	Viewport figma.Viewport `json:"viewport"`
}

func (s *Server) handleExtractText(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.runCommand(ctx, req, figmaharvester.ExtractText)
}

func (s *Server) handleExtractTextStyles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.runCommand(ctx, req, figmaharvester.ExtractTextStyles)
}

func (s *Server) handleExtractColors(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.runCommand(ctx, req, figmaharvester.ExtractColors)
}

// runCommand runs cmd on a fresh canvas. The panel message is returned as
// JSON; an empty extraction returns the notification shown to the user.
func (s *Server) runCommand(ctx context.Context, req mcp.CallToolRequest, cmd figmaharvester.Command) (*mcp.CallToolResult, error) {
	canvas, err := s.openCanvas(req.GetString("page", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if selection := req.GetString("selection", ""); selection != "" {
		ids, err := figma.ParseNodeIDs(selection)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := canvas.Select(ids...); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	result, err := s.plugin(canvas).Run(ctx, cmd)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if result.State == figmaharvester.StateClosed {
		return mcp.NewToolResultText(result.Notice), nil
	}

	return jsonResult(result.Message)
}

func (s *Server) handleZoomViaID(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	nodeID, err := req.RequireString("nodeId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	canvas, err := s.openCanvas("")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if !s.plugin(canvas).NavigateTo(ctx, nodeID) {
		notes := canvas.Notifications()
		if len(notes) == 0 {
			return mcp.NewToolResultError(fmt.Sprintf("node %s could not be shown", nodeID)), nil
		}
		return mcp.NewToolResultError(notes[len(notes)-1].Message), nil
	}

	return jsonResult(zoomResult{NodeID: nodeID, Viewport: canvas.Viewport()})
}

func (s *Server) openCanvas(page string) (*figma.Canvas, error) {
	return figmaharvester.OpenCanvas(s.doc, page, s.opts.Config, figma.CanvasOptions{})
}

func (s *Server) plugin(canvas *figma.Canvas) *figmaharvester.Plugin {
	return figmaharvester.New(canvas, figmaharvester.Options{
		Config: s.opts.Config,
		Logger: s.opts.Logger,
	})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode tool result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
