// Package mcpserver exposes the plugin commands as MCP tools so an agent can
// drive the panels over stdio.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	figmaharvester "github.com/kataras/figma-harvester"
	"github.com/kataras/figma-harvester/pkg/config"
	"github.com/kataras/figma-harvester/pkg/figma"
)

const serverName = "figma-harvester"

// Options configures a Server.
type Options struct {
	// Config defaults to config.Default().
	Config *config.Config
	// Version is reported to clients during initialization.
	Version string
	Logger  figmaharvester.Logger // nil = no logging
}

// Server serves the extraction and navigation tools over one loaded
// document. The document is shared by all calls; every call opens its own
// canvas on it.
type Server struct {
	mcpServer *server.MCPServer
	doc       *figma.Document
	opts      Options
}

// NewServer creates a new MCP server backed by doc.
func NewServer(doc *figma.Document, opts Options) *Server {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	s := &Server{doc: doc, opts: opts}

	serverOpts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if opts.Logger != nil {
		serverOpts = append(serverOpts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}

	s.mcpServer = server.NewMCPServer(serverName, opts.Version, serverOpts...)
	s.mcpServer.AddTools(
		server.ServerTool{Tool: extractTextTool(), Handler: s.handleExtractText},
		server.ServerTool{Tool: extractTextStylesTool(), Handler: s.handleExtractTextStyles},
		server.ServerTool{Tool: extractColorsTool(), Handler: s.handleExtractColors},
		server.ServerTool{Tool: zoomViaIDTool(), Handler: s.handleZoomViaID},
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
