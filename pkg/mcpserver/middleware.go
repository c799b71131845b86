package mcpserver

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// loggingMiddleware reports every tool call to the server's logger. It must
// only be installed when a logger is set.
func (s *Server) loggingMiddleware() server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := time.Now()
			result, err := next(ctx, req)
			elapsed := time.Since(start)

			switch {
			case err != nil:
				s.opts.Logger.Errorf("Tool %s failed after %s: %v", req.Params.Name, elapsed, err)
			case result != nil && result.IsError:
				s.opts.Logger.Warnf("Tool %s returned an error after %s", req.Params.Name, elapsed)
			default:
				s.opts.Logger.Infof("Tool %s completed in %s", req.Params.Name, elapsed)
			}

			return result, err
		}
	}
}
