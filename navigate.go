package figmaharvester

import (
	"context"
	"fmt"

	"github.com/kataras/figma-harvester/pkg/host"
	"github.com/kataras/figma-harvester/pkg/protocol"
)

// NavigateTo frames the node with the given id in the viewport and reports
// whether the viewport moved. A missing node or a failed lookup is shown to
// the user as an error notification; neither is retried.
func (p *Plugin) NavigateTo(ctx context.Context, nodeID string) bool {
	node, err := p.host.NodeByID(ctx, nodeID)
	if err != nil {
		p.opts.logError("Lookup of node %s failed: %v", nodeID, err)
		p.host.Notify(fmt.Sprintf("Error retrieving node with ID %s: %v", nodeID, err), host.NotifyOptions{Error: true})
		return false
	}
	if node == nil {
		p.opts.logWarn("Node %s not found", nodeID)
		p.host.Notify(fmt.Sprintf("Node with ID %s not found.", nodeID), host.NotifyOptions{Error: true})
		return false
	}

	p.opts.logInfo("Zooming to %s (%s)", node.Name(), node.ID())
	p.host.ScrollAndZoomIntoView(node)
	return true
}

// HandleMessage processes a raw message sent by the panel. Only zoom-via-id
// is acted upon; other message types are ignored. The error is non-nil only
// for payloads that cannot be decoded.
func (p *Plugin) HandleMessage(ctx context.Context, raw []byte) error {
	req, err := protocol.DecodeRequest(raw)
	if err != nil {
		return err
	}

	switch req.Type {
	case protocol.ZoomViaID:
		p.NavigateTo(ctx, req.NodeID)
	default:
		p.opts.logWarn("Ignoring panel message %q", req.Type)
	}
	return nil
}
