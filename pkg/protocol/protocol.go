// Package protocol defines the messages exchanged between the plugin and its
// companion panel. Messages are one-way; nothing correlates a request with a
// later notification.
package protocol

import (
	"encoding/json"
	"fmt"
)

// MessageType tags an outbound panel message.
type MessageType string

// Outbound message types.
const (
	PreviewText       MessageType = "preview-text"
	PreviewTextStyles MessageType = "preview-text-styles"
	LoadColors        MessageType = "load-colors"
)

// Message is posted to the panel once per command run.
type Message struct {
	Type MessageType `json:"type"`
	Data any         `json:"data"`
}

// RequestType tags an inbound panel message.
type RequestType string

// ZoomViaID asks the plugin to frame a node in the viewport.
const ZoomViaID RequestType = "zoom-via-id"

// Request is a message sent by the panel.
type Request struct {
	Type   RequestType `json:"type"`
	NodeID string      `json:"nodeId,omitempty"`
}

// DecodeRequest parses an inbound panel message. Unknown types are returned
// as is; it is up to the caller to ignore them.
func DecodeRequest(data []byte) (Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return Request{}, fmt.Errorf("decode panel message: %w", err)
	}
	return req, nil
}
