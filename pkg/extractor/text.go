package extractor

import (
	"github.com/kataras/figma-harvester/pkg/host"
	"github.com/kataras/figma-harvester/pkg/naming"
)

// ExtractText collects the text of every frame-like container in the
// selection, in selection order. Non-container nodes are ignored.
//
// Each text leaf gets the key <framePrefix><TextSuffix>, both parts
// normalized with maxKeyLength. A content string is emitted once per call:
// later leaves with the same characters, in the same frame or in another
// one, are skipped. Frames without any remaining entry are still returned,
// with an empty TextNodes list.
func ExtractText(selection []host.Node, maxKeyLength int) []FrameSnapshot {
	frames := make([]FrameSnapshot, 0, len(selection))
	seenContent := make(map[string]struct{})

	for _, node := range selection {
		container, ok := asContainer(node)
		if !ok {
			continue
		}

		prefix := naming.Normalize(container.Name(), maxKeyLength)
		frame := FrameSnapshot{
			ID:            container.ID(),
			Name:          container.Name(),
			NameCamelCase: prefix,
			TextNodes:     []TextEntry{},
		}

		for _, leaf := range textLeaves(container) {
			content := leaf.Characters()
			if _, seen := seenContent[content]; seen {
				continue
			}
			seenContent[content] = struct{}{}

			suffix := naming.Capitalize(naming.Normalize(content, maxKeyLength))
			frame.TextNodes = append(frame.TextNodes, TextEntry{
				Key:     prefix + suffix,
				Content: content,
			})
		}

		frames = append(frames, frame)
	}

	return frames
}

// asContainer reports whether node is a frame-like container the
// extractors can descend into.
func asContainer(node host.Node) (host.Container, bool) {
	if !host.IsContainer(node) {
		return nil, false
	}
	container, ok := node.(host.Container)
	return container, ok
}

// textLeaves returns the text leaves beneath container in host order.
func textLeaves(container host.Container) []host.TextLeaf {
	found := container.FindAll(host.IsText)
	leaves := make([]host.TextLeaf, 0, len(found))
	for _, n := range found {
		if leaf, ok := n.(host.TextLeaf); ok {
			leaves = append(leaves, leaf)
		}
	}
	return leaves
}
