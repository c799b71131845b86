package main

import (
	"encoding/json"
	"fmt"

	"github.com/kataras/figma-harvester/pkg/extractor"
	"github.com/kataras/figma-harvester/pkg/formatter"
	"github.com/kataras/figma-harvester/pkg/protocol"
)

// Output formats of the run command.
const (
	formatJSON     = "json"
	formatMarkdown = "markdown"
	formatARB      = "arb"
	formatDart     = "dart"
)

func validFormat(f string) bool {
	switch f {
	case formatJSON, formatMarkdown, formatARB, formatDart:
		return true
	default:
		return false
	}
}

// render converts the panel message into the requested output format.
// title names the document in markdown headings and locale is written to ARB
// files.
func render(f string, msg *protocol.Message, title, locale string) ([]byte, error) {
	if f == formatJSON {
		data, err := json.MarshalIndent(msg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", msg.Type, err)
		}
		return append(data, '\n'), nil
	}

	switch data := msg.Data.(type) {
	case []extractor.FrameSnapshot:
		switch f {
		case formatMarkdown:
			return []byte(formatter.TextMarkdown(data, title)), nil
		case formatARB:
			return formatter.ToARB(data, locale)
		}
	case []extractor.TextStyleEntry:
		switch f {
		case formatMarkdown:
			return []byte(formatter.TextStylesMarkdown(data, title)), nil
		case formatDart:
			return []byte(formatter.TextStylesDart(data, "AppTextStyles")), nil
		}
	case []extractor.ColorEntry:
		switch f {
		case formatMarkdown:
			return []byte(formatter.ColorsMarkdown(data, title)), nil
		case formatDart:
			return []byte(formatter.ColorsDart(data, "AppColors")), nil
		}
	}

	return nil, fmt.Errorf("format %q is not available for %s", f, msg.Type)
}
