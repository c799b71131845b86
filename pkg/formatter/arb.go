// Package formatter renders extraction snapshots into the export formats
// offered by the panels: Flutter ARB files, Dart constants and markdown
// previews. Every function returns the rendered text; nothing is written to
// disk.
package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/kataras/figma-harvester/pkg/extractor"
)

// ToARB renders the text snapshot as a Flutter Application Resource Bundle.
// "@@locale" comes first, followed by the entries in extraction order, each
// with an "@key" block naming its source frame. When two frames produce the
// same key, the later entry is skipped. Keys are made valid Dart
// identifiers first, so "2faSetupOk" is written as "k2faSetupOk".
func ToARB(frames []extractor.FrameSnapshot, locale string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n")

	if err := writeMember(&buf, "@@locale", locale, true); err != nil {
		return nil, err
	}

	written := make(map[string]bool)
	for _, frame := range frames {
		for _, entry := range frame.TextNodes {
			key := dartIdentifier(entry.Key)
			if written[key] {
				continue
			}
			written[key] = true

			if err := writeMember(&buf, key, entry.Content, false); err != nil {
				return nil, err
			}
			meta := map[string]string{"description": fmt.Sprintf("Text in frame %q", frame.Name)}
			if err := writeMember(&buf, "@"+key, meta, false); err != nil {
				return nil, err
			}
		}
	}

	buf.WriteString("\n}\n")
	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, key string, value any, first bool) error {
	k, err := json.Marshal(key)
	if err != nil {
		return fmt.Errorf("encode arb key %q: %w", key, err)
	}
	v, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode arb value of %q: %w", key, err)
	}

	if !first {
		buf.WriteString(",\n")
	}
	buf.WriteString("  ")
	buf.Write(k)
	buf.WriteString(": ")
	buf.Write(v)
	return nil
}
