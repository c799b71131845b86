package extractor

import (
	"fmt"
	"math"

	"github.com/kataras/figma-harvester/pkg/host"
)

// ExtractColors turns the host's selection paints into distinct hex colors,
// keeping the host order. Only solid paints are considered and the first
// occurrence of a hex value wins.
func ExtractColors(paints []host.Paint) []ColorEntry {
	colors := make([]ColorEntry, 0, len(paints))
	seenColors := make(map[string]struct{})

	for _, paint := range paints {
		if paint.Type != host.PaintSolid {
			continue
		}

		hex := ColorToHex(paint.Color)
		if _, seen := seenColors[hex]; seen {
			continue
		}
		seenColors[hex] = struct{}{}

		colors = append(colors, ColorEntry{Hex: hex, Name: hex})
	}

	return colors
}

// ColorToHex converts a color with 0-1 channels to lower-case #rrggbb.
// Channels outside [0, 1] are clamped.
func ColorToHex(c host.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int {
	n := int(math.Round(v * 255))
	switch {
	case n < 0:
		return 0
	case n > 255:
		return 255
	default:
		return n
	}
}
