package formatter

import (
	"fmt"
	"strings"

	"github.com/kataras/figma-harvester/pkg/extractor"
)

// TextMarkdown renders the text snapshot as one table per frame.
func TextMarkdown(frames []extractor.FrameSnapshot, title string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Localizable Text - %s\n\n", title))

	for _, frame := range frames {
		sb.WriteString(fmt.Sprintf("## %s\n\n", frame.Name))
		sb.WriteString(fmt.Sprintf("Node `%s`, key prefix `%s`.\n\n", frame.ID, frame.NameCamelCase))

		if len(frame.TextNodes) == 0 {
			sb.WriteString("_No new text in this frame._\n\n")
			continue
		}

		sb.WriteString("| Key | Text |\n")
		sb.WriteString("|-----|------|\n")
		for _, entry := range frame.TextNodes {
			sb.WriteString(fmt.Sprintf("| `%s` | %s |\n", entry.Key, escapeCell(entry.Content)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// TextStylesMarkdown renders the text styles as a table followed by CSS
// custom properties.
func TextStylesMarkdown(styles []extractor.TextStyleEntry, title string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Text Styles - %s\n\n", title))

	sb.WriteString("| Name | Family | Size | Weight |\n")
	sb.WriteString("|------|--------|------|--------|\n")
	for _, style := range styles {
		sb.WriteString(fmt.Sprintf("| `%s` | %s | %spx | %.0f |\n", style.FontName, style.FontFamily, style.FontSize, style.FontWeight))
	}
	sb.WriteString("\n")

	sb.WriteString("```css\n")
	for _, style := range styles {
		name := toKebabCase(style.FontName)
		sb.WriteString(fmt.Sprintf("--font-%s-family: '%s';\n", name, style.FontFamily))
		sb.WriteString(fmt.Sprintf("--font-%s-size: %spx;\n", name, style.FontSize))
		sb.WriteString(fmt.Sprintf("--font-%s-weight: %.0f;\n", name, style.FontWeight))
	}
	sb.WriteString("```\n")

	return sb.String()
}

// ColorsMarkdown renders the colors as CSS custom properties.
func ColorsMarkdown(colors []extractor.ColorEntry, title string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Colors - %s\n\n", title))
	sb.WriteString("```css\n")
	for _, color := range colors {
		sb.WriteString(fmt.Sprintf("--color-%s: %s;\n", toKebabCase(color.Name), color.Hex))
	}
	sb.WriteString("```\n")

	return sb.String()
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", "<br>")
}

// toKebabCase converts a name to kebab-case for CSS variable names.
// Camel humps and separators become single hyphens, everything else but
// letters and digits is dropped.
func toKebabCase(s string) string {
	var result strings.Builder
	hyphen := func() {
		if out := result.String(); out != "" && !strings.HasSuffix(out, "-") {
			result.WriteByte('-')
		}
	}

	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			hyphen()
			result.WriteRune(r + ('a' - 'A'))
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			result.WriteRune(r)
		case r == ' ' || r == '_' || r == '-':
			hyphen()
		}
	}

	return strings.TrimSuffix(result.String(), "-")
}
