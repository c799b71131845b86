package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/kataras/figma-harvester/pkg/extractor"
)

// TextStylesDart renders the text styles as Flutter TextStyle constants.
func TextStylesDart(styles []extractor.TextStyleEntry, className string) string {
	var sb strings.Builder

	sb.WriteString("import 'package:flutter/material.dart';\n\n")
	sb.WriteString(fmt.Sprintf("abstract final class %s {\n", className))
	names := make(map[string]bool, len(styles))
	for _, style := range styles {
		sb.WriteString(fmt.Sprintf("  static const TextStyle %s = TextStyle(\n", uniqueIdentifier(names, style.FontName)))
		sb.WriteString(fmt.Sprintf("    fontFamily: '%s',\n", dartString(style.FontFamily)))
		sb.WriteString(fmt.Sprintf("    fontSize: %s,\n", style.FontSize))
		sb.WriteString(fmt.Sprintf("    fontWeight: FontWeight.w%d,\n", dartWeight(style.FontWeight)))
		sb.WriteString("  );\n")
	}
	sb.WriteString("}\n")

	return sb.String()
}

// ColorsDart renders the colors as Flutter Color constants.
func ColorsDart(colors []extractor.ColorEntry, className string) string {
	var sb strings.Builder

	sb.WriteString("import 'package:flutter/material.dart';\n\n")
	sb.WriteString(fmt.Sprintf("abstract final class %s {\n", className))
	names := make(map[string]bool, len(colors))
	for _, color := range colors {
		hex := strings.TrimPrefix(color.Hex, "#")
		sb.WriteString(fmt.Sprintf("  static const Color %s = Color(0xFF%s);\n", uniqueIdentifier(names, "color "+color.Name), strings.ToUpper(hex)))
	}
	sb.WriteString("}\n")

	return sb.String()
}

// uniqueIdentifier returns the Dart identifier of name, suffixed with _2, _3
// and so on when an earlier member already took it.
func uniqueIdentifier(taken map[string]bool, name string) string {
	base := dartIdentifier(name)
	id := base
	for n := 2; taken[id]; n++ {
		id = fmt.Sprintf("%s_%d", base, n)
	}
	taken[id] = true
	return id
}

// dartString escapes s for a single-quoted Dart string literal.
func dartString(s string) string {
	return dartEscaper.Replace(s)
}

var dartEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, `$`, `\$`, "\n", `\n`, "\r", `\r`)

// dartWeight snaps a numeric weight to the FontWeight constants w100..w900.
func dartWeight(weight float64) int {
	w := int(math.Round(weight/100)) * 100
	return max(100, min(900, w))
}

// dartIdentifier keeps letters, digits and underscores and makes sure the
// result starts with a lower-case letter.
func dartIdentifier(name string) string {
	var sb strings.Builder
	upperNext := false
	for _, r := range name {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_':
			if upperNext && r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			sb.WriteRune(r)
			upperNext = false
		default:
			upperNext = sb.Len() > 0
		}
	}

	id := sb.String()
	if id == "" {
		return "unnamed"
	}
	if id[0] >= '0' && id[0] <= '9' {
		return "k" + id
	}
	return strings.ToLower(id[:1]) + id[1:]
}
