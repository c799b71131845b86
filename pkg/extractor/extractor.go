// Package extractor walks a host selection and produces the snapshots sent
// to the companion panel: localizable text grouped by frame, text styles
// classified on a type scale, and solid colors.
//
// Every extraction is a single pass over the selection. Deduplication state
// is created per call, so two calls never influence each other.
package extractor

// DefaultMaxKeyLength is the length limit applied to frame prefixes and text
// suffixes when building localization keys.
const DefaultMaxKeyLength = 20

// TextEntry is one localizable string.
type TextEntry struct {
	// Key is the frame prefix followed by the capitalized normalized text.
	Key string `json:"key"`
	// Content is the verbatim text of the layer.
	Content string `json:"content"`
}

// FrameSnapshot groups the text entries found beneath one selected frame.
type FrameSnapshot struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	NameCamelCase string      `json:"nameCamelCase"`
	TextNodes     []TextEntry `json:"textNodes"`
}

// TextStyleEntry describes one distinct text style of the selection.
type TextStyleEntry struct {
	// FontName is the type-scale bucket followed by the font style, e.g.
	// "labelMediumBold", with the rounded font size appended when the same
	// name is shared by several entries.
	FontName string `json:"fontName"`
	// FontFamily is lower-cased.
	FontFamily string `json:"fontFamily"`
	// FontSize is formatted with two decimals.
	FontSize   string  `json:"fontSize"`
	FontWeight float64 `json:"fontWeight"`
}

// ColorEntry is one distinct solid color of the selection.
type ColorEntry struct {
	Hex  string `json:"hex"`
	Name string `json:"name"`
}
