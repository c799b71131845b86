package extractor

// UnknownScale is returned for sizes below the smallest threshold.
const UnknownScale = "unknown"

// ScaleStep maps a minimum font size to a type-scale name.
type ScaleStep struct {
	MinFontSize float64
	Name        string
}

// TypeScale is the Material Design 3 type scale, strictly descending.
var TypeScale = []ScaleStep{
	{96, "displayLarge"},
	{84, "displayMedium"},
	{72, "displaySmall"},
	{60, "headlineLarge"},
	{48, "headlineMedium"},
	{40, "headlineSmall"},
	{32, "titleLarge"},
	{28, "titleMedium"},
	{24, "titleSmall"},
	{20, "labelLarge"},
	{16, "labelMedium"},
	{14, "labelSmall"},
	{12, "bodyLarge"},
	{10, "bodyMedium"},
	{8, "bodySmall"},
}

// ClassifyFontSize returns the name of the first TypeScale step whose
// threshold fontSize meets, or UnknownScale.
func ClassifyFontSize(fontSize float64) string {
	for _, step := range TypeScale {
		if fontSize >= step.MinFontSize {
			return step.Name
		}
	}
	return UnknownScale
}
