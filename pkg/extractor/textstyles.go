package extractor

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/kataras/figma-harvester/pkg/host"
)

// ExtractTextStyles collects the distinct text styles used beneath the
// frame-like containers of the selection.
//
// An entry is dropped when an earlier one has the same font name, family,
// size and weight. Once the pass is over, every font name carried by more
// than one entry gets the rounded font size appended. Two sizes that round
// to the same integer still share a name afterwards.
func ExtractTextStyles(selection []host.Node) []TextStyleEntry {
	styles := []TextStyleEntry{}

	for _, node := range selection {
		container, ok := asContainer(node)
		if !ok {
			continue
		}

		for _, leaf := range textLeaves(container) {
			candidate := TextStyleEntry{
				FontName:   ClassifyFontSize(leaf.FontSize()) + leaf.FontStyle(),
				FontFamily: strings.ToLower(leaf.FontFamily()),
				FontSize:   formatFontSize(leaf.FontSize()),
				FontWeight: leaf.FontWeight(),
			}
			if !containsStyle(styles, candidate) {
				styles = append(styles, candidate)
			}
		}
	}

	nameCounts := make(map[string]int, len(styles))
	for _, style := range styles {
		nameCounts[style.FontName]++
	}

	for i := range styles {
		if nameCounts[styles[i].FontName] > 1 {
			styles[i].FontName += strconv.Itoa(roundFontSize(styles[i].FontSize))
		}
	}

	return styles
}

func containsStyle(styles []TextStyleEntry, candidate TextStyleEntry) bool {
	for _, style := range styles {
		if style == candidate {
			return true
		}
	}
	return false
}

// formatFontSize prints size with two decimals. Ties on the exact binary
// value round away from zero, so 16.125 gives "16.13" where
// strconv.FormatFloat would give "16.12".
func formatFontSize(size float64) string {
	r := new(big.Rat)
	if math.IsNaN(size) || math.IsInf(size, 0) || r.SetFloat64(size) == nil {
		return strconv.FormatFloat(size, 'f', 2, 64)
	}

	sign := ""
	if r.Sign() < 0 {
		sign = "-"
		r.Neg(r)
	}
	r.Mul(r, big.NewRat(100, 1))
	r.Add(r, big.NewRat(1, 2))
	hundredths := new(big.Int).Quo(r.Num(), r.Denom()).String()

	for len(hundredths) < 3 {
		hundredths = "0" + hundredths
	}
	cut := len(hundredths) - 2
	return sign + hundredths[:cut] + "." + hundredths[cut:]
}

// roundFontSize rounds a formatted size half up.
func roundFontSize(size string) int {
	f, err := strconv.ParseFloat(size, 64)
	if err != nil {
		return 0
	}
	return int(math.Floor(f + 0.5))
}
