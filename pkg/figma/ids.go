package figma

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidNodeID is returned for identifiers that are not Figma node ids.
var ErrInvalidNodeID = errors.New("invalid node id")

var (
	// 12:34, or I12:34;56:78 for nodes inside instances.
	nodeIDPattern = regexp.MustCompile(`^I?\d+:\d+(;\d+:\d+)*$`)

	queryNodeIDPattern = regexp.MustCompile(`[?&]node-id=([^&#]*)`)
	hashNodeIDPattern  = regexp.MustCompile(`#([0-9:,\- ]+)$`)
	pathNodeIDPattern  = regexp.MustCompile(`/nodes/([^?#]+)`)
)

// NormalizeNodeID trims id, converts the URL form 12-34 to 12:34 and checks
// that the result is a node id.
func NormalizeNodeID(id string) (string, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(id), "-", ":")
	if !nodeIDPattern.MatchString(normalized) {
		return "", fmt.Errorf("%w: %q", ErrInvalidNodeID, id)
	}
	return normalized, nil
}

// ParseNodeIDs parses a comma-separated list of node ids, or a Figma URL
// carrying them, and returns them normalized, without duplicates, in input
// order.
func ParseNodeIDs(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "figma.com/") {
		return ExtractNodeIDs(s)
	}
	return normalizeList(s)
}

// ExtractNodeIDs extracts node ids from a Figma URL. Supported forms:
//
//	https://www.figma.com/design/KEY/Name?node-id=12-34
//	https://www.figma.com/file/KEY/Name#12:34,56:78
//	https://www.figma.com/file/KEY/Name/nodes/12:34
//
// A URL without node ids yields an empty slice.
func ExtractNodeIDs(figmaURL string) ([]string, error) {
	for _, re := range []*regexp.Regexp{queryNodeIDPattern, hashNodeIDPattern, pathNodeIDPattern} {
		if m := re.FindStringSubmatch(figmaURL); m != nil {
			return normalizeList(m[1])
		}
	}
	return []string{}, nil
}

func normalizeList(list string) ([]string, error) {
	ids := make([]string, 0)
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		id, err := NormalizeNodeID(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return deduplicateNodeIDs(ids), nil
}

// deduplicateNodeIDs drops repeated ids and keeps the first occurrence order.
func deduplicateNodeIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	return result
}
