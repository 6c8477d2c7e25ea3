package utils

import "strings"

// FileNameFromPath returns the last segment of an absolute path, used as
// the default file name when an attach request supplies only a path.
// Both separator styles are handled since paths are stored verbatim.
func FileNameFromPath(absolutePath string) string {
	trimmed := strings.TrimRight(absolutePath, "/\\")
	if idx := strings.LastIndexAny(trimmed, "/\\"); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}
