package toolsite

import (
	"fmt"
	"strings"
)

// Splice replaces everything strictly between the start and end
// markers with replacement, keeping both markers in place. The end
// marker must appear after the start marker.
func Splice(body, start, end, replacement string) (string, error) {
	startIdx := strings.Index(body, start)
	if startIdx == -1 {
		return "", fmt.Errorf("start marker %q not found", start)
	}
	rest := body[startIdx+len(start):]
	endIdx := strings.Index(rest, end)
	if endIdx == -1 {
		return "", fmt.Errorf("end marker %q not found after %q", end, start)
	}

	var b strings.Builder
	b.WriteString(body[:startIdx+len(start)])
	b.WriteString("\n")
	b.WriteString(replacement)
	b.WriteString("\n")
	b.WriteString(rest[endIdx:])
	return b.String(), nil
}
