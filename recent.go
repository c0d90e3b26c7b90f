package toolsite

import (
	"sort"
	"time"
)

// recentLimit caps both the "recently added" and "recently updated"
// lists on the index page.
const recentLimit = 5

// DatedTool is a tool annotated with the parsed timestamp it was
// selected by.
type DatedTool struct {
	Tool
	Date time.Time
}

// SelectRecent returns up to limit tools ordered by the timestamp
// produced by key, most recent first. Tools with missing or
// unparseable timestamps are dropped, excluded slugs are skipped, and
// ties keep their input order.
func SelectRecent(tools []Tool, key func(Tool) string, limit int, exclude map[string]bool) []DatedTool {
	dated := make([]DatedTool, 0, len(tools))
	for _, tool := range tools {
		t, ok := ParseISO(key(tool))
		if !ok {
			continue
		}
		dated = append(dated, DatedTool{Tool: tool, Date: t})
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].Date.After(dated[j].Date)
	})

	var selected []DatedTool
	for _, entry := range dated {
		if exclude[entry.Slug] {
			continue
		}
		selected = append(selected, entry)
		if len(selected) >= limit {
			break
		}
	}
	return selected
}

// HasDistinctUpdate reports whether a tool's update timestamp is
// meaningfully later than its creation. A tool with no parseable
// update is never distinct; a tool with an update but no parseable
// creation is.
func HasDistinctUpdate(tool Tool) bool {
	updated, ok := ParseISO(tool.Updated)
	if !ok {
		return false
	}
	created, ok := ParseISO(tool.Created)
	if !ok {
		return true
	}
	return updated.After(created)
}
