package toolsite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/cases"

	"github.com/mathspp/toolsite/config"
	"github.com/mathspp/toolsite/markdown"
)

const (
	recentStartMarker = "<!-- recently starts -->"
	recentStopMarker  = "<!-- recently stops -->"
	indexStartMarker  = "<!-- tools index starts -->"
	indexStopMarker   = "<!-- tools index stops -->"
)

// IndexBuilder produces index.html from README.md and tools.json.
type IndexBuilder struct {
	dir       string
	site      *config.Site
	renderer  *markdown.Renderer
	templates *Templates
}

func NewIndexBuilder(dir string, site *config.Site, renderer *markdown.Renderer, templates *Templates) *IndexBuilder {
	return &IndexBuilder{
		dir:       dir,
		site:      site,
		renderer:  renderer,
		templates: templates,
	}
}

// Build runs the full index pass and writes index.html into the work
// directory.
func (b *IndexBuilder) Build() error {
	readme, err := os.ReadFile(filepath.Join(b.dir, "README.md"))
	if err != nil {
		return fmt.Errorf("unable to read README.md: %w", err)
	}

	body, err := b.renderer.Render(readme)
	if err != nil {
		return fmt.Errorf("unable to render README.md: %w", err)
	}

	tools, err := b.loadTools()
	if err != nil {
		return err
	}

	added := SelectRecent(tools, func(t Tool) string { return t.Created }, recentLimit, nil)
	exclude := make(map[string]bool, len(added))
	for _, entry := range added {
		exclude[entry.Slug] = true
	}

	var updatable []Tool
	for _, tool := range tools {
		if HasDistinctUpdate(tool) {
			updatable = append(updatable, tool)
		}
	}
	updated := SelectRecent(updatable, func(t Tool) string { return t.Updated }, recentLimit, exclude)

	recentHTML, err := b.templates.RenderRecent(b.recentEntries(added), b.recentEntries(updated))
	if err != nil {
		return err
	}
	body, err = Splice(body, recentStartMarker, recentStopMarker, recentHTML)
	if err != nil {
		return err
	}

	directoryHTML, err := b.templates.RenderDirectory(directoryEntries(tools))
	if err != nil {
		return err
	}
	body, err = Splice(body, indexStartMarker, indexStopMarker, directoryHTML)
	if err != nil {
		return err
	}

	out, err := os.Create(filepath.Join(b.dir, "index.html"))
	if err != nil {
		return err
	}
	defer out.Close()

	return b.templates.RenderIndex(out, body)
}

// loadTools reads tools.json; a missing manifest is treated as an
// empty tool list.
func (b *IndexBuilder) loadTools() ([]Tool, error) {
	data, err := os.ReadFile(filepath.Join(b.dir, "tools.json"))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var tools []Tool
	if err := json.Unmarshal(data, &tools); err != nil {
		return nil, fmt.Errorf("unable to parse tools.json: %w", err)
	}
	return tools, nil
}

func (b *IndexBuilder) recentEntries(tools []DatedTool) []RecentEntry {
	entries := make([]RecentEntry, 0, len(tools))
	for _, tool := range tools {
		url := tool.URL
		if url == "" {
			url = "#"
		}
		entries = append(entries, RecentEntry{
			Slug:        tool.Slug,
			URL:         url,
			Date:        DisplayDate(tool.Date),
			ColophonURL: b.site.ColophonURL(tool.Filename),
		})
	}
	return entries
}

// directoryEntries lists every tool except the index page itself,
// alphabetically by title, falling back to slug for untitled tools.
// The sort key is the case-folded title or slug before the display
// fallback applies, so a tool with neither sorts on the empty string.
func directoryEntries(tools []Tool) []DirectoryEntry {
	type directoryItem struct {
		entry DirectoryEntry
		key   string
	}

	var items []directoryItem
	for _, tool := range tools {
		if tool.Slug == "index" {
			continue
		}

		name := tool.Title
		if name == "" {
			name = tool.Slug
		}

		title := name
		if title == "" {
			title = "Untitled tool"
		}

		url := tool.URL
		if url == "" {
			url = "/" + tool.Slug
		}

		items = append(items, directoryItem{
			entry: DirectoryEntry{Title: title, URL: url},
			key:   cases.Fold().String(name),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].key < items[j].key
	})

	entries := make([]DirectoryEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, item.entry)
	}
	return entries
}
