package toolsite

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mathspp/toolsite/config"
	"github.com/mathspp/toolsite/markdown"
)

const manifestName = "gathered_links.json"

// earliestDate sorts pages without commits after every real commit
// when page order is decided. Raw date strings are compared, so a
// malformed date cannot reorder pages differently from the manifest.
const earliestDate = "0000-00-00T00:00:00"

// ColophonBuilder produces colophon.html from gathered_links.json.
type ColophonBuilder struct {
	dir       string
	site      *config.Site
	docs      *markdown.Renderer
	messages  *markdown.MessageRenderer
	templates *Templates
}

func NewColophonBuilder(dir string, site *config.Site, docs *markdown.Renderer, messages *markdown.MessageRenderer, templates *Templates) *ColophonBuilder {
	return &ColophonBuilder{
		dir:       dir,
		site:      site,
		docs:      docs,
		messages:  messages,
		templates: templates,
	}
}

// Build runs the full colophon pass and writes colophon.html into the
// work directory.
func (b *ColophonBuilder) Build() error {
	manifest, err := b.loadManifest()
	if err != nil {
		return err
	}
	if len(manifest.Pages) == 0 {
		log.Printf("No pages found in %s", manifestName)
		return nil
	}

	pages := make([]*ColophonPage, 0, len(manifest.Pages))
	for _, name := range sortedPageNames(manifest.Pages) {
		page, err := b.buildPage(name, manifest.Pages[name])
		if err != nil {
			return err
		}
		pages = append(pages, page)
	}

	out, err := os.Create(filepath.Join(b.dir, "colophon.html"))
	if err != nil {
		return err
	}
	defer out.Close()

	return b.templates.RenderColophon(out, pages)
}

func (b *ColophonBuilder) loadManifest() (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(b.dir, manifestName))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s not found, run gatherlinks first", manifestName)
	}
	if err != nil {
		return nil, err
	}

	manifest := &Manifest{}
	if err := json.Unmarshal(data, manifest); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", manifestName, err)
	}
	return manifest, nil
}

func (b *ColophonBuilder) buildPage(name string, links PageLinks) (*ColophonPage, error) {
	displayName := strings.TrimSuffix(name, ".html")

	page := &ColophonPage{
		ID:          name,
		DisplayName: displayName,
		ToolURL:     b.site.ToolURL(name),
		CodeURL:     b.site.CodeURL(name),
	}

	if docs := b.renderDocs(displayName); docs != "" {
		page.HasDocs = true
		page.Docs = template.HTML(docs)
	}

	// Commits arrive newest-first; the colophon reads top to bottom.
	commits := links.Commits
	for i := len(commits) - 1; i >= 0; i-- {
		commit := commits[i]

		shortHash := "unknown"
		if commit.Hash != "" {
			shortHash = commit.Hash
			if len(shortHash) > 7 {
				shortHash = shortHash[:7]
			}
		}

		message, err := b.messages.Render(commit.Message)
		if err != nil {
			return nil, fmt.Errorf("unable to render commit message for %s: %w", name, err)
		}

		page.Commits = append(page.Commits, &ColophonCommit{
			ShortHash: shortHash,
			URL:       b.site.CommitURL(commit.Hash),
			Date:      CommitDate(commit.Date),
			Message:   template.HTML(message),
		})
	}
	return page, nil
}

// renderDocs converts the optional per-tool documentation file. A
// missing file is fine; an unreadable one is logged and skipped.
func (b *ColophonBuilder) renderDocs(displayName string) string {
	docsPath := filepath.Join(b.dir, displayName+".docs.md")
	data, err := os.ReadFile(docsPath)
	if os.IsNotExist(err) {
		return ""
	}
	if err != nil {
		log.Printf("Error reading %s: %v\n", docsPath, err)
		return ""
	}

	docs, err := b.docs.Render(data)
	if err != nil {
		log.Printf("Error rendering %s: %v\n", docsPath, err)
		return ""
	}
	return docs
}

// latestCommitDate returns the maximum raw date string across a page's
// commits, or the sentinel for pages with no dated commits.
func latestCommitDate(page PageLinks) string {
	latest := earliestDate
	for _, commit := range page.Commits {
		if commit.Date > latest {
			latest = commit.Date
		}
	}
	return latest
}

// sortedPageNames orders pages by most recent commit, newest first.
// Pages with the same latest date are ordered by name so output is
// deterministic.
func sortedPageNames(pages map[string]PageLinks) []string {
	names := make([]string, 0, len(pages))
	for name := range pages {
		names = append(names, name)
	}
	sort.SliceStable(names, func(i, j int) bool {
		a, b := latestCommitDate(pages[names[i]]), latestCommitDate(pages[names[j]])
		if a != b {
			return a > b
		}
		return names[i] < names[j]
	})
	return names
}
