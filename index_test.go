package toolsite

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mathspp/toolsite/config"
	"github.com/mathspp/toolsite/markdown"
)

const testReadme = `# tools.mathspp.com

A collection of single-page tools.

<!-- recently starts -->
<!-- recently stops -->

## All tools

<!-- tools index starts -->
<!-- tools index stops -->
`

func newTestIndexBuilder(t *testing.T, dir string) *IndexBuilder {
	t.Helper()

	site, err := config.LoadSite(dir)
	if err != nil {
		t.Fatalf("LoadSite() error = %v", err)
	}

	templateFiles, err := TemplateFiles()
	if err != nil {
		t.Fatalf("TemplateFiles() error = %v", err)
	}

	return NewIndexBuilder(dir, site, markdown.NewRenderer("monokai"), NewTemplates(templateFiles, site))
}

func writeTools(t *testing.T, dir string, tools []Tool) {
	t.Helper()

	data, err := json.Marshal(tools)
	if err != nil {
		t.Fatalf("marshal tools: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "tools.json"), data, 0644); err != nil {
		t.Fatalf("write tools.json: %v", err)
	}
}

func Test_IndexBuilder_Build(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte(testReadme), 0644); err != nil {
		t.Fatalf("write README.md: %v", err)
	}

	tools := []Tool{
		{Slug: "index", Title: "ZHome", URL: "/", Created: "2024-01-01T00:00:00Z"},
		{Slug: "t1", Title: "Counter", URL: "/t1", Filename: "t1.html", Created: "2024-06-01T00:00:00Z", Updated: "2024-09-01T00:00:00Z"},
		{Slug: "t2", Title: "beta reader", URL: "/t2", Filename: "t2.html", Created: "2024-06-02T00:00:00Z"},
		{Slug: "t3", Title: "Alpha sorter", URL: "/t3", Filename: "t3.html", Created: "2024-06-03T00:00:00Z"},
		{Slug: "t4", Title: "Timer", URL: "/t4", Filename: "t4.html", Created: "2024-06-04T00:00:00Z"},
		{Slug: "t5", Title: "Notes", URL: "/t5", Filename: "t5.html", Created: "2024-06-05T00:00:00Z", Updated: "2024-10-01T00:00:00Z"},
		{Slug: "t6", Title: "Sketch", URL: "/t6", Filename: "t6.html", Created: "2024-06-06T00:00:00Z"},
		{Slug: "t7", Title: "Planner", URL: "/t7", Filename: "t7.html", Created: "2024-06-07T00:00:00Z"},
		{Slug: "baddate", Title: "Broken", URL: "/baddate", Created: "not-a-date"},
	}
	writeTools(t, dir, tools)

	if err := newTestIndexBuilder(t, dir).Build(); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("read index.html: %v", err)
	}
	html := string(data)

	for _, marker := range []string{recentStartMarker, recentStopMarker, indexStartMarker, indexStopMarker} {
		if !strings.Contains(html, marker) {
			t.Errorf("output lost marker %q", marker)
		}
	}

	// Most recently added first: t7 created last.
	if strings.Index(html, ">t7<") == -1 || strings.Index(html, ">t7<") > strings.Index(html, ">t6<") {
		t.Errorf("recently added section not ordered, t7 should precede t6")
	}

	// t5 was recently added and must not also appear as recently updated.
	if n := strings.Count(html, ">t5<"); n != 1 {
		t.Errorf("t5 appears %d times, want 1 (added only)", n)
	}

	// t1 fell out of the added top five but has a distinct update.
	updatedSection := html[strings.Index(html, "Recently updated"):]
	if !strings.Contains(updatedSection, ">t1<") {
		t.Errorf("recently updated section missing t1")
	}

	// Dates link to the colophon anchor for the tool's page.
	if !strings.Contains(html, "/colophon#t7.html") {
		t.Errorf("recent entry missing colophon link for t7")
	}
	if !strings.Contains(html, "7th June 2024") {
		t.Errorf("recently added entry missing display date for t7")
	}
	if !strings.Contains(html, "1st September 2024") {
		t.Errorf("recently updated entry missing display date for t1's update")
	}

	// Tool directory is alphabetical, case-insensitive, without the
	// index page itself.
	directorySection := html[strings.Index(html, "Tool Index"):]
	if strings.Contains(directorySection, ">ZHome<") {
		t.Errorf("tool directory should not list the index page")
	}
	alpha := strings.Index(directorySection, ">Alpha sorter<")
	beta := strings.Index(directorySection, ">beta reader<")
	counter := strings.Index(directorySection, ">Counter<")
	if alpha == -1 || beta == -1 || counter == -1 {
		t.Fatalf("tool directory missing entries: alpha=%d beta=%d counter=%d", alpha, beta, counter)
	}
	if !(alpha < beta && beta < counter) {
		t.Errorf("tool directory not sorted case-insensitively: alpha=%d beta=%d counter=%d", alpha, beta, counter)
	}
}

func Test_IndexBuilder_Build_missingReadme(t *testing.T) {
	dir := t.TempDir()

	err := newTestIndexBuilder(t, dir).Build()
	if err == nil {
		t.Fatal("Build() expected error for missing README.md")
	}
	if !strings.Contains(err.Error(), "README.md") {
		t.Errorf("Build() error = %v, want mention of README.md", err)
	}
}

func Test_IndexBuilder_Build_missingToolsManifest(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte(testReadme), 0644); err != nil {
		t.Fatalf("write README.md: %v", err)
	}

	if err := newTestIndexBuilder(t, dir).Build(); err != nil {
		t.Fatalf("Build() error = %v, missing tools.json should not be fatal", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("read index.html: %v", err)
	}
	if !strings.Contains(string(data), "No entries available.") {
		t.Errorf("empty recent lists should show placeholder entries")
	}
	if !strings.Contains(string(data), "No tools available.") {
		t.Errorf("empty directory should show placeholder entry")
	}
}

func Test_IndexBuilder_Build_missingMarkers(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# No markers here\n"), 0644); err != nil {
		t.Fatalf("write README.md: %v", err)
	}

	if err := newTestIndexBuilder(t, dir).Build(); err == nil {
		t.Fatal("Build() expected error for missing splice markers")
	}
}

func Test_directoryEntries(t *testing.T) {
	tools := []Tool{
		{Slug: "index", Title: "Home"},
		{Slug: "zeta", Title: "Zeta viewer"},
		{Slug: "anagrams", Title: ""},
		{Slug: "", Title: ""},
		{Slug: "builder", Title: "BUILDER"},
	}

	entries := directoryEntries(tools)

	// Sorted on the case-folded title-or-slug before the display
	// fallback, so the nameless tool sorts first on the empty string.
	want := []string{"Untitled tool", "anagrams", "BUILDER", "Zeta viewer"}
	if len(entries) != len(want) {
		t.Fatalf("directoryEntries() len = %d, want %d: %v", len(entries), len(want), entries)
	}
	for i := range want {
		if entries[i].Title != want[i] {
			t.Errorf("directoryEntries()[%d].Title = %s, want %s", i, entries[i].Title, want[i])
		}
	}
}
