package toolsite

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/mathspp/toolsite/config"
)

// Templates renders the site's gohtml templates, both full pages and
// the fragments spliced into the README body.
type Templates struct {
	fs   fs.FS
	site *config.Site
}

func NewTemplates(templateFs fs.FS, site *config.Site) *Templates {
	return &Templates{fs: templateFs, site: site}
}

type IndexArgs struct {
	Site *config.Site
	Body template.HTML
}

// RenderIndex wraps the spliced README body in the index page shell.
func (t *Templates) RenderIndex(w io.Writer, body string) error {
	return t.render(w, "index.gohtml", &IndexArgs{
		Site: t.site,
		Body: template.HTML(body),
	})
}

type RecentEntry struct {
	Slug        string
	URL         string
	Date        string
	ColophonURL string
}

type RecentArgs struct {
	Added   []RecentEntry
	Updated []RecentEntry
}

// RenderRecent produces the "recently added/updated" fragment.
func (t *Templates) RenderRecent(added, updated []RecentEntry) (string, error) {
	return t.renderFragment("recent.gohtml", &RecentArgs{Added: added, Updated: updated})
}

type DirectoryEntry struct {
	Title string
	URL   string
}

type DirectoryArgs struct {
	Tools []DirectoryEntry
}

// RenderDirectory produces the alphabetical tool index fragment.
func (t *Templates) RenderDirectory(entries []DirectoryEntry) (string, error) {
	return t.renderFragment("directory.gohtml", &DirectoryArgs{Tools: entries})
}

type ColophonArgs struct {
	Site      *config.Site
	ToolCount int
	Pages     []*ColophonPage
}

type ColophonPage struct {
	ID          string
	DisplayName string
	ToolURL     string
	CodeURL     string
	HasDocs     bool
	Docs        template.HTML
	Commits     []*ColophonCommit
}

type ColophonCommit struct {
	ShortHash string
	URL       string
	Date      string
	Message   template.HTML
}

func (t *Templates) RenderColophon(w io.Writer, pages []*ColophonPage) error {
	return t.render(w, "colophon.gohtml", &ColophonArgs{
		Site:      t.site,
		ToolCount: len(pages),
		Pages:     pages,
	})
}

func (t *Templates) render(w io.Writer, name string, data interface{}) error {
	tpl := template.New(name)
	tpl.Funcs(template.FuncMap{
		"plural": plural,
	})
	tpl, err := tpl.ParseFS(t.fs, name, "partials/*.gohtml")
	if err != nil {
		return fmt.Errorf("unable to parse template %s: %w", name, err)
	}
	return tpl.Execute(w, data)
}

func (t *Templates) renderFragment(name string, data interface{}) (string, error) {
	b := &bytes.Buffer{}
	if err := t.render(b, name, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func plural(count int, one, many string) string {
	if count > 1 {
		return many
	}
	return one
}
