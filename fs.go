package toolsite

import (
	"embed"
	"io/fs"
	"os"

	"github.com/yalue/merged_fs"
)

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// GetEmbedOrOSFS returns the embedded copy of path, overlaid with the
// same directory on disk when one exists so deployments can override
// individual files.
func GetEmbedOrOSFS(path string, embedded embed.FS) (fs.FS, error) {
	embeddedFs, err := fs.Sub(embedded, path)
	if err != nil {
		return nil, err
	}

	if stat, err := os.Stat(path); err == nil && stat.IsDir() {
		return merged_fs.NewMergedFS(os.DirFS(path), embeddedFs), nil
	}

	return embeddedFs, nil
}

// TemplateFiles returns the gohtml templates packaged with the
// binaries.
func TemplateFiles() (fs.FS, error) {
	return GetEmbedOrOSFS("templates", templatesFS)
}

// StaticFiles returns the packaged static assets (stylesheet etc).
func StaticFiles() (fs.FS, error) {
	return GetEmbedOrOSFS("static", staticFS)
}
