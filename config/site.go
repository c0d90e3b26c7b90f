package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const siteFileName = "site.json"

// Site identifies the deployed site: its name, canonical URLs, and
// where the source repository lives.
type Site struct {
	Name       string `json:"name"`
	BaseURL    string `json:"base_url"`
	RepoURL    string `json:"repo_url"`
	RepoBranch string `json:"repo_branch"`
	Author     string `json:"author"`
	AuthorURL  string `json:"author_url"`
}

// LoadSite reads site.json from the work directory, filling in
// defaults for any missing values. A missing file yields the default
// site.
func LoadSite(dir string) (*Site, error) {
	s := &Site{}

	data, err := os.ReadFile(filepath.Join(dir, siteFileName))
	if err == nil {
		if err := json.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("unable to parse %s: %w", siteFileName, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if s.Name == "" {
		s.Name = "tools.mathspp.com"
	}
	if s.BaseURL == "" {
		s.BaseURL = "https://tools.mathspp.com"
	}
	if s.RepoURL == "" {
		s.RepoURL = "https://github.com/mathspp/tools"
	}
	if s.RepoBranch == "" {
		s.RepoBranch = "main"
	}
	if s.Author == "" {
		s.Author = "Rodrigo Girão Serrão"
	}
	if s.AuthorURL == "" {
		s.AuthorURL = "https://mathspp.com/"
	}
	return s, nil
}

// ToolURL returns the canonical URL for a page name such as
// "counter.html".
func (s *Site) ToolURL(pageName string) string {
	return fmt.Sprintf("%s/%s", s.BaseURL, strings.TrimSuffix(pageName, ".html"))
}

// CodeURL returns the repository URL for a page's source.
func (s *Site) CodeURL(pageName string) string {
	return fmt.Sprintf("%s/blob/%s/%s", s.RepoURL, s.RepoBranch, pageName)
}

// CommitURL returns the repository URL for a commit.
func (s *Site) CommitURL(hash string) string {
	return fmt.Sprintf("%s/commit/%s", s.RepoURL, hash)
}

// ColophonURL returns the anchor on the colophon page for a tool's
// history, or "#" when the tool has no filename.
func (s *Site) ColophonURL(filename string) string {
	if filename == "" {
		return "#"
	}
	return fmt.Sprintf("%s/colophon#%s", s.BaseURL, filename)
}
