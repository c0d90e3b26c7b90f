package toolsite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Gatherer walks the git history of every tool page and produces the
// manifest consumed by the colophon build.
type Gatherer struct {
	dir  string
	repo *git.Repository
}

func NewGatherer(dir string) (*Gatherer, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to open git repository in %s: %w", dir, err)
	}
	return &Gatherer{dir: dir, repo: repo}, nil
}

// Gather collects the commit history of every page, newest commit
// first. Pages not committed yet appear with empty histories.
func (g *Gatherer) Gather() (*Manifest, error) {
	pages, err := g.listPages()
	if err != nil {
		return nil, err
	}

	manifest := &Manifest{Pages: make(map[string]PageLinks, len(pages))}
	for _, page := range pages {
		commits, err := g.pageCommits(page)
		if err != nil {
			return nil, fmt.Errorf("unable to read history for %s: %w", page, err)
		}
		manifest.Pages[page] = PageLinks{Commits: commits}
	}
	return manifest, nil
}

// Write stores the manifest as gathered_links.json in the work
// directory.
func (g *Gatherer) Write(manifest *Manifest) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(g.dir, manifestName), append(data, '\n'), 0644)
}

// listPages finds the tool pages: top-level .html files, excluding the
// generated index and colophon outputs.
func (g *Gatherer) listPages() ([]string, error) {
	entries, err := os.ReadDir(g.dir)
	if err != nil {
		return nil, err
	}

	var pages []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != ".html" {
			continue
		}
		if name == "index.html" || name == "colophon.html" {
			continue
		}
		pages = append(pages, name)
	}
	sort.Strings(pages)
	return pages, nil
}

func (g *Gatherer) pageCommits(page string) ([]Commit, error) {
	head, err := g.repo.Head()
	if err != nil {
		// A freshly initialised repository has no commits yet.
		return nil, nil
	}

	commitIter, err := g.repo.Log(&git.LogOptions{
		From: head.Hash(),
		PathFilter: func(s string) bool {
			return s == page
		},
	})
	if err != nil {
		return nil, err
	}
	defer commitIter.Close()

	var commits []Commit
	err = commitIter.ForEach(func(commit *object.Commit) error {
		commits = append(commits, Commit{
			Hash:    commit.Hash.String(),
			Date:    commit.Author.When.Format(time.RFC3339),
			Message: strings.TrimSpace(commit.Message),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return commits, nil
}
