package toolsite

// Tool is a single entry of tools.json, the manifest describing every
// tool page on the site.
type Tool struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Created  string `json:"created"`
	Updated  string `json:"updated"`
}

// Commit is one entry of a page's development history in
// gathered_links.json.
type Commit struct {
	Hash    string `json:"hash"`
	Date    string `json:"date"`
	Message string `json:"message"`
}

type PageLinks struct {
	Commits []Commit `json:"commits"`
}

// Manifest is the top-level shape of gathered_links.json. Commits are
// stored newest-first, as the gatherer writes them.
type Manifest struct {
	Pages map[string]PageLinks `json:"pages"`
}
