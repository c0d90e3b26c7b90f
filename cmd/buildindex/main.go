package main

import (
	"flag"
	"log"

	"github.com/kouhin/envflag"

	"github.com/mathspp/toolsite"
	"github.com/mathspp/toolsite/config"
	"github.com/mathspp/toolsite/markdown"
)

var (
	workDir   = flag.String("workdir", ".", "Directory containing README.md and tools.json")
	codeStyle = flag.String("codestyle", "monokai", "Chroma style for fenced code blocks")
)

func main() {
	if err := envflag.Parse(); err != nil {
		log.Fatalf("Unable to parse flags: %s", err.Error())
	}

	site, err := config.LoadSite(*workDir)
	if err != nil {
		log.Fatalf("Unable to load site config: %s", err.Error())
	}

	templateFiles, err := toolsite.TemplateFiles()
	if err != nil {
		log.Fatalf("Unable to get templates folder: %s", err.Error())
	}

	builder := toolsite.NewIndexBuilder(
		*workDir,
		site,
		markdown.NewRenderer(*codeStyle),
		toolsite.NewTemplates(templateFiles, site),
	)
	if err := builder.Build(); err != nil {
		log.Fatalf("Unable to build index: %s", err.Error())
	}

	log.Print("index.html created successfully")
}
