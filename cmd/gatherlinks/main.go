package main

import (
	"flag"
	"log"

	"github.com/kouhin/envflag"

	"github.com/mathspp/toolsite"
)

var workDir = flag.String("workdir", ".", "Git repository containing the tool pages")

func main() {
	if err := envflag.Parse(); err != nil {
		log.Fatalf("Unable to parse flags: %s", err.Error())
	}

	gatherer, err := toolsite.NewGatherer(*workDir)
	if err != nil {
		log.Fatalf("Unable to open working directory: %s", err.Error())
	}

	manifest, err := gatherer.Gather()
	if err != nil {
		log.Fatalf("Unable to gather commit history: %s", err.Error())
	}

	if err := gatherer.Write(manifest); err != nil {
		log.Fatalf("Unable to write manifest: %s", err.Error())
	}

	log.Printf("Gathered history for %d pages", len(manifest.Pages))
}
