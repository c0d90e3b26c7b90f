package main

import (
	"flag"
	"log"

	"github.com/kouhin/envflag"

	"github.com/mathspp/toolsite"
)

var (
	workDir = flag.String("workdir", ".", "Directory containing the built site")
	addr    = flag.String("addr", ":8080", "Address to listen on")
)

func main() {
	if err := envflag.Parse(); err != nil {
		log.Fatalf("Unable to parse flags: %s", err.Error())
	}

	log.Printf("Serving %s on %s", *workDir, *addr)
	if err := toolsite.Serve(*addr, *workDir); err != nil {
		log.Fatalf("Unable to shutdown: %s", err.Error())
	}
	log.Print("Finishing server.")
}
