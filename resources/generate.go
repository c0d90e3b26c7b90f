package main

import (
	"path/filepath"

	"github.com/evanw/esbuild/pkg/api"
)

func main() {
	workDir, err := filepath.Abs("./resources")
	if err != nil {
		panic(err)
	}

	outDir, err := filepath.Abs("./static")
	if err != nil {
		panic(err)
	}

	res := api.Build(api.BuildOptions{
		Bundle:           true,
		MinifySyntax:     true,
		MinifyWhitespace: true,
		Write:            true,
		AbsWorkingDir:    workDir,
		EntryPoints:      []string{"styles.css"},
		Outdir:           outDir,
	})

	if len(res.Errors) > 0 {
		panic(res.Errors[0].Text)
	}
}
