// +build mage

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/coreos/go-semver/semver"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
	"github.com/mholt/archiver"
)

var (
	executables = []string{"buildindex", "buildcolophon", "gatherlinks", "preview"}
	outputPath  = "dist"

	architectures = []Architecture{
		{OS: "linux", Arch: "amd64", ArchiveType: ".tar.gz"},
		{OS: "linux", Arch: "arm64", ArchiveType: ".tar.gz"},
		{OS: "darwin", Arch: "amd64", ArchiveType: ".tar.gz"},
		{OS: "darwin", Arch: "arm64", ArchiveType: ".tar.gz"},
		{OS: "windows", Arch: "amd64", BinarySuffix: ".exe", ArchiveType: ".zip"},
	}
)

var goexe = "go"

// Generate bundles the stylesheet sources into static/.
func Generate() error {
	fmt.Printf("Bundling static assets\n")
	return sh.Run(goexe, "run", "./resources")
}

// Build compiles every command for every target platform.
func Build() error {
	mg.Deps(Generate)
	fmt.Printf("Compiling binaries\n")

	if err := os.Setenv("CGO_ENABLED", "0"); err != nil {
		return err
	}

	version, err := getTag()
	if err != nil {
		return err
	}

	if err := sh.Run(goexe, "mod", "download"); err != nil {
		return err
	}

	for _, architecture := range architectures {
		for _, executable := range executables {
			if err := build(architecture, executable, version); err != nil {
				log.Printf("Error building %s for %s/%s: %s", executable, architecture.OS, architecture.Arch, err.Error())
			}
		}
	}
	return nil
}

// Archive packages the compiled binaries per platform.
func Archive() error {
	mg.Deps(Build)
	fmt.Printf("Creating archives\n")

	version, err := getTag()
	if err != nil {
		return err
	}

	for _, architecture := range architectures {
		var files []string
		for _, executable := range executables {
			files = append(files, filepath.Join(outputPath, binaryName(architecture, executable, version)))
		}

		outputName := filepath.Join(outputPath, fmt.Sprintf("toolsite_%s_%s_%s%s", architecture.OS, architecture.Arch, version, architecture.ArchiveType))
		if err := archiver.Archive(files, outputName); err != nil {
			log.Printf("Error archiving %s/%s: %s", architecture.OS, architecture.Arch, err.Error())
		}
	}
	return nil
}

func build(architecture Architecture, executable, version string) error {
	if err := os.Setenv("GOOS", architecture.OS); err != nil {
		return err
	}
	if err := os.Setenv("GOARCH", architecture.Arch); err != nil {
		return err
	}

	output := filepath.Join(outputPath, binaryName(architecture, executable, version))
	return sh.RunV(goexe,
		"build",
		"-trimpath",
		"-ldflags", "-s -w",
		"-o", output,
		"./cmd/"+executable,
	)
}

func binaryName(architecture Architecture, executable, version string) string {
	return fmt.Sprintf("%s_%s_%s_%s%s", executable, architecture.OS, architecture.Arch, version, architecture.BinarySuffix)
}

// getTag describes the current commit and checks the tag is a valid
// semantic version before it ends up in archive names.
func getTag() (string, error) {
	if _, err := sh.Output("git", "fetch", "--tags"); err != nil {
		return "", err
	}

	tag, err := sh.Output("git", "describe", "--tags")
	if err != nil {
		return "", err
	}

	base := strings.TrimPrefix(strings.SplitN(tag, "-", 2)[0], "v")
	if _, err := semver.NewVersion(base); err != nil {
		return "", fmt.Errorf("tag %q is not a semantic version: %w", tag, err)
	}
	return tag, nil
}

type Architecture struct {
	OS           string
	Arch         string
	BinarySuffix string
	ArchiveType  string
}
