//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "./bin/elodiff"

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds the elodiff binary
func Build() error {
	mg.Deps(goModDownload)
	return sh.Run("go", "build", "-o", binary, "./cmd/elodiff")
}

// Run builds and starts elodiff
func Run() error {
	mg.Deps(Build)
	return sh.RunV(binary)
}

// Test runs unit tests
func Test() error {
	mg.Deps(goModDownload)
	return sh.RunV("go", "test", "-count=1", "./...")
}

func Lint() error {
	return sh.RunV("go", "vet", "./...")
}
