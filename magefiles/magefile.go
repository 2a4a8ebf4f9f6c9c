//go:build mage

// Package main provides build targets for the ldforge project using Mage.
//
// Usage:
//
//	mage build       Compile ldforge binary to bin/
//	mage test        Run all tests
//	mage cover       Run tests with a coverage profile in bin/
//	mage lint        Run golangci-lint
//	mage templates   Write a CSV template for every catalog type to templates/
//	mage clean       Remove build artifacts
//	mage install     Install ldforge to GOPATH/bin
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/mesh-intelligence/ldforge/internal/catalog"
)

const (
	binGo        = "go"
	binLint      = "golangci-lint"
	binaryName   = "ldforge"
	binaryDir    = "bin"
	cmdDir       = "./cmd/ldforge"
	templatesDir = "templates"
	coverProfile = "coverage.out"
)

// Build compiles the ldforge binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Cover runs all tests and writes a coverage profile to bin/.
func Cover() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	profile := filepath.Join(binaryDir, coverProfile)
	if err := sh.RunV(binGo, "test", "-coverprofile", profile, "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func", profile)
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Templates writes a CSV template with examples for every catalog type to
// templates/.
func Templates() error {
	mg.Deps(Build)
	if err := os.MkdirAll(templatesDir, 0o755); err != nil {
		return err
	}
	bin := filepath.Join(binaryDir, binaryName)
	for _, schemaType := range catalog.Types() {
		out := filepath.Join(templatesDir, fmt.Sprintf("template_%s.csv", strings.ToLower(schemaType)))
		if err := sh.Run(bin, "template", schemaType, "--advanced", "-o", out); err != nil {
			return fmt.Errorf("template %s: %w", schemaType, err)
		}
	}
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	if err := os.RemoveAll(templatesDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
