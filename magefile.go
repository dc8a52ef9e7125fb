//go:build mage

package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	modulePath = "github.com/Locotir/EnhanceOutput"
	binPath    = "./bin/eo"
)

// Default target - build the binary
var Default = Build

// Build compiles eo with embedded version metadata.
func Build() error {
	fmt.Println("Building eo...")
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binPath, "./cmd/eo")
}

// Install places eo in GOPATH/bin with embedded version metadata.
func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), "./cmd/eo")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll("./bin"); err != nil {
		return err
	}
	return sh.Run("go", "clean")
}

// Lint runs go vet, then golangci-lint when installed.
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	if err := sh.RunV("golangci-lint", "run", "./..."); err != nil {
		if isCommandNotFound(err) {
			fmt.Fprintln(os.Stderr, "golangci-lint not found, skipping")
			return nil
		}
		return err
	}
	return nil
}

// Test namespace for testing commands
type Test mg.Namespace

// All runs all tests.
func (Test) All() error {
	return sh.RunV("go", "test", "./...")
}

// Race runs tests with the race detector.
func (Test) Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Coverage runs tests with coverage reporting.
func (Test) Coverage() error {
	if err := sh.RunV("go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func=coverage.out")
}

func ldflags() string {
	date := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf("-s -w -X '%s/internal/version.Version=%s' -X '%s/internal/version.CommitHash=%s' -X '%s/internal/version.BuildDate=%s'",
		modulePath, gitVersion(), modulePath, gitCommit(), modulePath, date)
}

func gitVersion() string {
	out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty", "--match=v*")
	if err != nil {
		return "dev"
	}
	return strings.TrimSpace(out)
}

func gitCommit() string {
	out, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(out)
}

func isCommandNotFound(err error) bool {
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	return strings.Contains(err.Error(), "executable file not found")
}
