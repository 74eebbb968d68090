//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var binDir = "bin"

// commands built into bin/
var commands = []string{"storefront", "orderworker"}

var Default = Build

// Build compiles every command into bin/
func Build() error {
	mg.Deps(Tidy)

	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return err
	}

	env := map[string]string{"CGO_ENABLED": "0"}
	for _, cmd := range commands {
		out := filepath.Join(binDir, cmd)
		fmt.Println("Building:", out)
		if err := sh.RunWithV(env, "go", "build", "-trimpath", "-o", out, "./cmd/"+cmd); err != nil {
			return err
		}
	}

	return nil
}

// Run starts the storefront API
func Run() error {
	return sh.RunV("go", "run", "./cmd/storefront")
}

// Worker starts the order worker
func Worker() error {
	return sh.RunV("go", "run", "./cmd/orderworker")
}

// Gen regenerates the gorm/gen query package from the persistence models
func Gen() error {
	return sh.RunV("go", "run", "./cmd/gen")
}

// Mocks regenerates internal/mocks from .mockery.yaml
func Mocks() error {
	if _, err := exec.LookPath("mockery"); err != nil {
		return fmt.Errorf("mockery not found, install github.com/vektra/mockery/v2")
	}

	return sh.RunV("mockery")
}

func Test() error {
	return sh.RunV("go", "test", "./...", "-count=1")
}

func Lint() error {
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		return fmt.Errorf("golangci-lint not found")
	}

	return sh.RunV("golangci-lint", "run", "--timeout=3m", "./...")
}

func Tidy() error {
	return sh.RunV("go", "mod", "tidy")
}

func Clean() error {
	return os.RemoveAll(binDir)
}
