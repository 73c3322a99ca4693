//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs the unit tests. GL and SDL are never touched.
func (Test) Unit() error {
	_, err := executeCmd("go", withArgs("test", "./internal/...", "./pkg/...", "./cmd/dogetool/..."), withStream())
	return err
}

// Runs the unit tests with the race detector.
func (Test) Race() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./internal/...", "./pkg/..."), withStream())
	return err
}
