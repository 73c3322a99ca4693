//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

const binDir = "bin/"

type Build mg.Namespace

// Builds every binary into bin/.
func (Build) All() {
	mg.Deps(Build.Player, Build.Studio, Build.Tool)
}

// Builds the SDL player.
func (Build) Player() error {
	return goBuild("./cmd/doge", binDir+"doge")
}

// Builds the ImGui studio.
func (Build) Studio() error {
	return goBuild("./cmd/dogestudio", binDir+"dogestudio")
}

// Builds the headless CLI.
func (Build) Tool() error {
	return goBuild("./cmd/dogetool", binDir+"dogetool")
}
