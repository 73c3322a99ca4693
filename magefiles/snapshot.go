//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Snapshot mg.Namespace

// Renders one frame per animation phase into frames/ with the software
// rasterizer.
func (Snapshot) Frames() error {
	mg.Deps(Build.Tool)
	_, err := executeCmd(binDir+"dogetool", withArgs("snapshot", "-o", "frames", "-t", "0,1,2,3,4.5,5.5,6.5,7.5"), withStream())
	return err
}
