//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Records groups targets that drive the record store through the CLI.
type Records mg.Namespace

// Strategies prints the registered dialect parsers for every kind.
func (Records) Strategies() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "strategies")
}

// List prints the stored records.
func (Records) List() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "records", "list")
}

// Export writes the stored records to records/export.yaml.
func (Records) Export() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "records", "export", "--format", "yaml")
}
