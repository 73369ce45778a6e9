// Package templates embeds the files seeded by `seahorse-setup init`.
package templates

import (
	_ "embed"
)

// Env is the .env template with every credential blank.
//
//go:embed files/env.template
var Env string

// SetupToml is the default setup.toml content.
//
//go:embed files/setup.toml.template
var SetupToml string
