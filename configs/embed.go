// Package configs provides the embedded configuration template for envcheck.
//
// The template is embedded at build time with //go:embed so it ships with
// every distribution, source builds included. `envcheck init` writes it to
// the project root as .envcheck.yaml; internal/config.Load reads it back.
package configs

import _ "embed"

// ProjectConfigTemplate is the commented template for project-level
// configuration. Created by `envcheck init` at .envcheck.yaml in the
// project root. Every key mirrors a field of internal/config.Config and
// overrides the built-in default.
//
//go:embed project-config.example.yaml
var ProjectConfigTemplate string
