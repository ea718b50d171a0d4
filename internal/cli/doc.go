// Package cli defines the Cobra command for the hossam-react-app CLI.
// There is a single root command: positional arguments always name the
// project, and housekeeping (version, doctor, templates, config) is selected
// with flags so no project name is shadowed by a subcommand.
package cli
