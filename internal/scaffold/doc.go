// Package scaffold replaces the generator's boilerplate with the curated
// template set. It powers the last pipeline stage: delete the default source
// files, create the project's directory layout, place each template (some with
// the project name substituted in), and drop the generator's git metadata.
//
// The plan is an embedded YAML file validated against an embedded JSON
// Schema. Template contents come from any fs.FS, by default the embedded set.
package scaffold
