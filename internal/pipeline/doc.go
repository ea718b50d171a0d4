// Package pipeline runs the project bootstrap: scaffold the base project,
// migrate the package manager, switch it to zero-install linkage, install the
// addon packages and materialize the curated templates.
//
// Stages run strictly in order and the first failure aborts the run. Nothing
// already done is rolled back. Each stage declares how many progress steps it
// reports, so the total shown to the user always matches the advances made.
package pipeline
