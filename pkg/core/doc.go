// Package core runs the translation of one package.
//
// A run loads the layered configuration, resolves the package paths, reads
// the content tree from the descriptor and asks the target dispatcher for a
// Plan. Everything up to that point is free of side effects, so an unknown
// target or a malformed descriptor leaves the package untouched. Generate
// then hands the plan to the executor, which stages the files and appends
// the manifest lines.
package core
