// Package executor performs a Plan.
//
// Copy steps copy package content from the package root into the staging
// directory. Mapping steps append one line to the manifest. Steps run in
// plan order and the first failure stops the run; a canceled context is
// noticed between steps.
package executor
