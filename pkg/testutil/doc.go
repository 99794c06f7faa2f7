// Package testutil provides utilities for testing pear2modman components.
//
// Key components:
//   - TestEnvironment: a package directory on a memory or real filesystem
//     with helpers to seed package.xml and source files and to read back
//     what a run staged
//
// Usage guidelines:
//   - Use EnvMemoryOnly when the code under test accepts a types.FS
//   - Use EnvIsolated for anything that goes through the OS filesystem
//   - All test data should be defined inline, not in external files
package testutil
