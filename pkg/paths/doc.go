// Package paths resolves the locations pear2modman reads from and writes to
// inside a package root: the descriptor, the staging directory and the
// manifest. Relative paths derived from the descriptor are joined through
// SafeJoin so that no node name can reach outside the package root.
package paths
