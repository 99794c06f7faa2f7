// Package filesystem provides the types.FS implementations used by
// pear2modman: the OS filesystem for real runs and an afero-backed one,
// mostly used with afero.NewMemMapFs in tests.
package filesystem
