// Package registry provides a generic, type-safe registry keyed by
// string-like names. The targets package keeps one handler per content
// target type in it.
package registry
