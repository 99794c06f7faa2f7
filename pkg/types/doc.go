// Package types defines the core types and interfaces used throughout pear2modman.
// This includes the parsed content tree (ContentNode), the closed set of
// content targets (TargetType), and the plan model produced by the target
// handlers (MappingEntry, CopyStep, Step, Plan), as well as the FS interface
// the executor runs against.
package types
