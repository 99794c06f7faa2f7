// Package targets turns a parsed content tree into a Plan.
//
// Every top-level node of the tree is a content target whose name, once the
// configured prefix is stripped, selects one handler from a closed table:
//
//	community, local  code pools, copied once and mapped per module
//	etc               module bootstrap files, copied and mapped one by one
//	design, skin      theme areas, mapped per type directory
//	locale            translation files, mapped per locale code
//	web               js assets
//	lib               library folder
//	(empty)           root-level folders, mapped per leaf file
//
// Handlers only plan. Copying and writing the manifest belong to the
// executor package, so the planning step can be asserted on without touching
// the filesystem.
package targets
