// Package manifest locates, parses, mutates, and rewrites Cargo manifests.
//
// # Overview
//
// The package implements the full read-modify-write pipeline for a project's
// Cargo.toml (and its companion Cargo.lock):
//
//   - [Find] walks upward from a starting directory until it finds the file
//   - [FindFile] and [FindLockFile] open the resolved file read-write
//   - [Open], [OpenLockFile], and [Parse] build a [Manifest] from TOML text
//   - [Manifest.InsertIntoTable] and [Manifest.AddDeps] mutate dependency tables
//   - [Manifest.WriteToFile] rewrites the file with the [package] section first
//
// # Document model
//
// A manifest is held as a generic [Table] (the TOML decode of the document),
// so any structurally valid manifest round-trips: parsing and immediately
// saving preserves all key/value data. Non-primary sections serialize in
// lexical key order; the [package] (or [project]) section is always emitted
// first regardless of where it appeared in the source.
//
// # Errors
//
// Structural failures carry codes from pkg/errors (MANIFEST_NOT_FOUND,
// TYPE_CONFLICT, MISSING_PACKAGE_SECTION); I/O and parser failures are
// wrapped with their underlying cause intact. The package never logs.
package manifest
