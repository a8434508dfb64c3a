// Package scaffold owns declarative file creation against a base directory.
//
// Ownership boundary:
// - descriptor shape and constructors
// - target path resolution
// - per-descriptor create pipeline and outcome reporting
package scaffold
