// Package apperr defines shared error sentinels for the versionstring tool.
// It is a leaf package with no internal imports, allowing any package
// (including the low-level gitcmd runner) to use the sentinels without
// creating import cycles.
package apperr
