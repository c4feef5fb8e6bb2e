// Package compress gzips artifacts next to their source files and removes
// compressed artifacts of previous runs.
//
// GzipFile writes <path>.gz and leaves the source untouched. The gzip header
// carries the base name and modification time of the source, so two runs over
// identical input produce identical raw artifacts but compressed artifacts
// that may differ in their header bytes.
package compress
