// Package report compares the on-disk sizes of all artifacts of a run.
//
// For every artifact three percentages are computed, each rounded to two
// decimals:
//
//   - Ratio: gzip size relative to the raw size of the same artifact
//   - RawVsBaseline: raw size relative to the raw baseline (csv)
//   - GzipVsBaseline: gzip size relative to the gzip baseline (csv.gz)
//
// Sizes are always read from disk; a missing file fails the whole report.
//
// The json artifacts hold non-ASCII text as plain UTF-8, two bytes per umlaut.
// Encoders that escape everything outside ASCII (\u00fc, six bytes) produce
// larger raw json for a German word list, so raw json ratios are lower than with
// such encoders. Compressed ratios are affected much less.
package report
