// Package pipeline runs one size comparison from start to finish.
//
// The stages run strictly in order and the first error aborts the run:
//
//  1. load the dataset (nothing is written when this fails)
//  2. serialize the dataset once per format to <dir>/output.<format>
//  3. optionally verify every raw artifact by decoding it again
//  4. delete <dir>/output.*.gz left over from earlier runs
//  5. gzip every artifact of this run (verified too when enabled)
//  6. collect sizes from disk and print the report
//
// Each stage is timed and every written byte counted in a metrics.Set that
// can be printed in prometheus text format after the report.
package pipeline
