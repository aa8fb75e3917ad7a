// Package harness runs curve scenarios end to end for conformance testing.
//
// A scenario is a YAML file bundling a curve definition with expectations:
// the exact development string (or its length), the emitted path count and
// the drawing dimension. The harness expands the axiom, interprets the
// result and evaluates every expectation, collecting all failures instead
// of stopping at the first.
//
// Golden comparison goes one level deeper: RunWithGolden encodes the full
// drawing as a canonical JSON trace and compares it byte for byte against
// testdata/golden/{name}.golden via goldie. Because the interpreter is
// deterministic and trace coordinates are rounded to six decimals, golden
// files are stable across platforms.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
package harness
