// Package report provides the per-variable summary lines and final
// tally named in spec §4.7/§7, plus a small FieldSource abstraction
// standing in for the external NetCDF/HDF5 reader/writer (out of scope
// per spec §1) in tests and the CLI demo path.
package report

import (
	"fmt"
	"io"

	bitrounding "github.com/huanglangwen/bitrounding-c"
)

// Reporter writes the one-line-per-variable summaries and final tally.
// It is deliberately just an io.Writer wrapper, not a structured logging
// framework: the driver has nothing to log but human-readable progress
// and skip reasons, the same way the teacher corpus's own CLI reports
// progress with plain Fprintf calls.
type Reporter struct {
	w                io.Writer
	processed        int
	rounded          int
}

// New returns a Reporter that writes to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Variable writes one summary line for a Field's processing result and
// updates the running tally.
func (r *Reporter) Variable(stats bitrounding.FieldStats, wasRounded bool) {
	r.processed++
	if wasRounded {
		r.rounded++
	}

	if stats.Skipped() {
		fmt.Fprintf(r.w, "Variable %s: skipping bitrounding (%s)\n", stats.Name, stats.SkipReason)
		return
	}
	fmt.Fprintf(r.w, "Variable %s: %d/%d slices rounded, NSB min=%d max=%d\n",
		stats.Name, stats.SlicesRounded, stats.SlicesTotal, stats.MinNSB, stats.MaxNSB)
}

// SkipDtype records a non-binary32 variable being skipped, for sources
// whose underlying container can hold other dtypes (spec §4.7's
// structural gate, see SPEC_FULL.md §4.7).
func (r *Reporter) SkipDtype(name, dtype string) {
	r.processed++
	fmt.Fprintf(r.w, "Variable %s: skipping (dtype=%s, only processing float32)\n", name, dtype)
}

// Summary writes the final (processed, rounded) tally.
func (r *Reporter) Summary() {
	fmt.Fprintf(r.w, "\nBitrounding complete:\n")
	fmt.Fprintf(r.w, "  Processed variables: %d\n", r.processed)
	fmt.Fprintf(r.w, "  Rounded variables: %d\n", r.rounded)
}

// Tally returns the running (processed, rounded) counts.
func (r *Reporter) Tally() (processed, rounded int) {
	return r.processed, r.rounded
}

// FieldSource is the narrow contract standing in for the external
// reader/writer of spec §6: a name listing and a per-name Field loader.
type FieldSource interface {
	Variables() []string
	Load(name string) (*bitrounding.Field, error)
}

// MemorySource is a FieldSource backed by an in-memory map, for use in
// tests in place of a real NetCDF/HDF5 file.
type MemorySource map[string]*bitrounding.Field

// Variables returns the source's variable names, in no particular order.
func (m MemorySource) Variables() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	return names
}

// Load returns the named Field, or an error if it is not present.
func (m MemorySource) Load(name string) (*bitrounding.Field, error) {
	f, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("report: no such variable %q", name)
	}
	return f, nil
}
