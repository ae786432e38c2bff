package report

import (
	"bytes"
	"strings"
	"testing"

	bitrounding "github.com/huanglangwen/bitrounding-c"
)

func TestReporter_VariableLine(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Variable(bitrounding.FieldStats{
		Name: "temperature", SlicesTotal: 4, SlicesRounded: 4, MinNSB: 10, MaxNSB: 14,
	}, true)

	out := buf.String()
	if !strings.Contains(out, "temperature") || !strings.Contains(out, "4/4") {
		t.Fatalf("unexpected line: %q", out)
	}
	processed, rounded := r.Tally()
	if processed != 1 || rounded != 1 {
		t.Fatalf("tally = %d,%d, want 1,1", processed, rounded)
	}
}

func TestReporter_SkippedVariable(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Variable(bitrounding.FieldStats{Name: "lat", SkipReason: "coordinate variable"}, false)

	out := buf.String()
	if !strings.Contains(out, "skipping") || !strings.Contains(out, "coordinate variable") {
		t.Fatalf("unexpected line: %q", out)
	}
	processed, rounded := r.Tally()
	if processed != 1 || rounded != 0 {
		t.Fatalf("tally = %d,%d, want 1,0", processed, rounded)
	}
}

func TestReporter_SkipDtype(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.SkipDtype("time_bnds", "int32")

	out := buf.String()
	if !strings.Contains(out, "time_bnds") || !strings.Contains(out, "int32") {
		t.Fatalf("unexpected line: %q", out)
	}
}

func TestReporter_Summary(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Variable(bitrounding.FieldStats{Name: "a", SlicesTotal: 1, SlicesRounded: 1}, true)
	r.Variable(bitrounding.FieldStats{Name: "b", SkipReason: "contains NaN or fill-value sentinel"}, false)
	r.Summary()

	out := buf.String()
	if !strings.Contains(out, "Processed variables: 2") || !strings.Contains(out, "Rounded variables: 1") {
		t.Fatalf("unexpected summary: %q", out)
	}
}

func TestMemorySource(t *testing.T) {
	src := MemorySource{
		"a": &bitrounding.Field{Name: "a", Data: []float32{1, 2, 3}, Shape: []int{3}},
	}

	names := src.Variables()
	if len(names) != 1 || names[0] != "a" {
		t.Fatalf("Variables() = %v, want [a]", names)
	}

	f, err := src.Load("a")
	if err != nil || f.Name != "a" {
		t.Fatalf("Load(a) = %v, %v", f, err)
	}

	if _, err := src.Load("missing"); err == nil {
		t.Fatal("Load(missing) should error")
	}
}
