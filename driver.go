package bitrounding

import (
	"fmt"
	"math"
	"sync"

	"github.com/huanglangwen/bitrounding-c/internal/bitinfo"
	"github.com/huanglangwen/bitrounding-c/internal/bitround"
	"github.com/huanglangwen/bitrounding-c/internal/keepbits"
	"github.com/huanglangwen/bitrounding-c/internal/signexp"
	"github.com/huanglangwen/bitrounding-c/internal/slicepool"
)

// Policy selects one of the three NSB selector strategies. It is a
// type alias for keepbits.Policy so callers never need to import the
// internal package directly.
type Policy = keepbits.Policy

// Kind is the tagged-sum selector discriminant within a Policy.
type Kind = keepbits.Kind

// Policy kinds, re-exported from keepbits for convenience.
const (
	PolicyDefault   = keepbits.Default
	PolicyMonotonic = keepbits.Monotonic
	PolicyGradient  = keepbits.Gradient
)

// AnalyzeAndGetNSB is the Core API named in spec §6: it analyzes one
// slice (a contiguous run of paired, neighboring samples) and returns
// the number of significant mantissa bits the given policy selects at
// the given inflevel. confidence is the binomial confidence behind the
// free-entropy noise floor (Config.Confidence). Slices shorter than
// two elements have no neighbor pairs to measure information between,
// so NSB defaults to 1.
func AnalyzeAndGetNSB(slice []float32, inflevel float64, p Policy, confidence float64) uint8 {
	if len(slice) < 2 {
		return 1
	}

	u := slicepool.GetUint32(len(slice))
	defer slicepool.PutUint32(u)
	for i, x := range slice {
		u[i] = signexp.Transform(math.Float32bits(x))
	}

	mi := bitinfo.MutualInformation(u[:len(u)-1], u[1:], confidence)
	return keepbits.Select(mi, inflevel, p)
}

// BitroundInPlace is the Core API named in spec §6: it masks off the
// low mantissa bits not covered by nsb, with half-bit rounding bias,
// skipping elements bitwise-equal to fill and NaNs. Precondition:
// 1 <= nsb <= 23 (an invariant violation outside that range panics,
// per spec §7.3).
func BitroundInPlace(slice []float32, nsb uint8, fillValue float32) {
	bitround.Round(slice, nsb, fillValue, true)
}

// FieldStats summarizes one Field's pass through the slice driver:
// the range of NSB values chosen across its slices, how many of them
// were actually rounded, and (when rounding was skipped entirely) why.
type FieldStats struct {
	Name           string
	SlicesTotal    int
	SlicesRounded  int
	MinNSB         uint8
	MaxNSB         uint8
	SkipReason     string // empty unless the whole Field was skipped
}

// Skipped reports whether the Field was passed through unchanged.
func (s FieldStats) Skipped() bool { return s.SkipReason != "" }

// RoundField runs the slice driver of spec §4.6 over a Field: rank <= 2
// is treated as one slice; rank >= 3 is partitioned into the Cartesian
// product of leading dimensions, each contributing one trailing 2-D
// pane. Each slice is analyzed on a signed-exponent working copy and
// then rounded in place on the original buffer. Per-slice analytic
// degeneracy (MI never crosses inflevel) is absorbed as NSB=23 and is
// not a failure (spec §7.2); it still counts as "rounded" since the
// kernel still runs (as a no-op).
func RoundField(f *Field, cfg Config) (FieldStats, error) {
	n, err := f.numElements()
	if err != nil {
		return FieldStats{}, err
	}

	pane := f.paneSize()
	if pane <= 0 || n%pane != 0 {
		return FieldStats{}, fmt.Errorf("bitrounding: field %q: buffer size %d not divisible by pane size %d", f.Name, n, pane)
	}
	numPanes := n / pane

	stats := FieldStats{Name: f.Name, MinNSB: 255, MaxNSB: 0}
	for p := 0; p < numPanes; p++ {
		slice := f.Data[p*pane : (p+1)*pane]
		nsb := AnalyzeAndGetNSB(slice, cfg.Inflevel, cfg.Policy, cfg.Confidence)
		BitroundInPlace(slice, nsb, f.FillValue)

		stats.SlicesTotal++
		stats.SlicesRounded++
		if nsb < stats.MinNSB {
			stats.MinNSB = nsb
		}
		if nsb > stats.MaxNSB {
			stats.MaxNSB = nsb
		}
	}
	return stats, nil
}

// RoundFieldConcurrent is the parallel variant spec §5 allows but does
// not require: slices are independent, so they may be fanned out across
// workers goroutines. The min/max/count reduction is the "trivial
// reduction" spec §5 calls out, guarded by a single mutex. workers <= 1
// falls back to the synchronous path.
func RoundFieldConcurrent(f *Field, cfg Config, workers int) (FieldStats, error) {
	if workers <= 1 {
		return RoundField(f, cfg)
	}

	n, err := f.numElements()
	if err != nil {
		return FieldStats{}, err
	}
	pane := f.paneSize()
	if pane <= 0 || n%pane != 0 {
		return FieldStats{}, fmt.Errorf("bitrounding: field %q: buffer size %d not divisible by pane size %d", f.Name, n, pane)
	}
	numPanes := n / pane

	var (
		mu    sync.Mutex
		stats = FieldStats{Name: f.Name, MinNSB: 255, MaxNSB: 0}
	)

	jobs := make(chan int, numPanes)
	for p := 0; p < numPanes; p++ {
		jobs <- p
	}
	close(jobs)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				slice := f.Data[p*pane : (p+1)*pane]
				nsb := AnalyzeAndGetNSB(slice, cfg.Inflevel, cfg.Policy, cfg.Confidence)
				BitroundInPlace(slice, nsb, f.FillValue)

				mu.Lock()
				stats.SlicesTotal++
				stats.SlicesRounded++
				if nsb < stats.MinNSB {
					stats.MinNSB = nsb
				}
				if nsb > stats.MaxNSB {
					stats.MaxNSB = nsb
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return stats, nil
}

// ProcessVariable implements the variable dispatcher of spec §4.7: it
// gates a Field on coordinate status and sentinel presence before
// handing it to RoundField. The bool result reports whether rounding
// was applied.
func ProcessVariable(f *Field, cfg Config) (FieldStats, bool) {
	if f.IsCoordinate {
		return FieldStats{Name: f.Name, SkipReason: "coordinate variable"}, false
	}
	if containsSentinel(f.Data, f.FillValue, f.HasFillValue) {
		return FieldStats{Name: f.Name, SkipReason: "contains NaN or fill-value sentinel"}, false
	}

	stats, err := RoundField(f, cfg)
	if err != nil {
		panic(err) // malformed buffer is a programming error (spec §7.3)
	}
	return stats, true
}
