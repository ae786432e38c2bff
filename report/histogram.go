package report

import (
	"math"
	"strings"

	bitrounding "github.com/huanglangwen/bitrounding-c"
)

// BitUsageHistogram reports, for each of the 32 bit positions (MSB-first,
// matching the rest of this repository's convention), whether any
// finite element of the Field has that bit set. This supplements the
// dropped analyze_bit_precision.py diagnostic (see SPEC_FULL.md §10):
// unlike that script it never shells out, it only reads the Field the
// Core already owns.
func BitUsageHistogram(f *bitrounding.Field) [32]bool {
	var used [32]bool
	for _, x := range f.Data {
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			continue
		}
		bits := math.Float32bits(x)
		for pos := 0; pos < 32; pos++ {
			if bits&(1<<uint(pos)) != 0 {
				used[31-pos] = true // store MSB-first
			}
		}
	}
	return used
}

// FormatBitUsage renders a bit-usage histogram the way
// analyze_bit_precision.py does: "(MSB) -------- -------- -------- -------- (LSB)"
// with '1' at each used position.
func FormatBitUsage(used [32]bool) string {
	var b strings.Builder
	b.WriteString("(MSB) ")
	for i, u := range used {
		if u {
			b.WriteByte('1')
		} else {
			b.WriteByte('-')
		}
		if i%8 == 7 && i != len(used)-1 {
			b.WriteByte(' ')
		}
	}
	b.WriteString(" (LSB)")
	return b.String()
}
