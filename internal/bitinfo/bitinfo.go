// Package bitinfo computes the bit-pair co-occurrence histogram between
// two equal-length streams of 32-bit words and the per-bit mutual
// information derived from it. Bit positions are indexed MSB-first
// (index 0 = bit 31, the sign bit; index 31 = bit 0, the mantissa LSB)
// to match the CDF-crossing arithmetic in package keepbits.
package bitinfo

import (
	"math"

	"github.com/huanglangwen/bitrounding-c/internal/stat"
)

// NBits is the width of the word the histogram and MI vector cover.
const NBits = 32

// Histogram is BC[bitPosition][bitOfA][bitOfB], a count of how often bit
// bitPosition of A equals bitOfA while the same bit of B equals bitOfB.
type Histogram [NBits][2][2]uint64

// CountBitPairs accumulates the bit-pair histogram between A and B. If
// their lengths differ, only the first min(len(A), len(B)) pairs are
// counted. Bit position i (0 = LSB) of each word is stored
// at histogram index NBits-1-i, i.e. MSB-first.
func CountBitPairs(a, b []uint32) Histogram {
	var bc Histogram
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for k := 0; k < n; k++ {
		av, bv := a[k], b[k]
		var mask uint32 = 1
		for i := 0; i < NBits; i++ {
			j := (av & mask) >> uint(i)
			l := (bv & mask) >> uint(i)
			bc[NBits-i-1][j][l]++
			mask <<= 1
		}
	}
	return bc
}

// mutualInformationBit returns the mutual information in bits of a single
// 2x2 joint probability table p, with the convention 0*log2(0) = 0.
func mutualInformationBit(p [2][2]float64) float64 {
	px := [2]float64{p[0][0] + p[0][1], p[1][0] + p[1][1]}
	py := [2]float64{p[0][0] + p[1][0], p[0][1] + p[1][1]}

	var m float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if p[i][j] > 0.0 {
				m += p[i][j] * math.Log(p[i][j]/px[i]/py[j])
			}
		}
	}
	return m / math.Ln2
}

// MutualInformation returns the per-bit mutual information, in bits,
// between A and B (n := len(A) == len(B) paired samples), with entries
// at or below the free-entropy threshold at the given confidence
// zeroed out.
func MutualInformation(a, b []uint32, confidence float64) [NBits]float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	bc := CountBitPairs(a, b)

	var mi [NBits]float64
	if n == 0 {
		return mi
	}
	nf := float64(n)
	for i := 0; i < NBits; i++ {
		var p [2][2]float64
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				p[j][k] = float64(bc[i][j][k]) / nf
			}
		}
		mi[i] = mutualInformationBit(p)
	}

	hfree := stat.FreeEntropy(n, confidence)
	for i := range mi {
		if mi[i] <= hfree {
			mi[i] = 0.0
		}
	}
	return mi
}
