package bitinfo

import (
	"math"
	"testing"
)

func TestCountBitPairs_IdenticalStreamsOnlyDiagonal(t *testing.T) {
	a := []uint32{0x00000000, 0xffffffff, 0x12345678}
	bc := CountBitPairs(a, a)
	for i := 0; i < NBits; i++ {
		if bc[i][0][1] != 0 || bc[i][1][0] != 0 {
			t.Fatalf("bit %d: off-diagonal count nonzero for identical streams: %+v", i, bc[i])
		}
	}
}

func TestCountBitPairs_UnequalLengthUsesShorter(t *testing.T) {
	a := []uint32{1, 2, 3, 4}
	b := []uint32{1, 2}
	bc := CountBitPairs(a, b)
	var total uint64
	for k := 0; k < 2; k++ {
		for l := 0; l < 2; l++ {
			total += bc[NBits-1][k][l]
		}
	}
	if total != 2 {
		t.Fatalf("expected 2 pairs counted (shorter length), got %d", total)
	}
}

func TestCountBitPairs_SignBitIndexZero(t *testing.T) {
	a := []uint32{0x80000000}
	b := []uint32{0x80000000}
	bc := CountBitPairs(a, b)
	if bc[0][1][1] != 1 {
		t.Fatalf("sign bit (bit31) should land at histogram index 0, got %+v", bc[0])
	}
}

func TestMutualInformation_ConstantStreamIsZero(t *testing.T) {
	a := make([]uint32, 64)
	for i := range a {
		a[i] = 0xdeadbeef
	}
	mi := MutualInformation(a, a, 0.99)
	for i, v := range mi {
		if v != 0 {
			t.Fatalf("constant stream should have zero MI at bit %d, got %v", i, v)
		}
	}
}

func TestMutualInformation_PerfectlyCorrelatedBitIsHigh(t *testing.T) {
	a := make([]uint32, 200)
	for i := range a {
		if i%2 == 0 {
			a[i] = 1 << 20
		}
	}
	mi := MutualInformation(a[:len(a)-1], a[1:], 0.99)
	// bit 20 alternates in lockstep between consecutive samples (since
	// len-1 samples shift the even/odd phase by one), so its MI should
	// be well above the free-entropy noise floor while most other bits
	// (always 0) should be exactly zero.
	idx := NBits - 1 - 20
	if mi[idx] <= 0 {
		t.Fatalf("expected bit 20 (index %d) to carry information, got %v", idx, mi[idx])
	}
}

func TestMutualInformation_EmptyInputIsZero(t *testing.T) {
	mi := MutualInformation(nil, nil, 0.99)
	for i, v := range mi {
		if v != 0 {
			t.Fatalf("empty input should produce all-zero MI, got nonzero at %d", i)
		}
	}
}

func TestMutualInformationBit_NonNegative(t *testing.T) {
	p := [2][2]float64{{0.4, 0.1}, {0.2, 0.3}}
	if m := mutualInformationBit(p); m < -1e-9 {
		t.Fatalf("mutual information must be non-negative, got %v", m)
	}
}

func TestMutualInformationBit_IndependentIsZero(t *testing.T) {
	p := [2][2]float64{{0.25, 0.25}, {0.25, 0.25}}
	if m := mutualInformationBit(p); math.Abs(m) > 1e-12 {
		t.Fatalf("independent joint distribution should have ~0 MI, got %v", m)
	}
}

func TestMutualInformation_ConfidenceRaisesTheNoiseFloor(t *testing.T) {
	// A weakly-correlated bit 12: true mutual information ~0.0046 bits
	// (crossover probability 0.46 with uniform marginals), which lies
	// above FreeEntropy(1000, 0.5) (~0.00033) but below
	// FreeEntropy(1000, 0.999999) (~0.017). Raising confidence must zero
	// it out while a looser confidence leaves it untouched.
	const n = 1000
	a := make([]uint32, n)
	b := make([]uint32, n)
	counts := map[[2]int]int{{0, 0}: 270, {0, 1}: 230, {1, 0}: 230, {1, 1}: 270}
	pos := 0
	for pair, count := range counts {
		for k := 0; k < count; k++ {
			if pair[0] == 1 {
				a[pos] |= 1 << 12
			}
			if pair[1] == 1 {
				b[pos] |= 1 << 12
			}
			pos++
		}
	}

	lowConf := MutualInformation(a, b, 0.5)
	highConf := MutualInformation(a, b, 0.999999)

	idx := NBits - 1 - 12
	if lowConf[idx] == 0 {
		t.Fatalf("expected a nonzero MI at a low confidence floor, got 0")
	}
	if highConf[idx] != 0 {
		t.Fatalf("expected a high confidence floor to zero out a weak correlation, got %v", highConf[idx])
	}
}
