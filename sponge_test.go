package sha3bit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPadEdgeCaseNoZerosBetween exercises §4.2's edge case: when D||1 lands
// exactly at rateBits-1, pad10*1 degenerates to D||1 followed immediately
// by the terminal 1 bit, with no zero bits in between.
func TestPadEdgeCaseNoZerosBetween(t *testing.T) {
	sp := newSponge(16) // tiny synthetic rate for a tractable edge case
	sp.absorbBits([]byte{0b10}, sha3DomainLen)
	// Fill the block so that after the mandatory pad '1' bit, position
	// lands exactly at rateBits-1 (15): currently at 2 bits absorbed, so
	// absorb 12 filler bits first (2+12=14); the pad's first '1' then lands
	// at bit 14, leaving the cursor at 15.
	filler := make([]byte, 2)
	sp.absorbBits(filler, 12)
	require.Equal(t, 14, sp.absorbPosBits)

	sp.pad()
	// The terminal '1' bit at position 15 fills the block, triggering the
	// final permute. With no zero bits in between, the only bits absorbed
	// into this block are the domain's bit 1 and the pad bits 14 and 15.
	require.Equal(t, 0, sp.absorbPosBits)

	var want [200]byte
	flipBit(want[:], 1)
	flipBit(want[:], 14)
	flipBit(want[:], 15)
	keccakF1600(&want)
	require.Equal(t, want, sp.state)
}

// TestSweepMessageLengthsAroundRateBoundary covers whole-byte message
// lengths from 0 to a few rate-block multiples, including the lengths at
// and next to each rate boundary, cross-checked for self-consistency
// between Update and UpdateBits paths. No whole-byte length makes pad10*1
// collapse to two bits for SHA3-256; TestPadEdgeCaseNoZerosBetween covers
// that case.
func TestSweepMessageLengthsAroundRateBoundary(t *testing.T) {
	rateBytes := rate256 / 8 // 136
	lengths := []int{}
	for n := 0; n <= 2*rateBytes+8; n++ {
		lengths = append(lengths, n)
	}

	for _, n := range lengths {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i*31 + 7)
		}

		byteHasher := New256()
		require.NoError(t, byteHasher.Update(data))
		wantOut := make([]byte, Size256)
		require.NoError(t, byteHasher.Finalize(wantOut))

		bitHasher := New256()
		require.NoError(t, bitHasher.UpdateBits(data, 8*n))
		gotOut := make([]byte, Size256)
		require.NoError(t, bitHasher.Finalize(gotOut))

		require.Equal(t, wantOut, gotOut, "length %d", n)
	}
}

// TestSweepOutputLengths covers XOF output lengths from 0 to several
// rate-block multiples, exercising the permutation boundary inside
// squeezeBits.
func TestSweepOutputLengths(t *testing.T) {
	rateBytes := rateShake128 / 8 // 168
	input := []byte("output length sweep")

	maxLen := 2*rateBytes + 8
	full := NewShake128()
	require.NoError(t, full.Update(input))
	require.NoError(t, full.Finalize())
	fullOut := make([]byte, maxLen)
	require.NoError(t, full.GetBits(fullOut, 8*maxLen))

	for n := 0; n <= maxLen; n++ {
		x := NewShake128()
		require.NoError(t, x.Update(input))
		require.NoError(t, x.Finalize())
		out := make([]byte, n)
		require.NoError(t, x.GetBits(out, 8*n))
		require.Equal(t, fullOut[:n], out, "outLen %d", n)
	}
}

// TestFinalizeIdempotentFailure checks invariant 5: a second Finalize
// returns ErrStateViolation and neither mutates state nor the output
// buffer.
func TestFinalizeIdempotentFailure(t *testing.T) {
	h := New256()
	require.NoError(t, h.Update([]byte("once")))
	out := make([]byte, Size256)
	require.NoError(t, h.Finalize(out))

	before := make([]byte, Size256)
	copy(before, out)

	stateBefore := h.sp
	sentinel := bytesClone(out)
	require.ErrorIs(t, h.Finalize(sentinel), ErrStateViolation)
	require.Equal(t, before, sentinel)
	require.Equal(t, stateBefore, h.sp)
}

func bytesClone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
