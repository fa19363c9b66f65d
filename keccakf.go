package sha3bit

import "unsafe"

// numRounds is the round count for Keccak-p[1600, 24]; SHA-3 and SHAKE only
// ever use the full 24-round permutation, never a reduced-round variant.
const numRounds = 24

// rho holds the per-lane rotation offsets applied while walking the lanes
// in pi order below, FIPS 202 §3.2.2 Table 2 flattened into pi's visiting
// order (position 0, lane A[0,0], never rotates or moves under pi).
var rho = [24]uint64{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

// pi holds the lane index (x + 5y) that each step of the fused rho+pi walk
// writes to, visiting every lane but (0,0) exactly once.
var pi = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// roundConstants are the iota step's per-round values, FIPS 202 Appendix
// B.2, round 0 first.
var roundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// keccakF1600 applies the Keccak-p[1600, 24] permutation in place to a flat
// 200-byte state, interpreted per §3 as 25 little-endian 64-bit lanes:
// lane (x, y) occupies bytes [8*(x+5y), 8*(x+5y)+8). Like the teacher's
// xorIn, this assumes a little-endian host — true of every architecture
// this module targets.
func keccakF1600(state *[200]byte) {
	a := (*[25]uint64)(unsafe.Pointer(state))
	keccakP1600(a)
}

// keccakP1600 runs the 24-round θ, ρ, π, χ, ι permutation over 25 lanes
// addressed as a[x+5y]. All arithmetic is fixed 64-bit XOR and rotation;
// there are no data-dependent branches or table lookups on lane contents,
// so the permutation is constant-time with respect to state contents.
func keccakP1600(a *[25]uint64) {
	var c [5]uint64
	var row [5]uint64

	for round := 0; round < numRounds; round++ {
		// theta: column parities, then diffuse each column into its two
		// neighbors.
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d := c[(x+4)%5] ^ rotl64(c[(x+1)%5], 1)
			a[x] ^= d
			a[x+5] ^= d
			a[x+10] ^= d
			a[x+15] ^= d
			a[x+20] ^= d
		}

		// rho+pi fused: walk the 24 non-fixed lanes, each step rotating the
		// lane carried from the previous step and dropping it into its pi
		// destination, picking up that destination's old value to carry
		// forward.
		carry := a[1]
		for x := 0; x < 24; x++ {
			dst := pi[x]
			next := a[dst]
			a[dst] = rotl64(carry, rho[x])
			carry = next
		}

		// chi: nonlinear row mixing.
		for y := 0; y < 25; y += 5 {
			row[0], row[1], row[2], row[3], row[4] = a[y], a[y+1], a[y+2], a[y+3], a[y+4]
			a[y] = row[0] ^ (^row[1] & row[2])
			a[y+1] = row[1] ^ (^row[2] & row[3])
			a[y+2] = row[2] ^ (^row[3] & row[4])
			a[y+3] = row[3] ^ (^row[4] & row[0])
			a[y+4] = row[4] ^ (^row[0] & row[1])
		}

		// iota: break the round's symmetry.
		a[0] ^= roundConstants[round]
	}
}

func rotl64(x uint64, n uint64) uint64 {
	return x<<n | x>>(64-n)
}
