package sha3bit

// mode is the sponge's tagged lifecycle state. Expressing it as a tagged
// variant (rather than a pair of booleans) makes illegal transitions
// mechanically detectable: every public Hasher and XOF operation starts by
// checking mode and returning ErrStateViolation for anything but the mode
// it expects. The sponge methods below do not check mode themselves.
type mode uint8

const (
	modeAbsorbing mode = iota
	modeSqueezing
	modeExhausted
)

// maxRateBytes is the 200-byte state size, an upper bound on any rate in
// bytes: the widest rate FIPS 202 defines is SHAKE128's 1344 bits (168
// bytes). The sponge keeps no separate absorb/squeeze buffer.
const maxRateBytes = 200

// sponge is the Keccak[c] sponge construction wrapping keccakF1600: a
// 1600-bit state, a rate r (bits) and capacity c = 1600 - r, a bit-indexed
// absorb/squeeze cursor, and the mode flag. Every fixed-output hash and XOF
// façade in this package is a sponge fixed to a particular (rate, domain
// suffix) pair.
type sponge struct {
	state [200]byte

	rateBits int
	mode     mode

	// absorbPosBits is the current bit offset into the rate-sized absorb
	// buffer, 0 <= absorbPosBits < rateBits, valid while mode ==
	// modeAbsorbing.
	absorbPosBits int

	// squeezePosBits is the current bit offset into the rate-sized window
	// of state available for squeezing, 0 <= squeezePosBits < rateBits,
	// valid while mode == modeSqueezing. The read that brings it to
	// rateBits permutes the state and resets it to 0 before returning.
	squeezePosBits int
}

func newSponge(rateBits int) sponge {
	return sponge{rateBits: rateBits}
}

// absorbBits XORs an arbitrary-length LSB-first-within-byte bit sequence
// into the sponge, permuting every time the rate-sized buffer fills. bits
// holds at least ceil(nbits/8) bytes; bit i of the logical sequence is bit
// (i%8) of bits[i/8] (FIPS 202 Appendix B.1 order).
func (s *sponge) absorbBits(bits []byte, nbits int) {
	pos := 0
	for pos < nbits {
		avail := s.rateBits - s.absorbPosBits
		n := nbits - pos
		if n > avail {
			n = avail
		}

		if pos%8 == 0 && s.absorbPosBits%8 == 0 && n%8 == 0 {
			xorBytesAt(s.state[:], s.absorbPosBits/8, bits[pos/8:pos/8+n/8])
		} else {
			for i := 0; i < n; i++ {
				if bitAt(bits, pos+i) != 0 {
					flipBit(s.state[:], s.absorbPosBits+i)
				}
			}
		}

		s.absorbPosBits += n
		pos += n
		if s.absorbPosBits == s.rateBits {
			keccakF1600(&s.state)
			s.absorbPosBits = 0
		}
	}
}

// absorbBit XORs a single bit (0 or non-zero) into the sponge.
func (s *sponge) absorbBit(bit byte) {
	var b [1]byte
	if bit != 0 {
		b[0] = 1
	}
	s.absorbBits(b[:], 1)
}

// pad absorbs only the pad10*1 suffix: a 1 bit, zero bits, and a final 1
// bit landing exactly on a rate boundary, which always triggers the final
// permutation of the absorbing phase. It does not absorb the variant's
// domain-separation bits; callers absorb those via absorbBits before
// calling pad.
//
// §4.2's edge case — the mandatory 1 bit leaves the cursor at rateBits-1 —
// falls out of this loop with zero iterations, needing no special case.
func (s *sponge) pad() {
	s.absorbBit(1)
	for s.absorbPosBits != s.rateBits-1 {
		s.absorbBit(0)
	}
	s.absorbBit(1)
}

// squeezeBits reads the next nbits bits from the sponge's rate-sized output
// window into out (LSB-first-within-byte, mirroring absorbBits), permuting
// every time the window is exhausted. Must only be called once the sponge
// has been padded and permuted (mode == modeSqueezing, or the first squeeze
// of a fixed-output finalize).
func (s *sponge) squeezeBits(out []byte, nbits int) {
	pos := 0
	for pos < nbits {
		avail := s.rateBits - s.squeezePosBits
		n := nbits - pos
		if n > avail {
			n = avail
		}

		if pos%8 == 0 && s.squeezePosBits%8 == 0 && n%8 == 0 {
			copy(out[pos/8:pos/8+n/8], s.state[s.squeezePosBits/8:s.squeezePosBits/8+n/8])
		} else {
			for i := 0; i < n; i++ {
				setBit(out, pos+i, bitAt(s.state[:], s.squeezePosBits+i))
			}
		}

		s.squeezePosBits += n
		pos += n
		if s.squeezePosBits == s.rateBits {
			keccakF1600(&s.state)
			s.squeezePosBits = 0
		}
	}
}

// bitAt returns bit i (0 or 1) of the LSB-first-within-byte packed buffer
// b: bit i lives at bit (i%8) of byte b[i/8].
func bitAt(b []byte, i int) byte {
	return (b[i/8] >> uint(i%8)) & 1
}

// setBit writes bit i (0 or 1) of the LSB-first-within-byte packed buffer
// b, clearing or setting bit (i%8) of byte b[i/8].
func setBit(b []byte, i int, bit byte) {
	mask := byte(1) << uint(i%8)
	if bit != 0 {
		b[i/8] |= mask
	} else {
		b[i/8] &^= mask
	}
}

// flipBit XORs a 1 bit into bit i of the LSB-first-within-byte packed
// buffer b.
func flipBit(b []byte, i int) {
	b[i/8] ^= byte(1) << uint(i%8)
}

// xorBytesAt XORs src into dst starting at byte offset destByte. The main
// loop is unrolled to handle 8 bytes per iteration, each XORed as a single
// byte (no uint64 loads); a byte-at-a-time loop handles the remainder.
func xorBytesAt(dst []byte, destByte int, src []byte) {
	n := len(src)
	i := 0
	for ; i+8 <= n; i += 8 {
		d := dst[destByte+i : destByte+i+8]
		d[0] ^= src[i]
		d[1] ^= src[i+1]
		d[2] ^= src[i+2]
		d[3] ^= src[i+3]
		d[4] ^= src[i+4]
		d[5] ^= src[i+5]
		d[6] ^= src[i+6]
		d[7] ^= src[i+7]
	}
	for ; i < n; i++ {
		dst[destByte+i] ^= src[i]
	}
}
