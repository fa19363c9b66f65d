package sha3bit

// XOF parameter table, FIPS 202 §6 Table 3.
const (
	shakeDomain    = 0b1111 // D = 1, 1, 1, 1
	shakeDomainLen = 4

	rateShake128 = 1344
	rateShake256 = 1088
)

// XOF is an extendable-output SHA-3 hash instance (SHAKE128/SHAKE256),
// constructed with NewShake128/NewShake256. It starts Absorbing;
// Update/UpdateBits may be called any number of times; Finalize pads and
// permutes, transitioning to Squeezing, after which GetBits and Reader.Read
// may be called to pull arbitrarily many output bits. Once Squeezing, any
// further Update/UpdateBits/Finalize call returns ErrStateViolation.
type XOF struct {
	sp sponge
}

func newXOF(rateBits int) *XOF {
	return &XOF{sp: newSponge(rateBits)}
}

// NewShake128 returns a fresh SHAKE128 XOF instance.
func NewShake128() *XOF { return newXOF(rateShake128) }

// NewShake256 returns a fresh SHAKE256 XOF instance.
func NewShake256() *XOF { return newXOF(rateShake256) }

// Update absorbs len(data)*8 bits, the LSB-first bit expansion of data.
// Returns ErrStateViolation if not Absorbing.
func (x *XOF) Update(data []byte) error {
	if x.sp.mode != modeAbsorbing {
		return ErrStateViolation
	}
	x.sp.absorbBits(data, 8*len(data))
	return nil
}

// UpdateBits absorbs exactly nbits bits from bits (LSB-first-within-byte).
// Returns ErrStateViolation if not Absorbing, or ErrInvalidArgument if
// nbits is negative.
func (x *XOF) UpdateBits(bits []byte, nbits int) error {
	if x.sp.mode != modeAbsorbing {
		return ErrStateViolation
	}
	if nbits < 0 {
		return ErrInvalidArgument
	}
	x.sp.absorbBits(bits, nbits)
	return nil
}

// Finalize pads and permutes the sponge, transitioning it from Absorbing to
// Squeezing. Returns ErrStateViolation if not Absorbing.
func (x *XOF) Finalize() error {
	if x.sp.mode != modeAbsorbing {
		return ErrStateViolation
	}
	x.sp.absorbBits([]byte{shakeDomain}, shakeDomainLen)
	x.sp.pad()
	x.sp.squeezePosBits = 0
	x.sp.mode = modeSqueezing
	return nil
}

// GetBits appends exactly nbits freshly squeezed bits to sink (sink must
// have at least ceil(nbits/8) bytes of capacity at offset 0; GetBits
// overwrites bits 0..nbits-1 of sink, LSB-first within each byte, rather
// than appending in the slice-growth sense; when nbits is not a multiple
// of 8, the remaining high bits of the last byte keep their old values). Successive calls continue the same output stream: GetBits(n1)
// then GetBits(n2) yields the same bits as one GetBits(n1+n2) call. Returns
// ErrStateViolation if not Squeezing, or ErrInvalidArgument if nbits is
// negative.
func (x *XOF) GetBits(sink []byte, nbits int) error {
	if x.sp.mode != modeSqueezing {
		return ErrStateViolation
	}
	if nbits < 0 {
		return ErrInvalidArgument
	}
	x.sp.squeezeBits(sink, nbits)
	return nil
}

// Reader returns a byte iterator over this XOF's output stream, sharing its
// squeeze cursor with GetBits. It may be created in any mode; its Read
// returns ErrStateViolation until the XOF is Squeezing. Any Read fails with
// ErrInvalidArgument if the shared cursor is not currently byte-aligned —
// mixing GetBits calls with odd bit counts and the byte iterator is only
// well-defined at byte boundaries, per §9.
func (x *XOF) Reader() *Reader {
	return &Reader{x: x}
}

// Reader pulls an indefinite stream of output bytes from a XOF, one Read
// call at a time; it never returns io.EOF — a SHAKE instance has no
// terminal state once squeezing.
type Reader struct {
	x *XOF
}

// Read fills p with the next len(p) output bytes. Returns ErrStateViolation
// if the underlying XOF is not Squeezing, or ErrInvalidArgument if the
// shared squeeze cursor is not byte-aligned.
func (r *Reader) Read(p []byte) (int, error) {
	if r.x.sp.mode != modeSqueezing {
		return 0, ErrStateViolation
	}
	if r.x.sp.squeezePosBits%8 != 0 {
		return 0, ErrInvalidArgument
	}
	r.x.sp.squeezeBits(p, 8*len(p))
	return len(p), nil
}
