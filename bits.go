package sha3bit

import (
	"io"

	"github.com/icza/bitio"
)

// BitReader pulls a bit stream from an io.Reader and normalizes it to this
// package's internal LSB-first-within-byte convention. Most external bit
// tooling, including bitio itself, treats a byte's bits MSB-first; §9 of
// the design requires translating at exactly this boundary rather than
// propagating that order into the sponge.
type BitReader struct {
	r *bitio.Reader
}

// NewBitReader wraps r as a BitReader.
func NewBitReader(r io.Reader) *BitReader {
	return &BitReader{r: bitio.NewReader(r)}
}

// ReadBits reads the next nbits bits from the underlying stream (MSB-first,
// as bitio delivers them) and returns them packed LSB-first-within-byte —
// ready to hand directly to Hasher.UpdateBits or XOF.UpdateBits. Returns
// ErrInvalidArgument if nbits is negative, or the underlying read error.
func (br *BitReader) ReadBits(nbits int) ([]byte, error) {
	if nbits < 0 {
		return nil, ErrInvalidArgument
	}
	out := make([]byte, (nbits+7)/8)
	for i := 0; i < nbits; i++ {
		bit, err := br.r.ReadBool()
		if err != nil {
			return nil, err
		}
		if bit {
			setBit(out, i, 1)
		}
	}
	return out, nil
}

// BitWriter emits a bit stream to an io.Writer, translating from this
// package's internal LSB-first-within-byte convention (what GetBits
// produces) to bitio's MSB-first wire order.
type BitWriter struct {
	w *bitio.Writer
}

// NewBitWriter wraps w as a BitWriter.
func NewBitWriter(w io.Writer) *BitWriter {
	return &BitWriter{w: bitio.NewWriter(w)}
}

// WriteBits writes the first nbits bits of bits (LSB-first-within-byte, the
// layout GetBits/Finalize produce) to the underlying stream. Returns
// ErrInvalidArgument if nbits is negative, or the underlying write error.
func (bw *BitWriter) WriteBits(bits []byte, nbits int) error {
	if nbits < 0 {
		return ErrInvalidArgument
	}
	for i := 0; i < nbits; i++ {
		if err := bw.w.WriteBool(bitAt(bits, i) != 0); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes any partial final byte, padding with zero bits.
func (bw *BitWriter) Close() error {
	return bw.w.Close()
}
