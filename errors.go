package sha3bit

import "errors"

// Mode-violation and argument errors this package returns, matching §7's
// three-entry taxonomy. Every returning operation documents which of these
// it can produce; check with errors.Is.
var (
	// ErrStateViolation is returned when an operation is called in the
	// wrong sponge mode — Update/UpdateBits/Finalize after a fixed-output
	// hash has already finalized, Update/UpdateBits/Finalize on a XOF that
	// is already squeezing, or GetBits/Read before a XOF's Finalize has
	// transitioned it into squeezing. The failing call changes nothing.
	// Modes only move forward, so a finalized Hasher or a squeezing XOF
	// returns this error for every later call of the rejected kind.
	ErrStateViolation = errors.New("sha3bit: operation invalid in current mode")

	// ErrBufferTooSmall is returned by a fixed-output Finalize when the
	// destination buffer is smaller than the digest. No state is mutated:
	// the caller may retry Finalize with a larger buffer.
	ErrBufferTooSmall = errors.New("sha3bit: output buffer smaller than digest size")

	// ErrInvalidArgument is returned for a nonsensical bit count, such as a
	// negative request or a byte-iterator Read while the XOF's squeeze
	// cursor sits mid-byte.
	ErrInvalidArgument = errors.New("sha3bit: invalid argument")
)
