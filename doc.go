// Package sha3bit implements the SHA-3 family of cryptographic hash
// functions and their extendable-output (XOF) siblings, as standardized in
// FIPS PUB 202: SHA3-224, SHA3-256, SHA3-384, SHA3-512, SHAKE128, and
// SHAKE256.
//
// Unlike most Go SHA-3 packages, inputs and outputs are first-class at the
// bit level, not only the byte level: Update/UpdateBits and Finalize/
// GetBits accept and emit bit counts that need not be multiples of 8. Byte
// operations are simply the common case where the bit count happens to be
// a multiple of 8 — UpdateBits on the LSB-first bit expansion of a byte
// string always produces the same digest as Update on that string.
//
// Hashing itself performs no I/O and works on the caller's buffers and a
// fixed-size internal state; the only I/O is in the BitReader/BitWriter
// adapters, which read from and write to a caller-supplied io.Reader or
// io.Writer. It is not safe to share a single
// Hasher or XOF instance across goroutines without external
// synchronization, but independent instances share no state and may be
// driven concurrently.
package sha3bit
