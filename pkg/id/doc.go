// Package id provides a 128-bit, time-ordered, lexicographically sortable
// identifier and its text codec.
//
// # Format
//
// An ID is 16 bytes: a 48-bit big-endian millisecond timestamp followed by
// 80 bits of randomness.
//
//	bytes[0:6]   timestamp, milliseconds since the Unix epoch, MSB first
//	bytes[6:16]  randomness, verbatim
//
// Byte-wise comparison of two IDs therefore orders them by timestamp first
// and by randomness on a tie. The 26-character text form uses Crockford's
// base32 alphabet (0-9, A-Z without I, L, O, U) and preserves that order
// under plain string comparison:
//
//	01ARZ3NDEKTSV4RRFFQ69G5FAV
//	TTTTTTTTTTRRRRRRRRRRRRRRRR
//
// Timestamps above 2^48-1 silently lose their high bits when packed.
// Decoding is case-insensitive and also accepts I, L (as 1) and O (as 0).
//
// # Generation
//
// A Generator joins a Clock and an Entropy source. Construct one per
// process and share it:
//
//	g := id.NewGenerator()
//	v := g.New()
//	s := v.String()       // 26-character text form
//	b := v.Bytes()        // 16-byte binary form
//	p, err := id.Parse(s) // p == v
//
// The default entropy source, Mixer, hashes several weak signals (sub-second
// time, a counter, the calling thread) and is NOT cryptographically secure.
// It reduces collisions between rapid and concurrent calls; it does not make
// IDs unpredictable. Use WithEntropy(CryptoEntropy{}) when IDs must not be
// guessable.
package id
