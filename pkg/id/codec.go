package id

// alphabet is Crockford's base32 (excludes I, L, O, U).
const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const invalid = 0xFF

// decodeTable maps an input byte to its 5-bit value, or invalid.
// Lower-case letters and the I, L, O aliases are folded in here.
var decodeTable = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalid
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		t[c] = byte(i)
		if c >= 'A' && c <= 'Z' {
			t[c+'a'-'A'] = byte(i)
		}
	}
	for _, c := range []byte{'O', 'o'} {
		t[c] = 0
	}
	for _, c := range []byte{'I', 'i', 'L', 'l'} {
		t[c] = 1
	}
	return t
}()

// Encode returns the 26-character text form of v.
func Encode(v ID) string {
	var dst [EncodedSize]byte
	encode(dst[:], v)
	return string(dst[:])
}

// encode writes the text form of v into dst, which must hold 26 bytes.
func encode(dst []byte, v ID) {
	// Timestamp: ten 5-bit groups, the top two bits of the 50 are zero.
	ms := v.Timestamp()
	for i := 9; i >= 0; i-- {
		dst[i] = alphabet[ms&0x1F]
		ms >>= 5
	}

	// Randomness: 80 bits, exactly 16 symbols.
	var acc uint32
	bits := 0
	n := 10
	for _, b := range v[6:] {
		acc = acc<<8 | uint32(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			dst[n] = alphabet[(acc>>bits)&0x1F]
			n++
		}
	}
}

// Decode parses the 26-character text form of an ID. Decoding is
// case-insensitive; I and L decode as 1 and O as 0. The first character
// carries two bits beyond the 48-bit timestamp range; they are discarded.
func Decode(s string) (ID, error) {
	if len(s) != EncodedSize {
		return Nil, &ParseError{Input: s, Pos: -1, Err: ErrInvalidLength}
	}

	var ms uint64
	for i := 0; i < 10; i++ {
		sym := decodeTable[s[i]]
		if sym == invalid {
			return Nil, &ParseError{Input: s, Pos: i, Err: ErrInvalidCharacter}
		}
		ms = ms<<5 | uint64(sym)
	}

	var random [RandomSize]byte
	var acc uint32
	bits := 0
	n := 0
	for i := 10; i < EncodedSize; i++ {
		sym := decodeTable[s[i]]
		if sym == invalid {
			return Nil, &ParseError{Input: s, Pos: i, Err: ErrInvalidCharacter}
		}
		acc = acc<<5 | uint32(sym)
		bits += 5
		if bits >= 8 && n < RandomSize {
			bits -= 8
			random[n] = byte(acc >> bits)
			n++
		}
	}

	return FromParts(ms, random), nil
}

// Parse is an alias for Decode.
func Parse(s string) (ID, error) {
	return Decode(s)
}

// MustParse is like Parse but panics on malformed input. It is meant for
// package-level variables and tests.
func MustParse(s string) ID {
	v, err := Decode(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Valid reports whether s decodes as an ID.
func Valid(s string) bool {
	if len(s) != EncodedSize {
		return false
	}
	for i := 0; i < len(s); i++ {
		if decodeTable[s[i]] == invalid {
			return false
		}
	}
	return true
}

// String returns the canonical upper-case text form.
func (v ID) String() string {
	return Encode(v)
}
