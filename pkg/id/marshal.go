package id

import (
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"
)

// AppendText appends the text form of v to b.
func (v ID) AppendText(b []byte) ([]byte, error) {
	n := len(b)
	b = append(b, make([]byte, EncodedSize)...)
	encode(b[n:], v)
	return b, nil
}

// MarshalText implements encoding.TextMarshaler. JSON encodes IDs as strings
// through it.
func (v ID) MarshalText() ([]byte, error) {
	return v.AppendText(make([]byte, 0, EncodedSize))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *ID) UnmarshalText(text []byte) error {
	parsed, err := Decode(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v ID) MarshalBinary() ([]byte, error) {
	return v.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *ID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Scan implements sql.Scanner. It accepts the text form as string or
// []byte, the 16-byte binary form, and nil (which yields Nil).
func (v *ID) Scan(src any) error {
	switch x := src.(type) {
	case nil:
		*v = Nil
		return nil
	case string:
		return v.UnmarshalText([]byte(x))
	case []byte:
		if len(x) == BinarySize {
			return v.UnmarshalBinary(x)
		}
		return v.UnmarshalText(x)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedScanType, src)
	}
}

// Value implements driver.Valuer using the text form.
func (v ID) Value() (driver.Value, error) {
	return v.String(), nil
}

// UUID reinterprets the 16 bytes of v as a UUID. Version and variant bits are
// left as they are, so the result is generally not a valid RFC 9562 UUID; it
// is meant for storage columns typed as UUID.
func (v ID) UUID() uuid.UUID {
	return uuid.UUID(v)
}

// FromUUID reinterprets the 16 bytes of u as an ID.
func FromUUID(u uuid.UUID) ID {
	return ID(u)
}
