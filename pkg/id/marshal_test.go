package id

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
)

var (
	_ encoding.TextMarshaler     = ID{}
	_ encoding.TextUnmarshaler   = (*ID)(nil)
	_ encoding.TextAppender      = ID{}
	_ encoding.BinaryMarshaler   = ID{}
	_ encoding.BinaryUnmarshaler = (*ID)(nil)
	_ sql.Scanner                = (*ID)(nil)
	_ driver.Valuer              = ID{}
)

const known = "01ARZ3NDEKTSV4RRFFQ69G5FAV"

func TestJSON(t *testing.T) {
	type record struct {
		ID   ID   `json:"id"`
		Refs []ID `json:"refs"`
	}
	in := record{ID: MustParse(known), Refs: []ID{Nil, MustParse(known)}}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"id":"01ARZ3NDEKTSV4RRFFQ69G5FAV","refs":["00000000000000000000000000","01ARZ3NDEKTSV4RRFFQ69G5FAV"]}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var out record
	if err := json.Unmarshal([]byte(`{"id":"01arz3ndektsv4rrffq69g5fav","refs":[]}`), &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if out.ID != in.ID {
		t.Errorf("Unmarshal() ID = %s, want %s", out.ID, in.ID)
	}

	err = json.Unmarshal([]byte(`{"id":"TOOSHORT"}`), &out)
	if !errors.Is(err, ErrInvalidLength) {
		t.Errorf("Unmarshal(short) error = %v, want ErrInvalidLength", err)
	}
}

func TestAppendText(t *testing.T) {
	b, err := MustParse(known).AppendText([]byte("id="))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "id="+known {
		t.Errorf("AppendText() = %q", b)
	}
}

func TestBinary(t *testing.T) {
	v := MustParse(known)
	data, err := v.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	var got ID
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatal(err)
	}
	if got != v {
		t.Errorf("binary round trip = %s, want %s", got, v)
	}
	if err := got.UnmarshalBinary(data[:15]); !errors.Is(err, ErrInvalidBinaryLength) {
		t.Errorf("UnmarshalBinary(15 bytes) error = %v", err)
	}
}

func TestScan(t *testing.T) {
	v := MustParse(known)
	tests := []struct {
		name    string
		src     any
		want    ID
		wantErr error
	}{
		{"nil", nil, Nil, nil},
		{"string", known, v, nil},
		{"lower string", "01arz3ndektsv4rrffq69g5fav", v, nil},
		{"text bytes", []byte(known), v, nil},
		{"binary bytes", v.Bytes(), v, nil},
		{"short string", "abc", Nil, ErrInvalidLength},
		{"bad char", "01ARZ3NDEKTSV4RRFFQ69G5F@V", Nil, ErrInvalidCharacter},
		{"int", 42, Nil, ErrUnsupportedScanType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustParse("7ZZZZZZZZZZZZZZZZZZZZZZZZZ")
			err := got.Scan(tt.src)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Scan(%v) error = %v, want %v", tt.src, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Scan(%v) error = %v", tt.src, err)
			}
			if got != tt.want {
				t.Errorf("Scan(%v) = %s, want %s", tt.src, got, tt.want)
			}
		})
	}
}

func TestValue(t *testing.T) {
	got, err := MustParse(known).Value()
	if err != nil {
		t.Fatal(err)
	}
	if got != known {
		t.Errorf("Value() = %v, want %s", got, known)
	}
}

func TestUUID(t *testing.T) {
	v := MustParse(known)
	u := v.UUID()
	if [16]byte(u) != [16]byte(v) {
		t.Errorf("UUID() bytes = %x, want %x", u[:], v[:])
	}
	if FromUUID(u) != v {
		t.Errorf("FromUUID(UUID()) = %s, want %s", FromUUID(u), v)
	}

	parsed := uuid.MustParse("01563e3a-b5d3-d676-4c61-efb99302bd5b")
	if got := FromUUID(parsed).String(); got != known {
		t.Errorf("FromUUID(%s) = %s, want %s", parsed, got, known)
	}
}
