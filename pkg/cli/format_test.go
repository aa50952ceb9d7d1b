package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/getmockd/sortid/internal/cliconfig"
	"github.com/getmockd/sortid/pkg/id"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in      string
		want    uint64
		wantErr bool
	}{
		{"0", 0, false},
		{" 1469922850259 ", 1469922850259, false},
		{"281474976710655", id.MaxTimestamp, false},
		{"281474976710656", 0, true},
		{"2016-07-30T23:54:10.259Z", 1469922850259, false},
		{"2016-07-31T01:54:10.259+02:00", 1469922850259, false},
		{"1970-01-01T00:00:00Z", 0, false},
		{"1960-01-01T00:00:00Z", 0, true},
		{"-1", 0, true},
		{"", 0, true},
		{"2016-07-30", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseTimestamp(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseTimestamp(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseTimestamp(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatID(t *testing.T) {
	v := id.MustParse(knownID)
	tests := []struct {
		format string
		want   string
	}{
		{cliconfig.FormatText, knownID},
		{cliconfig.FormatHex, "01563e3ab5d3d6764c61efb99302bd5b"},
		{cliconfig.FormatUUID, "01563e3a-b5d3-d676-4c61-efb99302bd5b"},
		{"", knownID},
	}
	for _, tt := range tests {
		if got := formatID(v, tt.format); got != tt.want {
			t.Errorf("formatID(%q) = %s, want %s", tt.format, got, tt.want)
		}
	}
}

func TestErrorKind(t *testing.T) {
	_, lenErr := id.Parse("short")
	_, charErr := id.Parse("01ARZ3NDEKTSV4RRFFQ69G5FAU")
	other := errors.New("boom")

	if got := errorKind(lenErr); got != "invalid length" {
		t.Errorf("errorKind(length) = %q", got)
	}
	if got := errorKind(charErr); got != "invalid character" {
		t.Errorf("errorKind(character) = %q", got)
	}
	if got := errorKind(other); got != "boom" {
		t.Errorf("errorKind(other) = %q", got)
	}
}

func TestReadLines(t *testing.T) {
	lines, err := readLines(strings.NewReader("a\n\n  b \r\n\t\nc"))
	if err != nil {
		t.Fatal(err)
	}
	want := []inputLine{{1, "a"}, {3, "b"}, {5, "c"}}
	if len(lines) != len(want) {
		t.Fatalf("readLines() = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %v, want %v", i, lines[i], want[i])
		}
	}
}
