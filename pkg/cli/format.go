package cli

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/getmockd/sortid/internal/cliconfig"
	"github.com/getmockd/sortid/pkg/id"
)

// formatID renders v in one of the cliconfig output formats.
func formatID(v id.ID, format string) string {
	switch format {
	case cliconfig.FormatHex:
		return hex.EncodeToString(v.Bytes())
	case cliconfig.FormatUUID:
		return v.UUID().String()
	default:
		return v.String()
	}
}

// errorKind names the decode failure for humans and JSON output.
func errorKind(err error) string {
	switch {
	case errors.Is(err, id.ErrInvalidLength):
		return "invalid length"
	case errors.Is(err, id.ErrInvalidCharacter):
		return "invalid character"
	default:
		return err.Error()
	}
}

// parseTimestamp accepts milliseconds since the epoch or an RFC 3339 time.
func parseTimestamp(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if ms, err := strconv.ParseUint(s, 10, 64); err == nil {
		if ms > id.MaxTimestamp {
			return 0, fmt.Errorf("timestamp %d exceeds the 48-bit maximum %d", ms, id.MaxTimestamp)
		}
		return ms, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q: want milliseconds or RFC 3339", s)
	}
	if err := id.CheckClock(t); err != nil {
		return 0, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	ms := id.Millis(t)
	if ms > id.MaxTimestamp {
		return 0, fmt.Errorf("timestamp %q exceeds the 48-bit maximum", s)
	}
	return ms, nil
}
