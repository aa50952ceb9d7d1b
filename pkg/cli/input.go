package cli

import (
	"bufio"
	"io"
	"strings"
)

// inputLine is one non-blank line read from an input stream.
type inputLine struct {
	Num  int
	Text string
}

// readLines returns the trimmed, non-blank lines of r.
func readLines(r io.Reader) ([]inputLine, error) {
	var lines []inputLine
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		lines = append(lines, inputLine{Num: n, Text: text})
	}
	return lines, sc.Err()
}

// argsOrStdin uses args as lines when present, otherwise reads r.
func argsOrStdin(args []string, r io.Reader) ([]inputLine, error) {
	if len(args) == 0 {
		return readLines(r)
	}
	lines := make([]inputLine, len(args))
	for i, arg := range args {
		lines[i] = inputLine{Num: i + 1, Text: arg}
	}
	return lines, nil
}
