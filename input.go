package aoc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

// ErrTerminalInput is returned when standard input is requested but attached
// to a terminal.
var ErrTerminalInput = errors.New("standard input is a terminal; pipe the puzzle input or pass a file")

// DefaultInputPath returns where the input of a day lives under dir.
func DefaultInputPath(dir string, year, day int) string {
	return filepath.Join(dir, fmt.Sprint(year), fmt.Sprintf("day%02d.txt", day))
}

// OpenInput opens the puzzle input. A path of "-" reads stdin (os.Stdin when
// nil), an empty path opens defaultPath.
func OpenInput(path, defaultPath string, stdin *os.File) (io.ReadCloser, error) {
	switch path {
	case "-":
		if stdin == nil {
			stdin = os.Stdin
		}
		if term.IsTerminal(int(stdin.Fd())) {
			return nil, ErrTerminalInput
		}
		return io.NopCloser(stdin), nil
	case "":
		path = defaultPath
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return f, nil
}

func readInput(opts Options, year, day int) ([]byte, error) {
	rc, err := OpenInput(opts.Input, DefaultInputPath(opts.InputDir, year, day), opts.Stdin)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return b, nil
}

// Lines splits input into lines, dropping the final newline and any carriage
// returns.
func Lines(in []byte) []string {
	s := strings.TrimRight(string(in), "\r\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Paragraphs groups lines into blocks separated by blank lines. Blank lines
// themselves are dropped.
func Paragraphs(lines []string) [][]string {
	var out [][]string
	var cur []string
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			if cur != nil {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if cur != nil {
		out = append(out, cur)
	}
	return out
}
