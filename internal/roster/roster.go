// Package roster reads the list of participant names.
//
// A roster is plain text with one name per line. Everything from the first
// '#' on a line is a comment. Surrounding whitespace is trimmed and lines
// that end up empty are skipped.
package roster

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Stdin is the path that makes Load read from standard input.
const Stdin = "-"

// DefaultPath is the roster read when no input is configured.
const DefaultPath = "white_elephant.txt"

const bom = "\uFEFF"

// LoadError wraps a failure to read a roster.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return "failed to read roster " + e.Path + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads the roster at path. The special path "-" reads standard input.
func Load(path string) ([]string, error) {
	if path == Stdin {
		return load(path, os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	return load(path, f)
}

func load(path string, r io.Reader) ([]string, error) {
	names, err := Parse(r)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return names, nil
}

// Parse reads names from r, preserving their order.
// It returns an empty slice, never nil, when no line holds a name.
func Parse(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	const maxLine = 1024 * 1024
	scanner.Buffer(make([]byte, 64*1024), maxLine)

	names := []string{}
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, bom)
			first = false
		}
		if name := ParseLine(line); name != "" {
			names = append(names, name)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return names, nil
}

// ParseLine returns the name held by a single roster line, or "" if the line
// is blank or only a comment.
func ParseLine(line string) string {
	before, _, _ := strings.Cut(line, "#")
	return strings.TrimSpace(before)
}
