// Package input reads the unsigned integers the kata commands operate on.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformed is returned when no unsigned integer could be parsed.
var ErrMalformed = errors.New("invalid input: please enter a non-negative integer")

// ParseUint parses a decimal unsigned integer that fits in bitSize bits.
// Surrounding whitespace and a leading plus sign are accepted.
func ParseUint(s string, bitSize int) (uint64, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "+")
	v, err := strconv.ParseUint(trimmed, 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w (got %q)", ErrMalformed, strings.TrimSpace(s))
	}
	return v, nil
}

// ReadUint reads the first whitespace-delimited token from r and parses it with
// ParseUint. An empty stream is malformed input.
func ReadUint(r io.Reader, bitSize int) (uint64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("reading input: %w", err)
		}
		return 0, fmt.Errorf("%w (no input)", ErrMalformed)
	}
	return ParseUint(sc.Text(), bitSize)
}

// Validator returns a function suitable for form field validation that accepts
// exactly the strings ParseUint accepts.
func Validator(bitSize int) func(string) error {
	return func(s string) error {
		_, err := ParseUint(s, bitSize)
		return err
	}
}
