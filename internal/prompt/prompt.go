// Package prompt asks the user to pick a start and a goal from a numbered
// list and keeps asking until the answer is valid.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sentinel errors returned by ParseSelection.
var (
	// ErrMissingComma indicates the line is not of the form "start,goal".
	ErrMissingComma = errors.New("prompt: expected two numbers separated by a comma")

	// ErrNotNumber indicates a token that is not an integer.
	ErrNotNumber = errors.New("prompt: not a number")

	// ErrOutOfRange indicates an index outside 1..n.
	ErrOutOfRange = errors.New("prompt: index out of range")

	// ErrEmptyList indicates there is nothing to choose from.
	ErrEmptyList = errors.New("prompt: nothing to choose from")
)

// ParseSelection parses "start,goal" where both are 1-based indices into a
// list of n items and returns them 0-based. Surrounding whitespace around
// either number is ignored. start == goal is accepted.
func ParseSelection(line string, n int) (start, goal int, err error) {
	left, right, ok := strings.Cut(strings.TrimSpace(line), ",")
	if !ok {
		return 0, 0, ErrMissingComma
	}
	if start, err = parseIndex(left, n); err != nil {
		return 0, 0, err
	}
	if goal, err = parseIndex(right, n); err != nil {
		return 0, 0, err
	}

	return start, goal, nil
}

func parseIndex(tok string, n int) (int, error) {
	tok = strings.TrimSpace(tok)
	i, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumber, tok)
	}
	if i < 1 || i > n {
		return 0, fmt.Errorf("%w: %d not in 1..%d", ErrOutOfRange, i, n)
	}

	return i - 1, nil
}

// List writes items as a 1-based numbered list.
func List[T any](w io.Writer, items []T) error {
	for i, it := range items {
		if _, err := fmt.Fprintf(w, "%3d) %v\n", i+1, it); err != nil {
			return err
		}
	}

	return nil
}

// Select lists items on out and reads "start,goal" lines from in until one
// parses. Every rejected line is answered with the reason and the question
// is asked again.
//
// Errors:
//   - ErrEmptyList if items is empty.
//   - io.ErrUnexpectedEOF if in ends before a valid answer.
//   - any read error from in or write error to out.
func Select[T any](in io.Reader, out io.Writer, items []T) (start, goal T, err error) {
	if len(items) == 0 {
		return start, goal, ErrEmptyList
	}
	if err = List(out, items); err != nil {
		return start, goal, err
	}

	sc := bufio.NewScanner(in)
	for {
		if _, err = fmt.Fprint(out, "Select start and goal (e.g. 1,3): "); err != nil {
			return start, goal, err
		}
		if !sc.Scan() {
			if err = sc.Err(); err == nil {
				err = io.ErrUnexpectedEOF
			}
			return start, goal, err
		}

		s, g, perr := ParseSelection(sc.Text(), len(items))
		if perr != nil {
			if _, err = fmt.Fprintf(out, "invalid selection: %v\n", perr); err != nil {
				return start, goal, err
			}
			continue
		}

		return items[s], items[g], nil
	}
}
