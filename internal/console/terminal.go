// Package console implements the numbered-menu loop and the line
// prompter shared by the three programs.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput marks a value that could not be parsed as the
// requested type. The menu reports it and moves on to the next choice.
var ErrInvalidInput = errors.New("invalid input")

// Terminal reads answers line by line from In and writes prompts and
// results to Out. Errors go to Err.
type Terminal struct {
	in  *bufio.Reader
	Out io.Writer
	Err io.Writer
}

// NewTerminal returns a Terminal over the given streams.
func NewTerminal(in io.Reader, out, errOut io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), Out: out, Err: errOut}
}

// Printf writes a formatted message to Out.
func (t *Terminal) Printf(format string, args ...any) {
	fmt.Fprintf(t.Out, format, args...)
}

// Println writes a line to Out.
func (t *Terminal) Println(args ...any) {
	fmt.Fprintln(t.Out, args...)
}

// Line prints prompt and returns the next input line without its line
// terminator. Other whitespace is kept as typed. io.EOF is returned once
// the input is exhausted.
func (t *Terminal) Line(prompt string) (string, error) {
	fmt.Fprint(t.Out, prompt)

	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Int prompts for a whole number.
func (t *Terminal) Int(prompt string) (int, error) {
	line, err := t.number(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidInput, line)
	}
	return n, nil
}

// Int64 prompts for an identifier.
func (t *Terminal) Int64(prompt string) (int64, error) {
	line, err := t.number(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidInput, line)
	}
	return n, nil
}

// Decimal prompts for a decimal amount such as a price or a salary.
func (t *Terminal) Decimal(prompt string) (decimal.Decimal, error) {
	line, err := t.number(prompt)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(line)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, line)
	}
	return d, nil
}

// number reads a line for one of the numeric prompts, where surrounding
// spaces carry no meaning.
func (t *Terminal) number(prompt string) (string, error) {
	line, err := t.Line(prompt)
	return strings.TrimSpace(line), err
}
