// Package response provides helpers for writing consistent console output.
//
// Every handler prints either a table or a status line. Rather than
// repeating the formatting in every handler, it is centralised here.
package response

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aanand-mishra/records-console/internal/storage"
)

// Separator delimits the columns of every table row.
const Separator = "\t"

// WriteTable writes a header line followed by one line per row, with
// columns joined by Separator. Rows are written in the order given.
func WriteTable(w io.Writer, header []string, rows [][]string) error {
	if _, err := fmt.Fprintln(w, strings.Join(header, Separator)); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, Separator)); err != nil {
			return err
		}
	}
	return nil
}

// WriteError reports err on w together with every error it wraps, one
// cause per line, so the operator sees the full chain down to the driver.
//
// Example output:
//
//	Transaction rolled back due to error.
//	Error: transaction rolled back: UNIQUE constraint failed: Product.ProductID
//	  caused by: UNIQUE constraint failed: Product.ProductID
func WriteError(w io.Writer, err error) {
	if errors.Is(err, storage.ErrRolledBack) {
		fmt.Fprintln(w, "Transaction rolled back due to error.")
	}
	fmt.Fprintf(w, "Error: %s\n", err)

	for _, cause := range causes(err) {
		fmt.Fprintf(w, "  caused by: %s\n", cause)
	}
}

// causes flattens the wrap tree of err below the top-level error,
// skipping sentinels that carry no detail of their own.
func causes(err error) []error {
	var out []error

	var walk func(error)
	walk = func(e error) {
		var children []error
		switch x := e.(type) {
		case interface{ Unwrap() []error }:
			children = x.Unwrap()
		case interface{ Unwrap() error }:
			if c := x.Unwrap(); c != nil {
				children = []error{c}
			}
		}
		for _, c := range children {
			if c == storage.ErrRolledBack {
				continue
			}
			out = append(out, c)
			walk(c)
		}
	}
	walk(err)

	return out
}
