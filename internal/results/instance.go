// internal/results/instance.go
// Package: results
package results

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedInstance is returned when an instance name does not follow the
// <prefix>_<kind>_<value>[_...] convention used by the instance generator.
var ErrMalformedInstance = errors.New("malformed instance name")

// paramToken is the zero-based position of the varied parameter in an
// underscore-delimited instance name, e.g. test_items_10_run1 -> 10.
const paramToken = 2

// ExtractParam returns the integer parameter encoded in an instance name.
func ExtractParam(instance string) (int, error) {
	parts := strings.Split(instance, "_")
	if len(parts) <= paramToken {
		return 0, fmt.Errorf("%w: %q has %d underscore-delimited tokens, need at least %d",
			ErrMalformedInstance, instance, len(parts), paramToken+1)
	}
	v, err := strconv.Atoi(strings.TrimSpace(parts[paramToken]))
	if err != nil {
		return 0, fmt.Errorf("%w: %q token %q is not an integer",
			ErrMalformedInstance, instance, parts[paramToken])
	}
	return v, nil
}

// Derive attaches the extracted parameter to every row under xColumn.
// The first malformed instance fails the whole table.
func Derive(rows []Row, xColumn string) (*Table, error) {
	t := &Table{
		XColumn:      xColumn,
		Observations: make([]Observation, 0, len(rows)),
	}
	for i, r := range rows {
		x, err := ExtractParam(r.Instance)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		t.Observations = append(t.Observations, Observation{Row: r, X: x})
	}
	return t, nil
}

// Load reads path and derives xColumn in one step.
func Load(path, xColumn string) (*Table, error) {
	rows, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Derive(rows, xColumn)
}
