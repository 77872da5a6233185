// Package splice replaces the interior of a named tag region inside a
// template document. A region is delimited by one line containing
// "<tag> START" and a later line containing "<tag> END"; the marker lines and
// every byte outside the region pass through untouched.
package splice

import (
	"fmt"
	"strings"
)

// TagStructureError reports a template whose markers for one tag are missing,
// duplicated, or out of order.
type TagStructureError struct {
	Tag    string
	Reason string
}

func (e TagStructureError) Error() string {
	return fmt.Sprintf("splice: tag %q: %s", e.Tag, e.Reason)
}

// Option customises a Splice call.
type Option func(*options)

type options struct {
	scanWindow int
}

// WithScanWindow bounds how many lines past the START marker the END marker
// may appear. Zero (the default) scans the whole document.
func WithScanWindow(lines int) Option {
	return func(o *options) {
		o.scanWindow = lines
	}
}

// Splice replaces the interior of the named tag region with replacement and
// returns the new document. Splicing twice with the same replacement yields a
// byte-identical result, since only interior lines change.
func Splice(document, tag, replacement string, opts ...Option) (string, error) {
	var cfg options
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	lines := strings.Split(document, "\n")
	start, err := locateMarker(lines, tag, tag+" START")
	if err != nil {
		return "", err
	}
	end, err := locateMarker(lines, tag, tag+" END")
	if err != nil {
		return "", err
	}

	if end < start {
		return "", TagStructureError{Tag: tag, Reason: "end marker precedes start marker"}
	}
	if end == start {
		return "", TagStructureError{Tag: tag, Reason: "start and end markers share a line"}
	}
	if cfg.scanWindow > 0 && end-start > cfg.scanWindow {
		return "", TagStructureError{
			Tag:    tag,
			Reason: fmt.Sprintf("end marker not found within %d lines of start marker", cfg.scanWindow),
		}
	}

	var b strings.Builder
	b.Grow(len(document) + len(replacement))
	b.WriteString(strings.Join(lines[:start+1], "\n"))
	b.WriteString("\n")
	b.WriteString(replacement)
	b.WriteString("\n")
	b.WriteString(strings.Join(lines[end:], "\n"))
	return b.String(), nil
}

// locateMarker finds the single line containing the marker substring.
func locateMarker(lines []string, tag, marker string) (int, error) {
	found := -1
	for i, line := range lines {
		if !strings.Contains(line, marker) {
			continue
		}
		if found >= 0 {
			return 0, TagStructureError{Tag: tag, Reason: fmt.Sprintf("marker %q appears more than once", marker)}
		}
		found = i
	}
	if found < 0 {
		return 0, TagStructureError{Tag: tag, Reason: fmt.Sprintf("marker %q not found", marker)}
	}
	return found, nil
}
