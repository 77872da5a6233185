package config

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
	attrListPattern   = regexp.MustCompile(`^[a-z]+(,[a-z]+)*$`)
	referencePattern  = regexp.MustCompile(`\$[A-Za-z][A-Za-z0-9_]*`)
)

var quoteEscaper = strings.NewReplacer(`"`, `\"`, `'`, `\'`)

// Option customises a Parse call.
type Option func(*options)

type options struct {
	reserved   map[string]string
	strictEval bool
}

// WithReservedNames supplies names the config may not redefine, typically a
// snapshot of the host environment (see ReservedFromEnviron). The map is read
// only for key presence.
func WithReservedNames(names map[string]string) Option {
	return func(o *options) {
		o.reserved = names
	}
}

// WithStrictEval makes an eval reference to an undefined (or not yet defined)
// variable a ParseError instead of expanding it to empty text.
func WithStrictEval() Option {
	return func(o *options) {
		o.strictEval = true
	}
}

// Parse reads the global config text into its ordered entry sequence. The
// returned slice preserves file order; the first malformed line aborts the
// parse with a ParseError or DuplicateVariableError pointing at it.
func Parse(text string, opts ...Option) ([]Entry, error) {
	var cfg options
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	symbols := make(map[string]string)
	var entries []Entry

	for i, line := range strings.Split(text, "\n") {
		lineNo := i + 1

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		definition, rawValue, found := strings.Cut(line, "=")
		if !found {
			return nil, ParseError{Line: lineNo, Reason: "parse error"}
		}

		name, attrs, reason := splitDefinition(strings.TrimSpace(definition))
		if reason != "" {
			return nil, ParseError{Line: lineNo, Reason: reason}
		}
		if !identifierPattern.MatchString(name) {
			return nil, ParseError{Line: lineNo, Reason: "invalid variable name"}
		}
		if _, exists := symbols[name]; exists {
			return nil, DuplicateVariableError{Name: name, Line: lineNo}
		}
		if _, exists := cfg.reserved[name]; exists {
			return nil, DuplicateVariableError{Name: name, Line: lineNo}
		}

		value := quoteEscaper.Replace(rawValue)
		if attrs.Has(AttrEval) {
			expanded, err := expandReferences(value, symbols, cfg.strictEval, lineNo)
			if err != nil {
				return nil, err
			}
			value = expanded
		}

		symbols[name] = value
		entries = append(entries, Entry{
			Name:       name,
			Value:      value,
			Attributes: attrs,
			Line:       lineNo,
		})
	}

	return entries, nil
}

// splitDefinition separates the variable name from a trailing [attr,...]
// group. The empty reason string signals success.
func splitDefinition(definition string) (string, AttrSet, string) {
	if !strings.HasSuffix(definition, "]") {
		if strings.Contains(definition, "[") {
			return "", nil, "parse error"
		}
		return definition, nil, ""
	}

	open := strings.Index(definition, "[")
	if open < 0 {
		return "", nil, "parse error"
	}

	interior := definition[open+1 : len(definition)-1]
	if !attrListPattern.MatchString(interior) {
		return "", nil, "parse error"
	}

	attrs := make(AttrSet)
	for _, token := range strings.Split(interior, ",") {
		switch Attribute(token) {
		case AttrString, AttrEval:
			attrs[Attribute(token)] = struct{}{}
		default:
			return "", nil, "unknown attribute"
		}
	}

	return definition[:open], attrs, ""
}

// expandReferences substitutes $NAME references with the escaped value of a
// previously defined entry. Unknown references become empty text unless
// strict mode is on.
func expandReferences(value string, symbols map[string]string, strict bool, lineNo int) (string, error) {
	var missing string
	expanded := referencePattern.ReplaceAllStringFunc(value, func(ref string) string {
		name := ref[1:]
		resolved, ok := symbols[name]
		if !ok && missing == "" {
			missing = name
		}
		return resolved
	})

	if strict && missing != "" {
		return "", ParseError{Line: lineNo, Reason: fmt.Sprintf("undefined variable %q", missing)}
	}
	return expanded, nil
}
