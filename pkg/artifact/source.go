// Package artifact handles the inputs and output of a generation run: where
// the global config and template texts come from, where the finished document
// goes, and the atomic commit that guards it.
package artifact

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Source identifies where an input text lives so the orchestrator can operate
// on files, fs.FS entries, or in-memory literals without leaking
// implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile   SourceKind = "file"
	SourceKindFS     SourceKind = "fs"
	SourceKindString SourceKind = "string"
)

// MissingInputError reports an input that could not be read.
type MissingInputError struct {
	Location string
	Err      error
}

func (e MissingInputError) Error() string {
	return fmt.Sprintf("artifact: input %s unreadable: %v", e.Location, e.Err)
}

func (e MissingInputError) Unwrap() error {
	return e.Err
}

type fileSource struct {
	path string
}

func (s fileSource) Kind() SourceKind { return SourceKindFile }
func (s fileSource) Location() string { return s.path }

// FromFile returns a Source pointing to an on-disk path.
func FromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	fsys fs.FS
	name string
}

func (s fsSource) Kind() SourceKind { return SourceKindFS }
func (s fsSource) Location() string { return s.name }

// FromFS returns a Source identifying a resource inside an fs.FS.
func FromFS(fsys fs.FS, name string) Source {
	return fsSource{fsys: fsys, name: name}
}

type stringSource struct {
	label string
	text  string
}

func (s stringSource) Kind() SourceKind { return SourceKindString }
func (s stringSource) Location() string { return s.label }

// FromString returns an in-memory Source. The label only appears in error
// messages and provenance.
func FromString(label, text string) Source {
	return stringSource{label: label, text: text}
}

// Load reads the text a Source points at, wrapping read failures in
// MissingInputError so callers can classify them.
func Load(ctx context.Context, src Source) (string, error) {
	if src == nil {
		return "", fmt.Errorf("artifact: source is required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch s := src.(type) {
	case stringSource:
		return s.text, nil
	case fsSource:
		data, err := fs.ReadFile(s.fsys, s.name)
		if err != nil {
			return "", MissingInputError{Location: s.name, Err: err}
		}
		return string(data), nil
	case fileSource:
		data, err := os.ReadFile(s.path)
		if err != nil {
			return "", MissingInputError{Location: s.path, Err: err}
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(src.Location())
		if err != nil {
			return "", MissingInputError{Location: src.Location(), Err: err}
		}
		return string(data), nil
	}
}
