// Package project resolves the on-disk layout around a generation run: which
// extension the positional argument names, where the template for it lives,
// and the fixed global config name.
package project

import (
	"fmt"
	"path/filepath"
	"strings"
)

// GlobalConfigName is the fixed file name of the global config inside a
// project directory.
const GlobalConfigName = "global.config"

// Extension extracts the target extension from the positional argument:
// either a bare extension ("sh") or a path whose final dot suffix is the
// extension ("etc/config.template.sh").
func Extension(arg string) (string, error) {
	trimmed := strings.TrimSpace(arg)
	if trimmed == "" {
		return "", fmt.Errorf("project: empty target argument")
	}

	base := filepath.Base(trimmed)
	if idx := strings.LastIndex(base, "."); idx >= 0 {
		base = base[idx+1:]
	}
	if base == "" {
		return "", fmt.Errorf("project: no extension in argument %q", arg)
	}
	return base, nil
}

// FindTemplate locates the single *.template.<ext> file inside dir. Zero
// matches or more than one is an error so a run never guesses between
// candidate templates.
func FindTemplate(dir, ext string) (string, error) {
	pattern := filepath.Join(dir, "*.template."+ext)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("project: scan for templates: %w", err)
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project: no template matching %q", pattern)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project: ambiguous templates for extension %q: %s", ext, strings.Join(matches, ", "))
	}
}
