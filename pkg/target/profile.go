package target

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-confgen/pkg/config"
)

// Placeholders recognised inside declaration templates. Substitution is a
// single pass, so a name or value containing the placeholder text is never
// rescanned.
const (
	placeholderName  = "NAME"
	placeholderValue = "VALUE"
)

// Profile describes one output language: how declarations are written and how
// provenance comments are prefixed.
type Profile struct {
	// ID names the target (e.g. "shell-script").
	ID string
	// Extension is the artifact file suffix without the dot (e.g. "sh").
	Extension string
	// CommentLeader starts every generated comment line.
	CommentLeader string
	// QuotedDecl is the declaration template used for string-attributed
	// entries; RawDecl for everything else. Both contain the literal NAME
	// and VALUE placeholders.
	QuotedDecl string
	RawDecl    string
}

// UnknownTargetError reports a target id or extension with no registered
// profile.
type UnknownTargetError struct {
	ID string
}

func (e UnknownTargetError) Error() string {
	return fmt.Sprintf("target: unsupported target %q", e.ID)
}

// Emit renders one parsed entry as a declaration line for this target.
// Validity of name and attributes is the parser's job; Emit has no failure
// modes.
func (p Profile) Emit(entry config.Entry) string {
	tmpl := p.RawDecl
	if entry.Attributes.Has(config.AttrString) {
		tmpl = p.QuotedDecl
	}
	return strings.NewReplacer(
		placeholderName, entry.Name,
		placeholderValue, entry.Value,
	).Replace(tmpl)
}

// EmitBlock renders every entry in parse order, one declaration per line.
func (p Profile) EmitBlock(entries []config.Entry) string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, p.Emit(entry))
	}
	return strings.Join(lines, "\n")
}

// Comment renders a single comment line using the profile's leader.
func (p Profile) Comment(text string) string {
	if text == "" {
		return p.CommentLeader
	}
	return p.CommentLeader + " " + text
}

func (p Profile) validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("target: profile id is required")
	}
	if strings.TrimSpace(p.Extension) == "" {
		return fmt.Errorf("target: profile %q: extension is required", p.ID)
	}
	if p.CommentLeader == "" {
		return fmt.Errorf("target: profile %q: comment leader is required", p.ID)
	}
	for _, tmpl := range []string{p.QuotedDecl, p.RawDecl} {
		if !strings.Contains(tmpl, placeholderName) {
			return fmt.Errorf("target: profile %q: declaration template %q lacks the NAME placeholder", p.ID, tmpl)
		}
	}
	return nil
}

// Builtins returns the closed built-in profile table in a fresh slice.
func Builtins() []Profile {
	return []Profile{
		{
			ID:            "header",
			Extension:     "h",
			CommentLeader: "//",
			QuotedDecl:    `#define NAME "VALUE"`,
			RawDecl:       `#define NAME VALUE`,
		},
		{
			ID:            "shell-script",
			Extension:     "sh",
			CommentLeader: "#",
			QuotedDecl:    `NAME="VALUE"`,
			RawDecl:       `NAME=VALUE`,
		},
		{
			ID:            "php",
			Extension:     "php",
			CommentLeader: "//",
			QuotedDecl:    `define('NAME', 'VALUE');`,
			RawDecl:       `define('NAME', VALUE);`,
		},
		{
			// The macro target has no distinct raw form.
			ID:            "macro",
			Extension:     "tex",
			CommentLeader: "%",
			QuotedDecl:    `\def\NAME{VALUE}`,
			RawDecl:       `\def\NAME{VALUE}`,
		},
	}
}
