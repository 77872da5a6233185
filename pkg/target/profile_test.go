package target

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-confgen/pkg/config"
)

func stringAttr() config.AttrSet {
	return config.AttrSet{config.AttrString: {}}
}

func TestEmit_RawForms(t *testing.T) {
	entry := config.Entry{Name: "FOO", Value: "bar"}

	cases := []struct {
		id   string
		want string
	}{
		{"header", "#define FOO bar"},
		{"shell-script", "FOO=bar"},
		{"php", "define('FOO', bar);"},
		{"macro", `\def\FOO{bar}`},
	}

	registry := BuiltinRegistry()
	for _, tc := range cases {
		t.Run(tc.id, func(t *testing.T) {
			profile, err := registry.Get(tc.id)
			if err != nil {
				t.Fatalf("Get(%q) returned error: %v", tc.id, err)
			}
			if got := profile.Emit(entry); got != tc.want {
				t.Fatalf("Emit mismatch: got %q want %q", got, tc.want)
			}
		})
	}
}

func TestEmit_QuotedForms(t *testing.T) {
	entry := config.Entry{Name: "BAZ", Value: `he said \"hi\"`, Attributes: stringAttr()}

	cases := []struct {
		id   string
		want string
	}{
		{"header", `#define BAZ "he said \"hi\""`},
		{"shell-script", `BAZ="he said \"hi\""`},
		{"php", `define('BAZ', 'he said \"hi\"');`},
		{"macro", `\def\BAZ{he said \"hi\"}`},
	}

	registry := BuiltinRegistry()
	for _, tc := range cases {
		t.Run(tc.id, func(t *testing.T) {
			profile := registry.MustGet(tc.id)
			if got := profile.Emit(entry); got != tc.want {
				t.Fatalf("Emit mismatch: got %q want %q", got, tc.want)
			}
		})
	}
}

func TestEmit_PlaceholderTextInValueSurvives(t *testing.T) {
	profile := BuiltinRegistry().MustGet("shell-script")

	entry := config.Entry{Name: "DEFAULT_VALUE", Value: "NAME=VALUE"}
	if got := profile.Emit(entry); got != "DEFAULT_VALUE=NAME=VALUE" {
		t.Fatalf("single-pass substitution broken: %q", got)
	}
}

func TestEmitBlock_PreservesParseOrder(t *testing.T) {
	profile := BuiltinRegistry().MustGet("header")

	entries := []config.Entry{
		{Name: "Z", Value: "26"},
		{Name: "A", Value: "1"},
	}
	want := "#define Z 26\n#define A 1"
	if got := profile.EmitBlock(entries); got != want {
		t.Fatalf("EmitBlock mismatch: got %q want %q", got, want)
	}
}

func TestComment(t *testing.T) {
	profile := BuiltinRegistry().MustGet("macro")

	if got := profile.Comment("generated file"); got != "% generated file" {
		t.Fatalf("unexpected comment line %q", got)
	}
	if got := profile.Comment(""); got != "%" {
		t.Fatalf("unexpected empty comment line %q", got)
	}
}

func TestRegistry_UnknownTarget(t *testing.T) {
	registry := BuiltinRegistry()

	_, err := registry.Get("yaml")
	var uerr UnknownTargetError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UnknownTargetError, got %v", err)
	}
	if uerr.ID != "yaml" {
		t.Fatalf("unexpected id %q", uerr.ID)
	}
}

func TestRegistry_GetByExtension(t *testing.T) {
	registry := BuiltinRegistry()

	profile, err := registry.GetByExtension("sh")
	if err != nil {
		t.Fatalf("GetByExtension returned error: %v", err)
	}
	if profile.ID != "shell-script" {
		t.Fatalf("unexpected profile %q", profile.ID)
	}

	if _, err := registry.GetByExtension("exe"); err == nil {
		t.Fatalf("expected error for unknown extension")
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	registry := BuiltinRegistry()

	err := registry.Register(Profile{
		ID:            "header",
		Extension:     "hh",
		CommentLeader: "//",
		QuotedDecl:    `NAME "VALUE"`,
		RawDecl:       `NAME VALUE`,
	})
	if err == nil {
		t.Fatalf("expected duplicate id rejection")
	}

	err = registry.Register(Profile{
		ID:            "header2",
		Extension:     "h",
		CommentLeader: "//",
		QuotedDecl:    `NAME "VALUE"`,
		RawDecl:       `NAME VALUE`,
	})
	if err == nil {
		t.Fatalf("expected duplicate extension rejection")
	}
}

func TestRegistry_List(t *testing.T) {
	got := BuiltinRegistry().List()
	want := []string{"header", "macro", "php", "shell-script"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("List mismatch (-want +got):\n%s", diff)
	}
}
