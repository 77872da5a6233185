package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtension(t *testing.T) {
	cases := []struct {
		arg  string
		want string
	}{
		{"sh", "sh"},
		{"php", "php"},
		{"config.template.sh", "sh"},
		{"etc/config.template.h", "h"},
		{"/abs/path/app.template.tex", "tex"},
	}

	for _, tc := range cases {
		got, err := Extension(tc.arg)
		if err != nil {
			t.Fatalf("Extension(%q) returned error: %v", tc.arg, err)
		}
		if got != tc.want {
			t.Fatalf("Extension(%q) = %q, want %q", tc.arg, got, tc.want)
		}
	}
}

func TestExtension_Invalid(t *testing.T) {
	for _, arg := range []string{"", "   ", "name."} {
		if _, err := Extension(arg); err == nil {
			t.Fatalf("Extension(%q) should fail", arg)
		}
	}
}

func TestFindTemplate(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "config.template.sh")
	for _, name := range []string{"config.template.sh", "config.template.php", "README"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}

	got, err := FindTemplate(dir, "sh")
	if err != nil {
		t.Fatalf("FindTemplate returned error: %v", err)
	}
	if got != want {
		t.Fatalf("FindTemplate = %q, want %q", got, want)
	}
}

func TestFindTemplate_NoMatch(t *testing.T) {
	_, err := FindTemplate(t.TempDir(), "sh")
	if err == nil || !strings.Contains(err.Error(), "no template") {
		t.Fatalf("expected no-template error, got %v", err)
	}
}

func TestFindTemplate_Ambiguous(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.template.sh", "b.template.sh"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}

	_, err := FindTemplate(dir, "sh")
	if err == nil || !strings.Contains(err.Error(), "ambiguous") {
		t.Fatalf("expected ambiguity error, got %v", err)
	}
}
