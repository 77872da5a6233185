package artifact

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOutputPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"config.template.sh", "config.sh"},
		{"etc/global.template.php", "etc/global.php"},
		{"deep/dir/app.template.h", "deep/dir/app.h"},
	}

	for _, tc := range cases {
		got, err := OutputPath(tc.in)
		if err != nil {
			t.Fatalf("OutputPath(%q) returned error: %v", tc.in, err)
		}
		if got != filepath.FromSlash(tc.want) {
			t.Fatalf("OutputPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestOutputPath_MissingInfix(t *testing.T) {
	if _, err := OutputPath("config.sh"); err == nil {
		t.Fatalf("expected error for path without template infix")
	}
}

func TestCommit_WritesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.sh")

	if err := Commit(path, []byte("PORT=80\n")); err != nil {
		t.Fatalf("Commit returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "PORT=80\n" {
		t.Fatalf("unexpected content %q", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("temporary files left behind: %v", entries)
	}
}

func TestCommit_OverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.sh")

	if err := os.WriteFile(path, []byte("OLD=1\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	if err := Commit(path, []byte("NEW=2\n")); err != nil {
		t.Fatalf("Commit returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "NEW=2\n" {
		t.Fatalf("unexpected content %q", data)
	}
}
