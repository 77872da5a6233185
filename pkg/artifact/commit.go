package artifact

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
)

const templateInfix = "template."

// OutputPath derives the artifact path from its template path by removing the
// final "template." infix: config.template.sh becomes config.sh.
func OutputPath(templatePath string) (string, error) {
	dir, base := filepath.Split(templatePath)

	idx := strings.LastIndex(base, templateInfix)
	if idx < 0 {
		return "", fmt.Errorf("artifact: template path %q lacks the %q infix", templatePath, templateInfix)
	}
	out := base[:idx] + base[idx+len(templateInfix):]
	if out == "" || strings.HasPrefix(out, ".") {
		return "", fmt.Errorf("artifact: template path %q leaves no usable output name", templatePath)
	}
	return filepath.Join(dir, out), nil
}

// Commit writes data to path atomically: the bytes land in a temporary file
// that is fsynced and renamed over the destination only once the write
// completed. A failed commit leaves any existing artifact untouched.
func Commit(path string, data []byte) error {
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("artifact: create pending file for %s: %w", path, err)
	}
	defer func() {
		// Cleanup removes the temp file when the commit never happened.
		_ = pending.Cleanup()
	}()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("artifact: write %s: %w", path, err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("artifact: atomically replace %s: %w", path, err)
	}
	return nil
}
