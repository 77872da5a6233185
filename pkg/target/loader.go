package target

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type profileDocument struct {
	Profiles []profileSpec `yaml:"profiles"`
}

type profileSpec struct {
	ID        string `yaml:"id"`
	Extension string `yaml:"extension"`
	Comment   string `yaml:"comment"`
	Quoted    string `yaml:"quoted"`
	Raw       string `yaml:"raw"`
}

// LoadFS walks the provided filesystem and parses YAML profile documents.
// When fsys is nil or holds no profile files, the returned slice is empty.
// Each document lists profiles under a top-level `profiles:` key; the raw
// declaration template defaults to the quoted one when omitted, matching the
// macro target's single-form behaviour.
func LoadFS(fsys fs.FS) ([]Profile, error) {
	if fsys == nil {
		return nil, nil
	}

	var profiles []Profile
	seen := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isProfileFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("target: read %s: %w", path, err)
		}

		var doc profileDocument
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("target: parse %s: %w", path, err)
		}

		for _, spec := range doc.Profiles {
			profile := Profile{
				ID:            strings.TrimSpace(spec.ID),
				Extension:     strings.TrimSpace(spec.Extension),
				CommentLeader: strings.TrimSpace(spec.Comment),
				QuotedDecl:    spec.Quoted,
				RawDecl:       spec.Raw,
			}
			if profile.RawDecl == "" {
				profile.RawDecl = profile.QuotedDecl
			}
			if err := profile.validate(); err != nil {
				return fmt.Errorf("target: file %s: %w", path, err)
			}
			if prior, exists := seen[profile.ID]; exists {
				return fmt.Errorf("target: duplicate profile %q (files %s, %s)", profile.ID, prior, path)
			}
			seen[profile.ID] = path
			profiles = append(profiles, profile)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return profiles, nil
}

func isProfileFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
