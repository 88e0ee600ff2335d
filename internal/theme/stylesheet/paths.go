package stylesheet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// TemplateFileName is the name of a stylesheet override file.
const TemplateFileName = "stylesheet.qss"

// SourceBuiltin marks the embedded template.
const SourceBuiltin = "builtin"

// TemplateSearchPaths returns override locations in precedence order.
func TemplateSearchPaths(projectDir string) []string {
	paths := make([]string, 0, 3)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".notekeep", TemplateFileName))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "notekeep", TemplateFileName))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "notekeep", TemplateFileName))
	return paths
}

// LoadTemplate returns the first override found on the search paths, or the
// builtin template. The second result names where the template came from.
func LoadTemplate(fsys afero.Fs, projectDir string) (string, string, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	for _, path := range TemplateSearchPaths(projectDir) {
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", "", fmt.Errorf("read stylesheet %s: %w", path, err)
		}
		return string(data), path, nil
	}

	return BuiltinTemplate(), SourceBuiltin, nil
}
