// Package filesystem loads templates from an ordered list of
// directories, trying each in turn. It registers itself under the
// loader name "filesystem"; spec arguments are the search
// directories.
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/byte4ever/tplchain/template"
)

// Loader serves templates from the filesystem.
//
// Pattern: Strategy -- implements template.Loader.
type Loader struct {
	dirs []string
}

// New returns a loader searching dirs in order.
func New(dirs ...string) *Loader {
	return &Loader{dirs: dirs}
}

// Load reads name from the first directory that contains it. dirs
// overrides the configured directories when non-nil. Names that
// escape the search directory are treated as not found; read errors
// other than a missing file abort resolution.
func (lo *Loader) Load(
	name string,
	dirs []string,
	_ *template.Origin,
) (template.Content, error) {
	search := lo.dirs
	if dirs != nil {
		search = dirs
	}

	// Reject names that would resolve outside the search
	// directories ("../secrets", absolute paths).
	if !filepath.IsLocal(filepath.FromSlash(name)) {
		return nil, &template.NotFoundError{Name: name}
	}

	tried := make([]string, 0, len(search))

	for _, dir := range search {
		pa := filepath.Join(dir, filepath.FromSlash(name))

		raw, err := os.ReadFile(pa) //nolint:gosec // containment checked above
		if errors.Is(err, fs.ErrNotExist) {
			tried = append(tried, pa)

			continue
		}

		if err != nil {
			return nil, fmt.Errorf(
				"reading template %s: %w", pa, err,
			)
		}

		return template.Source{
			Text:        string(raw),
			DisplayName: pa,
		}, nil
	}

	if len(tried) == 0 {
		return nil, &template.NotFoundError{Name: name}
	}

	return nil, &template.NotFoundError{
		Name: fmt.Sprintf(
			"%s (tried: %s)",
			name, strings.Join(tried, ", "),
		),
	}
}

func init() {
	template.Register("filesystem", template.Constructor(
		func(args ...string) (template.Loader, error) {
			return New(args...), nil
		},
	))
}
