// Package memory loads templates from an in-memory bundle mapping
// names to source text. It registers itself under the loader name
// "memory"; spec arguments are NAME=SOURCE entries.
package memory

import (
	"fmt"
	"maps"
	"strings"

	"github.com/goccy/go-json"

	"github.com/byte4ever/tplchain/template"
)

// Loader serves templates from an in-memory bundle.
//
// Pattern: Strategy -- implements template.Loader.
type Loader struct {
	files map[string]string
}

// New returns a loader over a copy of files.
func New(files map[string]string) *Loader {
	cpy := maps.Clone(files)
	if cpy == nil {
		cpy = map[string]string{}
	}

	return &Loader{files: cpy}
}

// FromJSON builds a loader from a JSON object mapping template names
// to their source text.
func FromJSON(raw []byte) (*Loader, error) {
	const errCtx = "decoding template bundle"

	var files map[string]string

	if err := json.Unmarshal(raw, &files); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return New(files), nil
}

// Load returns the bundled source for name. Search directories do not
// apply to in-memory bundles and are ignored.
func (lo *Loader) Load(
	name string,
	_ []string,
	_ *template.Origin,
) (template.Content, error) {
	src, ok := lo.files[name]
	if !ok {
		return nil, &template.NotFoundError{Name: name}
	}

	return template.Source{
		Text:        src,
		DisplayName: "memory:" + name,
	}, nil
}

func init() {
	template.Register("memory", template.Constructor(
		func(args ...string) (template.Loader, error) {
			files := make(map[string]string, len(args))

			for _, ar := range args {
				parts := strings.SplitN(ar, "=", 2)
				if len(parts) != 2 {
					return nil, fmt.Errorf(
						"bundle entry must be NAME=SOURCE, got %s",
						ar,
					)
				}

				files[parts[0]] = parts[1]
			}

			return New(files), nil
		},
	))
}
