// Package alias provides a loader that rewrites a name prefix and
// delegates the lookup to another loader, so templates published
// under an old or alternative prefix keep resolving.
//
// Alias loaders are never skipped: a template resolving "the next
// template with my name" must still see aliased content wherever the
// alias sits in the chain. It is not registered for spec-based
// construction because it needs a live delegate loader; wire it
// programmatically.
package alias

import (
	"strings"

	"github.com/byte4ever/tplchain/template"
)

// Loader rewrites names matching a prefix and delegates to another
// loader.
//
// Pattern: Strategy -- implements template.Loader.
type Loader struct {
	prefix   string
	rewrite  string
	delegate template.Loader
}

// New returns a loader that maps "prefix<rest>" to "rewrite<rest>"
// and resolves the result through delegate.
func New(
	prefix string,
	rewrite string,
	delegate template.Loader,
) *Loader {
	return &Loader{
		prefix:   prefix,
		rewrite:  rewrite,
		delegate: delegate,
	}
}

// Load delegates the rewritten name. Names outside the prefix are not
// found.
func (lo *Loader) Load(
	name string,
	dirs []string,
	skip *template.Origin,
) (template.Content, error) {
	if !strings.HasPrefix(name, lo.prefix) {
		return nil, &template.NotFoundError{Name: name}
	}

	rewritten := lo.rewrite + strings.TrimPrefix(name, lo.prefix)

	return lo.delegate.Load(rewritten, dirs, skip)
}

// NeverSkip marks the loader as always visible to resolution,
// regardless of skip position.
func (lo *Loader) NeverSkip() bool {
	return true
}

// Unwrap exposes the delegate so skip identity checks match the
// loader that actually produced the content.
func (lo *Loader) Unwrap() template.Loader {
	return lo.delegate
}
