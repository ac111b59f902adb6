package template

import (
	"fmt"

	"github.com/valyala/fasttemplate"
)

// Template is a compiled template ready to render. It keeps the
// Origin it was resolved from, so error messages and reloads can name
// the exact source location.
type Template struct {
	name   string
	origin *Origin
	tpl    *fasttemplate.Template
}

// TemplateFromString compiles source into a Template using the
// configured placeholder tags. origin may be nil for templates built
// directly from a string rather than resolved through a loader.
func TemplateFromString(
	source string,
	origin *Origin,
	name string,
) (*Template, error) {
	const errCtx = "compiling template"

	st, et := configuredTags()

	tpl, err := fasttemplate.NewTemplate(source, st, et)
	if err != nil {
		if origin != nil {
			return nil, fmt.Errorf(
				"%s %s: %w",
				errCtx, origin.DisplayName, err,
			)
		}

		return nil, fmt.Errorf("%s %q: %w", errCtx, name, err)
	}

	return &Template{
		name:   name,
		origin: origin,
		tpl:    tpl,
	}, nil
}

// Name returns the template name as it was requested.
func (t *Template) Name() string {
	return t.name
}

// Origin returns the provenance record, nil for templates built from
// a string or returned pre-compiled by a loader.
func (t *Template) Origin() *Origin {
	return t.origin
}

// Render substitutes placeholders from ctx. Unknown placeholders are
// kept as-is.
func (t *Template) Render(ctx *Context) string {
	return t.tpl.ExecuteStringStd(ctx.flatten())
}
