package template

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// GetTemplate resolves name into a compiled Template. Raw source is
// compiled with the resolved origin attached; content a loader
// already compiled passes through untouched.
func GetTemplate(
	name string,
	dirs []string,
	skip *Origin,
) (*Template, error) {
	content, origin, err := FindTemplate(name, dirs, skip, nil)
	if err != nil {
		return nil, err
	}

	switch cv := content.(type) {
	case Compiled:
		return cv.Template, nil
	case Source:
		return TemplateFromString(cv.Text, origin, name)
	default:
		return nil, fmt.Errorf(
			"loader returned unknown content %T for %q",
			content, name,
		)
	}
}

// SelectTemplate returns the first candidate in names that resolves.
// When every candidate fails, the error aggregates each candidate's
// failure message, deduplicated in first-seen order, so callers see
// everything that was tried rather than only the last name.
func SelectTemplate(
	names []string,
	dirs []string,
	skip *Origin,
) (*Template, error) {
	if len(names) == 0 {
		return nil, ErrNoTemplateNames
	}

	var missing []string

	for _, name := range names {
		tpl, err := GetTemplate(name, dirs, skip)
		if err != nil {
			var nf *NotFoundError
			if errors.As(err, &nf) {
				if !slices.Contains(missing, nf.Name) {
					missing = append(missing, nf.Name)
				}

				continue
			}

			return nil, err
		}

		return tpl, nil
	}

	return nil, &NotFoundError{
		Name: strings.Join(missing, ", "),
	}
}

// RenderToString resolves name and renders it with data. When ctx is
// non-nil, data is pushed as a scope for the duration of the render
// and popped again on every exit path, leaving ctx as it was;
// otherwise a fresh context is built from data alone.
func RenderToString(
	name string,
	data map[string]interface{},
	ctx *Context,
	dirs []string,
) (string, error) {
	tpl, err := GetTemplate(name, dirs, nil)
	if err != nil {
		return "", err
	}

	return renderWith(tpl, data, ctx), nil
}

// RenderFirstToString is RenderToString over a candidate list: the
// first name that resolves is rendered.
func RenderFirstToString(
	names []string,
	data map[string]interface{},
	ctx *Context,
	dirs []string,
) (string, error) {
	tpl, err := SelectTemplate(names, dirs, nil)
	if err != nil {
		return "", err
	}

	return renderWith(tpl, data, ctx), nil
}

func renderWith(
	tpl *Template,
	data map[string]interface{},
	ctx *Context,
) string {
	if ctx == nil {
		return tpl.Render(NewContext(data))
	}

	pop := ctx.Push(data)
	defer pop()

	return tpl.Render(ctx)
}
