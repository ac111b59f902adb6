package template

import "reflect"

// Content is what a successful loader call produces: exactly one of
// raw source with a display name, or an already compiled template.
type Content interface {
	content()
}

// Source is raw template text plus the human-readable location it was
// loaded from. The display name may be shown to users in error
// messages, so it should identify where the template came from.
type Source struct {
	Text        string
	DisplayName string
}

func (Source) content() {}

// Compiled wraps a template a loader produced in already compiled
// form. It carries no display name: provenance was attached when the
// template was compiled, and reloading through an Origin does not
// apply.
type Compiled struct {
	Template *Template
}

func (Compiled) content() {}

// Loader produces template content for a name. dirs overrides the
// loader's configured search directories when non-nil. skip is the
// origin of the template currently being resolved, forwarded so
// delegating loaders can propagate it.
//
// A loader fails with *NotFoundError when it has nothing for name;
// resolution then moves on to the next loader in the chain. Any other
// error (I/O, permissions) aborts the whole resolution.
//
// Pattern: Strategy -- swap template storage without changing
// resolution logic.
type Loader interface {
	Load(
		name string,
		dirs []string,
		skip *Origin,
	) (Content, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
// Function-style loaders predate the interface and are still accepted
// by the registry, but specs may not pass constructor arguments to
// them.
type LoaderFunc func(
	name string,
	dirs []string,
	skip *Origin,
) (Content, error)

// Load delegates to the wrapped function.
func (f LoaderFunc) Load(
	name string,
	dirs []string,
	skip *Origin,
) (Content, error) {
	return f(name, dirs, skip)
}

// Unwrapper is implemented by loaders that delegate to another
// loader. Skip identity checks unwrap one level on both sides, so a
// skip marker recorded against a wrapper matches the underlying
// loader in the chain and vice versa.
type Unwrapper interface {
	Unwrap() Loader
}

// usable reports the loader's usability flag. Loaders without the
// capability are always usable.
func usable(lo Loader) bool {
	us, ok := lo.(interface{ Usable() bool })

	return !ok || us.Usable()
}

// skipExempt reports whether the loader is flagged to stay visible to
// resolution regardless of skip position.
func skipExempt(lo Loader) bool {
	ns, ok := lo.(interface{ NeverSkip() bool })

	return ok && ns.NeverSkip()
}

// unwrap follows one level of delegation.
func unwrap(lo Loader) Loader {
	if uw, ok := lo.(Unwrapper); ok {
		return uw.Unwrap()
	}

	return lo
}

// sameLoader reports whether a and b are the same loader instance.
// Loaders are matched by identity, never by configuration equality:
// both must be pointers of the same type to the same value. Value-
// and func-typed loaders never match, so two distinct but field-equal
// loaders cannot be mistaken for one another.
func sameLoader(a, b Loader) bool {
	if a == nil || b == nil {
		return false
	}

	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	va := reflect.ValueOf(a)
	if va.Kind() != reflect.Pointer {
		return false
	}

	return va.Pointer() == reflect.ValueOf(b).Pointer()
}
