package template

import (
	"errors"
	"iter"
	"slices"
)

// FindTemplate walks loaders in order and returns the content of the
// first loader that succeeds for name, together with its origin. The
// origin is nil when the loader returned an already compiled
// artifact. If loaders is nil the registry's active chain is used;
// if dirs is nil the configured default search directories apply.
//
// When skip records the same template name, the chain is reduced to
// the loaders positioned after skip's loader (never-skip loaders stay
// visible in place), so a template can resolve "the next template
// with my name" without finding itself.
//
// Only *NotFoundError moves resolution to the next loader; any other
// loader error aborts immediately. When every loader fails, the
// returned NotFoundError names the originally requested template.
func FindTemplate(
	name string,
	dirs []string,
	skip *Origin,
	loaders []Loader,
) (Content, *Origin, error) {
	if dirs == nil {
		dirs = defaultSearchDirs()
	}

	if loaders == nil {
		var err error

		loaders, err = ActiveLoaders()
		if err != nil {
			return nil, nil, err
		}
	}

	chain := slices.Values(loaders)
	if skip != nil && skip.Name == name {
		chain = skipLoaders(loaders, skip)
	}

	for lo := range chain {
		content, err := lo.Load(name, dirs, skip)
		if err != nil {
			var nf *NotFoundError
			if errors.As(err, &nf) {
				continue
			}

			return nil, nil, err
		}

		if src, ok := content.(Source); ok {
			return content, makeOrigin(
				src.DisplayName, lo, name, dirs,
			), nil
		}

		return content, nil, nil
	}

	return nil, nil, &NotFoundError{Name: name}
}

// skipLoaders yields the loaders that remain visible when resolving
// past skip: every loader positioned after skip's loader, plus
// never-skip loaders at their original position (including before the
// skip point, where they may run a second time for the same name;
// delegating loaders must never be hidden). Identity is compared
// after unwrapping one level of delegation on both sides.
//
// If skip's loader is absent from the chain, no loader is yielded by
// position and only never-skip loaders surface. Yielding the full
// chain instead would re-resolve to the very content being skipped.
//
// The sequence is lazy so a caller can stop at the first success.
func skipLoaders(loaders []Loader, skip *Origin) iter.Seq[Loader] {
	target := unwrap(skip.Loader)

	return func(yield func(Loader) bool) {
		passed := false

		for _, lo := range loaders {
			if passed || skipExempt(lo) {
				if !yield(lo) {
					return
				}
			}

			if sameLoader(unwrap(lo), target) {
				passed = true
			}
		}
	}
}
