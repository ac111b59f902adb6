package template

import "fmt"

// Origin records where a resolved template came from: the loader
// instance that produced it, the name it was requested under, and the
// search directories in effect at the time. It is created once per
// successful loader call and never mutated.
//
// Passing an Origin as the skip marker to FindTemplate resumes
// resolution of the same name just past Loader.
type Origin struct {
	// DisplayName locates the template for humans (a file path, a
	// remote URL, ...). It is never empty: compiled artifacts, which
	// have no stable location, resolve with a nil Origin instead.
	DisplayName string
	// Loader is the exact instance that produced the template.
	Loader Loader
	// Name is the template name as requested.
	Name string
	// Dirs is the search directory override that was in effect, nil
	// when the loader's own configuration applied.
	Dirs []string
}

// Reload fetches the template source again from the recorded loader
// with the recorded parameters. It fails if the loader now returns a
// pre-compiled artifact instead of raw source.
func (o *Origin) Reload() (string, error) {
	const errCtx = "reloading template"

	content, err := o.Loader.Load(o.Name, o.Dirs, nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	src, ok := content.(Source)
	if !ok {
		return "", fmt.Errorf(
			"%s: loader for %q no longer returns source",
			errCtx, o.Name,
		)
	}

	return src.Text, nil
}

// makeOrigin builds the provenance record for a loader result. An
// empty display name means the loader returned a compiled artifact;
// there is no stable location to reload from, so the origin is nil.
func makeOrigin(
	displayName string,
	loader Loader,
	name string,
	dirs []string,
) *Origin {
	if displayName == "" {
		return nil
	}

	return &Origin{
		DisplayName: displayName,
		Loader:      loader,
		Name:        name,
		Dirs:        dirs,
	}
}
