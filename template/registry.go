package template

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// Constructor builds a loader from the string arguments of a loader
// spec.
type Constructor func(args ...string) (Loader, error)

// Registry state is process-wide. The chain is computed lazily on
// first use: building it during package initialization would race
// against Register and Configure calls running in other packages'
// init order.
var (
	registryMu  sync.Mutex
	factories   = map[string]interface{}{}
	specs       []Spec
	defaultDirs []string
	startTag    string
	endTag      string
	active      []Loader
	activeSet   bool
)

// Register makes a loader available to loader specs under name. v is
// either a Constructor, which receives the spec's arguments, or a
// bare Loader used as-is (function-style). Later registrations
// replace earlier ones. Register panics on any other value; loader
// packages call it from init, so a bad registration is a programming
// error.
func Register(name string, v interface{}) {
	switch vv := v.(type) {
	case func(args ...string) (Loader, error):
		v = Constructor(vv)
	case Constructor, Loader:
		_ = vv
	default:
		panic(fmt.Sprintf(
			"template: Register %q: need a Constructor or a Loader, got %T",
			name, v,
		))
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	factories[name] = v
}

// ActiveLoaders returns the ordered loader chain built from the
// configured specs, resolving it on first use and memoizing the
// result until ResetLoaders or Configure. Unusable loaders are
// dropped with a warning and never invoked. The returned slice is a
// copy; mutating it does not affect the memoized chain.
func ActiveLoaders() ([]Loader, error) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if activeSet {
		return slices.Clone(active), nil
	}

	chain := make([]Loader, 0, len(specs))

	for _, sp := range specs {
		lo, err := resolveSpec(sp)
		if err != nil {
			return nil, err
		}

		if lo == nil {
			continue
		}

		chain = append(chain, lo)
	}

	active = chain
	activeSet = true

	return slices.Clone(active), nil
}

// defaultSearchDirs returns the directories Configure installed as
// the fallback for resolution calls that pass none.
func defaultSearchDirs() []string {
	registryMu.Lock()
	defer registryMu.Unlock()

	return slices.Clone(defaultDirs)
}

// resolveSpec turns one spec into a loader instance. It returns a nil
// loader (and nil error) when the loader is registered but unusable.
// Callers hold registryMu.
func resolveSpec(sp Spec) (Loader, error) {
	v, ok := factories[sp.Loader]
	if !ok {
		return nil, &InvalidConfigError{
			Spec:   sp.Loader,
			Reason: "no such loader is registered",
		}
	}

	var lo Loader

	switch fv := v.(type) {
	case Constructor:
		var err error

		lo, err = fv(sp.Args...)
		if err != nil {
			return nil, &InvalidConfigError{
				Spec:   sp.Loader,
				Reason: err.Error(),
			}
		}
	case Loader:
		if len(sp.Args) > 0 {
			return nil, &InvalidConfigError{
				Spec:   sp.Loader,
				Reason: "cannot pass arguments to a function-style loader",
			}
		}

		lo = fv
	}

	if !usable(lo) {
		slog.Warn(
			"dropping unusable template loader",
			"loader", sp.Loader,
		)

		return nil, nil
	}

	return lo, nil
}

// ResetLoaders clears any loader-local caches on the active chain and
// discards the memoized chain itself, so the next resolution rebuilds
// it from the current specs.
func ResetLoaders() {
	registryMu.Lock()
	defer registryMu.Unlock()

	for _, lo := range active {
		if rs, ok := lo.(interface{ Reset() }); ok {
			rs.Reset()
		}
	}

	active = nil
	activeSet = false
}

// configuredTags returns the placeholder tags set by Configure,
// falling back to double-brace defaults.
func configuredTags() (string, string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	st, et := startTag, endTag
	if st == "" {
		st = "{{"
	}

	if et == "" {
		et = "}}"
	}

	return st, et
}
