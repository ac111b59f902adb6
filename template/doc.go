// Package template resolves logical template names into renderable
// templates by trying an ordered chain of pluggable loaders. A loader
// returns either raw source with a location string or an already
// compiled template; the first loader that does not report "not found"
// wins. Every resolved template carries an Origin recording the exact
// loader and parameters that produced it, so failures can be traced
// and sources re-fetched on demand.
//
// A template may share its name with a template further down the
// chain. Passing the current template's Origin as a skip marker makes
// resolution resume just past the loader that produced it, so an
// overriding template can reach "the next template with my name"
// without resolving to itself. Loaders that delegate elsewhere can
// opt out of skipping entirely and stay visible at their position.
//
// The active chain is built once per process from registered loader
// specs (see Register and Configure) and rebuilt only after an
// explicit ResetLoaders. Compilation is delegated to
// valyala/fasttemplate with configurable placeholder tags.
package template
