package template

import "errors"

// ErrNoTemplateNames reports a selection call with an empty candidate
// list. This is a caller error, not a "not found" condition.
var ErrNoTemplateNames = errors.New("no template names provided")

// NotFoundError reports that no loader could produce a template for
// the requested name. Loaders return it for a single name; the
// selector aggregates the messages of every failed candidate into
// Name, comma-joined in first-seen order.
//
// Resolution treats it as recoverable (try the next loader); any
// other error aborts the lookup.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "template does not exist: " + e.Name
}

// InvalidConfigError reports a malformed loader spec: an unregistered
// loader name, arguments passed to a function-style loader, or a
// constructor rejecting its arguments. It is fatal at chain-building
// time and never retried.
type InvalidConfigError struct {
	Spec   string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return "invalid loader config " + e.Spec + ": " + e.Reason
}
