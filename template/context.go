package template

import "fmt"

// Context is a stack of variable scopes used during rendering. Inner
// scopes shadow outer ones. A Context may be shared across render
// calls as long as every Push is paired with its pop.
type Context struct {
	stack []map[string]interface{}
}

// NewContext returns a context whose base scope is data (may be nil).
func NewContext(data map[string]interface{}) *Context {
	if data == nil {
		data = map[string]interface{}{}
	}

	return &Context{stack: []map[string]interface{}{data}}
}

// Push adds data as the innermost scope and returns the function that
// removes it again. Defer the returned pop so the context is restored
// on every exit path and stack entries never leak into unrelated
// render calls.
func (c *Context) Push(data map[string]interface{}) func() {
	c.stack = append(c.stack, data)

	return func() {
		c.stack = c.stack[:len(c.stack)-1]
	}
}

// Get looks name up from the innermost scope outwards.
func (c *Context) Get(name string) (interface{}, bool) {
	for idx := len(c.stack) - 1; idx >= 0; idx-- {
		if val, ok := c.stack[idx][name]; ok {
			return val, true
		}
	}

	return nil, false
}

// flatten merges the scope stack into a single substitution map,
// innermost scope winning. fasttemplate only substitutes strings and
// byte slices, so other values are stringified.
func (c *Context) flatten() map[string]interface{} {
	flat := make(map[string]interface{})

	for _, scope := range c.stack {
		for key, val := range scope {
			switch val.(type) {
			case string, []byte:
				flat[key] = val
			default:
				flat[key] = fmt.Sprint(val)
			}
		}
	}

	return flat
}
