package template_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/tplchain/template"
)

// unusableLoader carries a false usability flag; it must be dropped
// from the chain without ever being invoked.
type unusableLoader struct {
	stubLoader
}

func (lo *unusableLoader) Usable() bool {
	return false
}

// resettableLoader records Reset calls.
type resettableLoader struct {
	stubLoader
	resets int
}

func (lo *resettableLoader) Reset() {
	lo.resets++
}

func TestActiveLoaders_unknown_spec(t *testing.T) {
	template.Configure(template.Config{
		Loaders: []template.Spec{
			{Loader: "no-such-loader"},
		},
	})
	t.Cleanup(func() {
		template.Configure(template.Config{})
	})

	_, err := template.ActiveLoaders()

	var ic *template.InvalidConfigError

	require.ErrorAs(t, err, &ic)
	assert.Equal(t, "no-such-loader", ic.Spec)
}

func TestActiveLoaders_args_to_function_style(t *testing.T) {
	template.Register(
		"test-plain", &stubLoader{label: "plain"},
	)
	template.Configure(template.Config{
		Loaders: []template.Spec{
			{Loader: "test-plain", Args: []string{"x"}},
		},
	})
	t.Cleanup(func() {
		template.Configure(template.Config{})
	})

	_, err := template.ActiveLoaders()

	var ic *template.InvalidConfigError

	require.ErrorAs(t, err, &ic)
	assert.ErrorContains(t, err, "function-style")
}

func TestActiveLoaders_constructor_args(t *testing.T) {
	var got []string

	template.Register(
		"test-ctor",
		func(args ...string) (template.Loader, error) {
			got = args

			return &stubLoader{label: "ctor"}, nil
		},
	)
	template.Configure(template.Config{
		Loaders: []template.Spec{
			{
				Loader: "test-ctor",
				Args:   []string{"one", "two"},
			},
		},
	})
	t.Cleanup(func() {
		template.Configure(template.Config{})
	})

	chain, err := template.ActiveLoaders()
	require.NoError(t, err)
	assert.Len(t, chain, 1)
	assert.Equal(t, []string{"one", "two"}, got)
}

func TestActiveLoaders_constructor_error_is_invalid_config(
	t *testing.T,
) {
	template.Register(
		"test-bad-ctor",
		func(...string) (template.Loader, error) {
			return nil, errors.New("bad arguments")
		},
	)
	template.Configure(template.Config{
		Loaders: []template.Spec{
			{Loader: "test-bad-ctor"},
		},
	})
	t.Cleanup(func() {
		template.Configure(template.Config{})
	})

	_, err := template.ActiveLoaders()

	var ic *template.InvalidConfigError

	require.ErrorAs(t, err, &ic)
	assert.ErrorContains(t, err, "bad arguments")
}

func TestActiveLoaders_drops_unusable(t *testing.T) {
	dead := &unusableLoader{stubLoader{label: "dead"}}
	alive := &stubLoader{label: "alive"}

	template.Register("test-dead", dead)
	template.Register("test-alive", alive)
	template.Configure(template.Config{
		Loaders: []template.Spec{
			{Loader: "test-dead"},
			{Loader: "test-alive"},
		},
	})
	t.Cleanup(func() {
		template.Configure(template.Config{})
	})

	chain, err := template.ActiveLoaders()
	require.NoError(t, err)
	require.Len(t, chain, 1)
	assert.Same(t, template.Loader(alive), chain[0])
	assert.Zero(t, dead.calls)
}

func TestActiveLoaders_memoized_until_reset(t *testing.T) {
	built := 0

	template.Register(
		"test-counting",
		func(...string) (template.Loader, error) {
			built++

			return &stubLoader{label: "counting"}, nil
		},
	)
	template.Configure(template.Config{
		Loaders: []template.Spec{
			{Loader: "test-counting"},
		},
	})
	t.Cleanup(func() {
		template.Configure(template.Config{})
	})

	_, err := template.ActiveLoaders()
	require.NoError(t, err)

	_, err = template.ActiveLoaders()
	require.NoError(t, err)
	assert.Equal(
		t, 1, built,
		"the chain must be built at most once",
	)

	template.ResetLoaders()

	_, err = template.ActiveLoaders()
	require.NoError(t, err)
	assert.Equal(t, 2, built)
}

func TestResetLoaders_clears_loader_caches(t *testing.T) {
	lo := &resettableLoader{
		stubLoader: stubLoader{label: "cached"},
	}

	template.Register("test-resettable", lo)
	template.Configure(template.Config{
		Loaders: []template.Spec{
			{Loader: "test-resettable"},
		},
	})
	t.Cleanup(func() {
		template.Configure(template.Config{})
	})

	_, err := template.ActiveLoaders()
	require.NoError(t, err)

	template.ResetLoaders()
	assert.Equal(t, 1, lo.resets)
}

func TestActiveLoaders_returned_chain_is_a_copy(t *testing.T) {
	lo := &stubLoader{label: "immutable"}

	template.Register("test-immutable", lo)
	template.Configure(template.Config{
		Loaders: []template.Spec{
			{Loader: "test-immutable"},
		},
	})
	t.Cleanup(func() {
		template.Configure(template.Config{})
	})

	chain, err := template.ActiveLoaders()
	require.NoError(t, err)
	require.Len(t, chain, 1)

	chain[0] = nil

	again, err := template.ActiveLoaders()
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.NotNil(
		t, again[0],
		"mutating a returned chain must not affect the memoized one",
	)
}

func TestRegister_rejects_other_values(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		template.Register("test-bogus", 42)
	})
}
