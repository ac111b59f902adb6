package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/tplchain/template"
)

func TestContext_inner_scope_shadows(t *testing.T) {
	t.Parallel()

	ctx := template.NewContext(map[string]interface{}{
		"who":  "base",
		"keep": "kept",
	})

	pop := ctx.Push(map[string]interface{}{"who": "inner"})
	defer pop()

	val, ok := ctx.Get("who")
	require.True(t, ok)
	assert.Equal(t, "inner", val)

	val, ok = ctx.Get("keep")
	require.True(t, ok)
	assert.Equal(t, "kept", val)
}

func TestContext_pop_restores_prior_state(t *testing.T) {
	t.Parallel()

	ctx := template.NewContext(map[string]interface{}{"who": "base"})

	pop := ctx.Push(map[string]interface{}{"who": "inner"})
	pop()

	val, ok := ctx.Get("who")
	require.True(t, ok)
	assert.Equal(t, "base", val)
}

func TestContext_missing_name(t *testing.T) {
	t.Parallel()

	ctx := template.NewContext(nil)

	_, ok := ctx.Get("nope")
	assert.False(t, ok)
}

func TestTemplate_render_scopes_and_stringify(t *testing.T) {
	t.Parallel()

	tpl, err := template.TemplateFromString(
		"{{who}} has {{count}} items", nil, "inline",
	)
	require.NoError(t, err)

	ctx := template.NewContext(map[string]interface{}{
		"who":   "base",
		"count": 3,
	})

	pop := ctx.Push(map[string]interface{}{"who": "inner"})
	defer pop()

	assert.Equal(
		t, "inner has 3 items", tpl.Render(ctx),
	)
}

func TestTemplate_render_keeps_unknown_placeholders(
	t *testing.T,
) {
	t.Parallel()

	tpl, err := template.TemplateFromString(
		"hello {{nobody}}", nil, "inline",
	)
	require.NoError(t, err)

	got := tpl.Render(template.NewContext(nil))
	assert.Equal(t, "hello {{nobody}}", got)
}

func TestTemplateFromString_unclosed_tag(t *testing.T) {
	t.Parallel()

	_, err := template.TemplateFromString(
		"broken {{tag", nil, "inline",
	)
	require.Error(t, err)
	assert.ErrorContains(t, err, "compiling template")
}
