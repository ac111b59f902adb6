package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/tplchain/template"
)

func TestOrigin_reload_round_trip(t *testing.T) {
	t.Parallel()

	lo := &stubLoader{
		label: "store",
		files: map[string]string{"page.txt": "the source"},
	}

	content, origin, err := template.FindTemplate(
		"page.txt", nil, nil, []template.Loader{lo},
	)
	require.NoError(t, err)
	require.NotNil(t, origin)

	src, ok := content.(template.Source)
	require.True(t, ok)

	reloaded, err := origin.Reload()
	require.NoError(t, err)
	assert.Equal(t, src.Text, reloaded)
}

func TestOrigin_reload_not_found(t *testing.T) {
	t.Parallel()

	lo := &stubLoader{label: "store"}

	origin := &template.Origin{
		DisplayName: "store:gone.txt",
		Loader:      lo,
		Name:        "gone.txt",
	}

	_, err := origin.Reload()

	var nf *template.NotFoundError

	require.ErrorAs(t, err, &nf)
}
