package helpgen

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conshell/internal/testutils"
	"conshell/pkg/contypes"
)

func noopBody(_ *contypes.ParameterValuesList, _ io.Writer) error { return nil }

func TestRender_TwoSectionLayout(t *testing.T) {
	d, err := contypes.NewCommand(contypes.CommandSpec{
		Name:        "sample",
		Description: "Line one.\nLine two.",
		Parameters: []contypes.ParameterSpec{
			{
				Name:        "p",
				Type:        contypes.StringType,
				Description: "A named-only parameter.",
				Default:     contypes.Default(contypes.StringValue("x")),
			},
		},
		Body: noopBody,
	})
	require.NoError(t, err)

	want := "sample:\n" +
		"    Line one.\n" +
		"    Line two.\n" +
		"Parameters:\n" +
		"    - p (String|x)\n" +
		"        A named-only parameter.\n"

	got := Render(d)
	assert.Equal(t, want, got, "diff:\n%s", testutils.DiffStrings(want, got))
}

func TestRender_PositionalMarkersAndDefaults(t *testing.T) {
	d, err := contypes.NewCommand(contypes.CommandSpec{
		Name:        "copy",
		Description: "Copy a file.",
		Parameters: []contypes.ParameterSpec{
			{Name: "source", Type: contypes.PathType, Description: "Source path.", Ordinal: contypes.Ordinal(0)},
			{Name: "target", Type: contypes.PathType, Description: "Target path.", Ordinal: contypes.Ordinal(1)},
			{Name: "force", Type: contypes.BoolType, Description: "Overwrite the target.", Default: contypes.Default(contypes.BoolValue(false))},
		},
		Body: noopBody,
	})
	require.NoError(t, err)

	want := "copy:\n" +
		"    Copy a file.\n" +
		"Parameters:\n" +
		"    1 source (Path)\n" +
		"        Source path.\n" +
		"    2 target (Path)\n" +
		"        Target path.\n" +
		"    - force (Bool|false)\n" +
		"        Overwrite the target.\n"

	got := Render(d)
	assert.Equal(t, want, got, "diff:\n%s", testutils.DiffStrings(want, got))
}

func TestRender_SparseOrdinalMarkers(t *testing.T) {
	// Markers come from the declared ordinals, not from the position of
	// the parameter in the rendered list.
	d, err := contypes.NewCommand(contypes.CommandSpec{
		Name:        "sparse",
		Description: "Declares non-contiguous ordinals.",
		Parameters: []contypes.ParameterSpec{
			{Name: "first", Type: contypes.StringType, Description: "Ordinal zero.", Ordinal: contypes.Ordinal(0)},
			{Name: "later", Type: contypes.StringType, Description: "Ordinal five.", Ordinal: contypes.Ordinal(5)},
		},
		Body: noopBody,
	})
	require.NoError(t, err)

	want := "sparse:\n" +
		"    Declares non-contiguous ordinals.\n" +
		"Parameters:\n" +
		"    1 first (String)\n" +
		"        Ordinal zero.\n" +
		"    6 later (String)\n" +
		"        Ordinal five.\n"

	got := Render(d)
	assert.Equal(t, want, got, "diff:\n%s", testutils.DiffStrings(want, got))
}

func TestRender_DeclarationOrderNotAlphabetical(t *testing.T) {
	d, err := contypes.NewCommand(contypes.CommandSpec{
		Name:        "order",
		Description: "Parameter order follows declaration.",
		Parameters: []contypes.ParameterSpec{
			{Name: "zeta", Type: contypes.StringType, Description: "Declared first.", Default: contypes.Default(contypes.StringValue(""))},
			{Name: "alpha", Type: contypes.StringType, Description: "Declared second.", Default: contypes.Default(contypes.StringValue(""))},
		},
		Body: noopBody,
	})
	require.NoError(t, err)

	rendered := Render(d)
	assert.Less(t, strings.Index(rendered, "zeta"), strings.Index(rendered, "alpha"))
}

func TestRender_ZeroParameters(t *testing.T) {
	d, err := contypes.NewCommand(contypes.CommandSpec{
		Name:        "ping",
		Description: "Answers with pong.",
		Body:        noopBody,
	})
	require.NoError(t, err)

	want := "ping:\n" +
		"    Answers with pong.\n" +
		"Parameters:\n"
	assert.Equal(t, want, Render(d))
}

func TestRender_LongLinesAreNotRewrapped(t *testing.T) {
	long := strings.Repeat("word ", 40) + "end."
	d, err := contypes.NewCommand(contypes.CommandSpec{
		Name:        "wide",
		Description: long,
		Body:        noopBody,
	})
	require.NoError(t, err)

	assert.Contains(t, Render(d), "    "+long+"\n")
}

func TestRenderStyled_CarriesContent(t *testing.T) {
	d, err := contypes.NewCommand(contypes.CommandSpec{
		Name:        "sample",
		Description: "A styled help sample.",
		Parameters: []contypes.ParameterSpec{
			{Name: "p", Type: contypes.StringType, Description: "A parameter.", Default: contypes.Default(contypes.StringValue("x"))},
		},
		Body: noopBody,
	})
	require.NoError(t, err)

	plain := ansi.Strip(RenderStyled(d))
	assert.Contains(t, plain, "sample")
	assert.Contains(t, plain, "p")
}
