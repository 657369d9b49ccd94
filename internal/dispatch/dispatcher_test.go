package dispatch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conshell/internal/registry"
	"conshell/pkg/contypes"
)

func newTestDispatcher(t *testing.T, specs ...contypes.CommandSpec) *Dispatcher {
	t.Helper()
	reg := registry.NewRegistry()
	for _, spec := range specs {
		d, err := contypes.NewCommand(spec)
		require.NoError(t, err)
		reg.Register(d)
	}
	return New(reg)
}

func sink(_ *contypes.ParameterValuesList, _ io.Writer) error { return nil }

func greetSpec() contypes.CommandSpec {
	return contypes.CommandSpec{
		Name:        "greet",
		Description: "Greets someone by name.",
		Parameters: []contypes.ParameterSpec{
			{Name: "name", Type: contypes.StringType, Description: "Who to greet.", Ordinal: contypes.Ordinal(0)},
		},
		Body: sink,
	}
}

func flagsSpec() contypes.CommandSpec {
	return contypes.CommandSpec{
		Name:        "flags",
		Description: "Exercises boolean shortcuts.",
		Parameters: []contypes.ParameterSpec{
			{Name: "a", Type: contypes.BoolType, Description: "First flag.", Ordinal: contypes.Ordinal(0), Default: contypes.Default(contypes.BoolValue(false))},
			{Name: "b", Type: contypes.BoolType, Description: "Second flag.", Default: contypes.Default(contypes.BoolValue(true))},
		},
		Body: sink,
	}
}

func TestDispatch_GreetScenario(t *testing.T) {
	d := newTestDispatcher(t, greetSpec())

	named, err := d.Dispatch(`greet name "Jean Pierre"`)
	require.NoError(t, err)
	assert.Equal(t, "Jean Pierre", named.Values().String("name"))

	positional, err := d.Dispatch(`greet "Jean Pierre"`)
	require.NoError(t, err)
	assert.Equal(t, "Jean Pierre", positional.Values().String("name"))

	_, err = d.Dispatch("greet")
	var missing *contypes.MissingParameterError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "name", missing.Name)
}

func TestDispatch_FlagsScenario(t *testing.T) {
	d := newTestDispatcher(t, flagsSpec())

	cmd, err := d.Dispatch("flags --a --not-b")
	require.NoError(t, err)
	assert.True(t, cmd.Values().Bool("a"))
	assert.False(t, cmd.Values().Bool("b"))

	cmd, err = d.Dispatch("flags")
	require.NoError(t, err)
	assert.False(t, cmd.Values().Bool("a"), "a falls back to its default")
	assert.True(t, cmd.Values().Bool("b"), "b falls back to its default")
}

func TestDispatch_ShortcutsEquivalentToNamedForm(t *testing.T) {
	d := newTestDispatcher(t, flagsSpec())

	shortcut, err := d.Dispatch("flags --a --not-b")
	require.NoError(t, err)
	named, err := d.Dispatch("flags a true b false")
	require.NoError(t, err)

	assert.Equal(t, shortcut.Values().Bool("a"), named.Values().Bool("a"))
	assert.Equal(t, shortcut.Values().Bool("b"), named.Values().Bool("b"))
}

func TestDispatch_PositionalEquivalentToNamedForm(t *testing.T) {
	spec := contypes.CommandSpec{
		Name:        "pair",
		Description: "Binds two positional parameters.",
		Parameters: []contypes.ParameterSpec{
			{Name: "first", Type: contypes.StringType, Description: "First value.", Ordinal: contypes.Ordinal(0)},
			{Name: "second", Type: contypes.IntType, Description: "Second value.", Ordinal: contypes.Ordinal(1)},
		},
		Body: sink,
	}
	d := newTestDispatcher(t, spec)

	positional, err := d.Dispatch("pair hello 42")
	require.NoError(t, err)
	named, err := d.Dispatch("pair first hello second 42")
	require.NoError(t, err)

	assert.Equal(t, positional.Values().String("first"), named.Values().String("first"))
	assert.Equal(t, positional.Values().Int("second"), named.Values().Int("second"))

	// Mixed forms bind too; the named token is consumed first, the
	// positional token fills the remaining slot.
	mixed, err := d.Dispatch("pair second 42 hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", mixed.Values().String("first"))
	assert.Equal(t, int64(42), mixed.Values().Int("second"))
}

func TestDispatch_ZeroParameterCommand(t *testing.T) {
	d := newTestDispatcher(t, contypes.CommandSpec{
		Name:        "ping",
		Description: "Answers with pong.",
		Body:        sink,
	})

	cmd, err := d.Dispatch("ping")
	require.NoError(t, err)
	assert.Equal(t, 0, cmd.Values().Len())
}

func TestDispatch_EmptyAndUnknown(t *testing.T) {
	d := newTestDispatcher(t, greetSpec())

	_, err := d.Dispatch("")
	var notSupported *contypes.CommandNotSupportedError
	require.True(t, errors.As(err, &notSupported))
	assert.Equal(t, "", notSupported.Name)

	_, err = d.Dispatch("   \t ")
	require.True(t, errors.As(err, &notSupported))

	_, err = d.Dispatch("unknowncmd x")
	require.True(t, errors.As(err, &notSupported))
	assert.Equal(t, "unknowncmd", notSupported.Name)
}

func TestDispatch_ErrorTaxonomy(t *testing.T) {
	specs := []contypes.CommandSpec{
		greetSpec(),
		flagsSpec(),
		{
			Name:        "typed",
			Description: "Has an int parameter.",
			Parameters: []contypes.ParameterSpec{
				{Name: "count", Type: contypes.IntType, Description: "A count.", Ordinal: contypes.Ordinal(0)},
			},
			Body: sink,
		},
	}

	tests := []struct {
		name    string
		line    string
		errKind any
	}{
		{"type mismatch positional", "typed abc", new(*contypes.TypeMismatchError)},
		{"type mismatch named", "typed count abc", new(*contypes.TypeMismatchError)},
		{"shortcut on non-boolean", "typed --count", new(*contypes.TypeMismatchError)},
		{"duplicate named", `greet name a name b`, new(*contypes.DuplicateParameterError)},
		{"duplicate positional then named", `greet a name b`, new(*contypes.DuplicateParameterError)},
		{"duplicate shortcut", "flags --a --a", new(*contypes.DuplicateParameterError)},
		{"duplicate shortcut then named", "flags --a a true", new(*contypes.DuplicateParameterError)},
		{"unknown parameter name", "flags --c", new(*contypes.ParameterNotFoundError)},
		{"extra positional token", "greet a b", new(*contypes.ParameterNotFoundError)},
		{"named without value", "greet name", new(*contypes.MissingParameterError)},
		{"tokenizer failure surfaces", `greet "Jean`, new(*contypes.FormatError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDispatcher(t, specs...)
			_, err := d.Dispatch(tt.line)
			require.Error(t, err)
			assert.True(t, errors.As(err, tt.errKind), "got %T: %v", err, err)
		})
	}
}

func TestDispatch_ExtraTokenWithoutOpenSlot(t *testing.T) {
	d := newTestDispatcher(t, contypes.CommandSpec{
		Name:        "ping",
		Description: "Takes no parameters.",
		Body:        sink,
	})

	_, err := d.Dispatch("ping stray")
	var notFound *contypes.ParameterNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "stray", notFound.Name)
}

func TestDispatch_TypeMismatchNamesParameter(t *testing.T) {
	d := newTestDispatcher(t, contypes.CommandSpec{
		Name:        "typed",
		Description: "Has an int parameter.",
		Parameters: []contypes.ParameterSpec{
			{Name: "count", Type: contypes.IntType, Description: "A count.", Ordinal: contypes.Ordinal(0)},
		},
		Body: sink,
	})

	_, err := d.Dispatch("typed abc")
	var mismatch *contypes.TypeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "count", mismatch.Parameter)
	assert.Equal(t, "abc", mismatch.Token)
	assert.Equal(t, "Int", mismatch.ExpectedType)
}

func TestDispatch_NameRecognitionPrecedesPositional(t *testing.T) {
	// A token equal to a declared parameter name is never treated
	// positionally, even while a positional slot is open.
	d := newTestDispatcher(t, contypes.CommandSpec{
		Name:        "tricky",
		Description: "Positional value colliding with a parameter name.",
		Parameters: []contypes.ParameterSpec{
			{Name: "text", Type: contypes.StringType, Description: "A value.", Ordinal: contypes.Ordinal(0), Default: contypes.Default(contypes.StringValue(""))},
			{Name: "mode", Type: contypes.StringType, Description: "A mode.", Default: contypes.Default(contypes.StringValue("plain"))},
		},
		Body: sink,
	})

	cmd, err := d.Dispatch("tricky mode fancy")
	require.NoError(t, err)
	assert.Equal(t, "fancy", cmd.Values().String("mode"))
	_, err = d.Dispatch("tricky mode")
	var missing *contypes.MissingParameterError
	require.True(t, errors.As(err, &missing), "bare name token starts a named binding, got %v", err)

	// Binding by name is the documented escape hatch.
	cmd, err = d.Dispatch("tricky text mode")
	require.NoError(t, err)
	assert.Equal(t, "mode", cmd.Values().String("text"))
	assert.Equal(t, "plain", cmd.Values().String("mode"))
}

func TestDispatch_EnumParameter(t *testing.T) {
	color, err := contypes.NewEnumType("Color", "RED", "GREEN")
	require.NoError(t, err)

	d := newTestDispatcher(t, contypes.CommandSpec{
		Name:        "paint",
		Description: "Paints in a color.",
		Parameters: []contypes.ParameterSpec{
			{Name: "color", Type: color, Description: "The color.", Ordinal: contypes.Ordinal(0)},
		},
		Body: sink,
	})

	cmd, err := d.Dispatch("paint RED")
	require.NoError(t, err)
	assert.Equal(t, "RED", cmd.Values().String("color"))

	_, err = d.Dispatch("paint red")
	var mismatch *contypes.TypeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "Color", mismatch.ExpectedType)
}

func TestDispatch_DeleteInputFlagCarried(t *testing.T) {
	d := newTestDispatcher(t, contypes.CommandSpec{
		Name:                 "secret",
		Description:          "Handles sensitive input.",
		DeleteInputOnExecute: true,
		Body:                 sink,
	})

	cmd, err := d.Dispatch("secret")
	require.NoError(t, err)
	assert.True(t, cmd.DeleteInput())
}

func TestExecute_Success(t *testing.T) {
	d := newTestDispatcher(t, contypes.CommandSpec{
		Name:        "hello",
		Description: "Writes a greeting.",
		Body: func(_ *contypes.ParameterValuesList, out io.Writer) error {
			_, err := fmt.Fprintln(out, "hello")
			return err
		},
	})

	cmd, err := d.Dispatch("hello")
	require.NoError(t, err)

	var out bytes.Buffer
	result := d.Execute(cmd, &out)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "hello\n", out.String())
}

func TestExecute_BodyFailureIsCaught(t *testing.T) {
	d := newTestDispatcher(t, contypes.CommandSpec{
		Name:        "broken",
		Description: "Always fails.",
		Body: func(_ *contypes.ParameterValuesList, _ io.Writer) error {
			return errors.New("boom")
		},
	})

	cmd, err := d.Dispatch("broken")
	require.NoError(t, err)

	var out bytes.Buffer
	result := d.Execute(cmd, &out)
	assert.False(t, result.Success)
}

func TestExecute_BodyPanicIsCaught(t *testing.T) {
	d := newTestDispatcher(t, contypes.CommandSpec{
		Name:        "panicky",
		Description: "Panics on execution.",
		Body: func(_ *contypes.ParameterValuesList, _ io.Writer) error {
			panic("unexpected")
		},
	})

	cmd, err := d.Dispatch("panicky")
	require.NoError(t, err)

	var out bytes.Buffer
	result := d.Execute(cmd, &out)
	assert.False(t, result.Success)
}
