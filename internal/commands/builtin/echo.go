package builtin

import (
	"fmt"
	"io"
	"strings"

	"conshell/internal/registry"
	"conshell/pkg/contypes"
)

// loadEcho registers the echo command: it writes its text parameter to the
// output sink, optionally upper-cased.
func loadEcho(r *registry.Registry) error {
	descriptor, err := contypes.NewCommand(contypes.CommandSpec{
		Name:        "echo",
		Description: "Write the given text to the output.",
		Parameters: []contypes.ParameterSpec{
			{
				Name:        "text",
				Type:        contypes.StringType,
				Description: "The text to write.",
				Ordinal:     contypes.Ordinal(0),
			},
			{
				Name:        "upper",
				Type:        contypes.BoolType,
				Description: "Write the text in upper case.",
				Default:     contypes.Default(contypes.BoolValue(false)),
			},
		},
		Body: func(values *contypes.ParameterValuesList, out io.Writer) error {
			text := values.String("text")
			if values.Bool("upper") {
				text = strings.ToUpper(text)
			}
			_, err := fmt.Fprintln(out, text)
			return err
		},
	})
	if err != nil {
		return err
	}
	r.RegisterDefault(descriptor)
	return nil
}
