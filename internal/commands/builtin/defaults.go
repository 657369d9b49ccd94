package builtin

import (
	"fmt"
	"io"

	"conshell/internal/registry"
	"conshell/pkg/contypes"
)

// loadDefaults registers the defaults command, which toggles whether the
// baked-in default command set participates in lookup. Disabling the set
// also disables this command itself; an explicitly registered command is
// then needed to turn it back on.
func loadDefaults(r *registry.Registry) error {
	descriptor, err := contypes.NewCommand(contypes.CommandSpec{
		Name:        "defaults",
		Description: "Enable or disable the default command set.",
		Parameters: []contypes.ParameterSpec{
			{
				Name:        "enabled",
				Type:        contypes.BoolType,
				Description: "Whether the default command set takes part in lookup.",
				Ordinal:     contypes.Ordinal(0),
			},
		},
		Body: func(values *contypes.ParameterValuesList, out io.Writer) error {
			enabled := values.Bool("enabled")
			r.SetDefaultCommandsEnabled(enabled)
			_, err := fmt.Fprintf(out, "default commands enabled: %t\n", enabled)
			return err
		},
	})
	if err != nil {
		return err
	}
	r.RegisterDefault(descriptor)
	return nil
}
