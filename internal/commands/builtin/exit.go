package builtin

import (
	"fmt"
	"io"

	"conshell/internal/registry"
	"conshell/pkg/contypes"
)

// loadExit registers the exit command. The command body only says goodbye;
// the interactive loop recognizes the command by name and stops after it
// executes.
func loadExit(r *registry.Registry) error {
	descriptor, err := contypes.NewCommand(contypes.CommandSpec{
		Name:        ExitCommandName,
		Description: "Leave the shell.",
		Body: func(_ *contypes.ParameterValuesList, out io.Writer) error {
			_, err := fmt.Fprintln(out, "bye.")
			return err
		},
	})
	if err != nil {
		return err
	}
	r.RegisterDefault(descriptor)
	return nil
}
