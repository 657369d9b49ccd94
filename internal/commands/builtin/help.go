package builtin

import (
	"fmt"
	"io"

	"conshell/internal/helpgen"
	"conshell/internal/registry"
	"conshell/pkg/contypes"
)

// loadHelp registers the help command. Without an argument it lists all
// visible commands with their first description line; with a command name
// it renders that command's full fixed-format help text.
func loadHelp(r *registry.Registry) error {
	descriptor, err := contypes.NewCommand(contypes.CommandSpec{
		Name:        "help",
		Description: "Show help for a command, or list all commands.",
		Parameters: []contypes.ParameterSpec{
			{
				Name:        "command",
				Type:        contypes.StringType,
				Description: "The command to describe. Lists all commands when empty.",
				Ordinal:     contypes.Ordinal(0),
				Default:     contypes.Default(contypes.StringValue("")),
			},
		},
		Body: func(values *contypes.ParameterValuesList, out io.Writer) error {
			name := values.String("command")
			if name == "" {
				return listCommands(r, out)
			}
			descriptor, ok := r.Lookup(name)
			if !ok {
				return &contypes.CommandNotSupportedError{Name: name}
			}
			_, err := io.WriteString(out, helpgen.Render(descriptor))
			return err
		},
	})
	if err != nil {
		return err
	}
	r.RegisterDefault(descriptor)
	return nil
}

func listCommands(r *registry.Registry, out io.Writer) error {
	for _, d := range r.Commands() {
		description := d.Description()
		for i := 0; i < len(description); i++ {
			if description[i] == '\n' {
				description = description[:i]
				break
			}
		}
		if _, err := fmt.Fprintf(out, "%s - %s\n", d.Name(), description); err != nil {
			return err
		}
	}
	return nil
}
