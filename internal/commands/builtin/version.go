package builtin

import (
	"fmt"
	"io"

	"conshell/internal/registry"
	"conshell/internal/version"
	"conshell/pkg/contypes"
)

// loadVersion registers the version command, which prints the build's
// version information.
func loadVersion(r *registry.Registry) error {
	descriptor, err := contypes.NewCommand(contypes.CommandSpec{
		Name:        "version",
		Description: "Show version information.",
		Body: func(_ *contypes.ParameterValuesList, out io.Writer) error {
			_, err := fmt.Fprintln(out, version.Get().String())
			return err
		},
	})
	if err != nil {
		return err
	}
	r.RegisterDefault(descriptor)
	return nil
}
