package builtin

import (
	"io"

	"gopkg.in/yaml.v3"

	"conshell/internal/registry"
	"conshell/pkg/contypes"
)

// catalogEntry is the YAML shape of one command in the catalog dump.
type catalogEntry struct {
	Name        string             `yaml:"name"`
	Description string             `yaml:"description"`
	Parameters  []catalogParameter `yaml:"parameters,omitempty"`
}

type catalogParameter struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
	Ordinal     *int   `yaml:"ordinal,omitempty"`
	Default     string `yaml:"default,omitempty"`
}

// loadCatalog registers the catalog command, which dumps the metadata of
// every command visible to lookup as YAML.
func loadCatalog(r *registry.Registry) error {
	descriptor, err := contypes.NewCommand(contypes.CommandSpec{
		Name:        "catalog",
		Description: "Dump all registered commands as YAML.",
		Body: func(_ *contypes.ParameterValuesList, out io.Writer) error {
			var entries []catalogEntry
			for _, d := range r.Commands() {
				entry := catalogEntry{
					Name:        d.Name(),
					Description: d.Description(),
				}
				for _, p := range d.Parameters() {
					cp := catalogParameter{
						Name:        p.Name(),
						Type:        p.Type().Name(),
						Description: p.Description(),
					}
					if ord, ok := p.Ordinal(); ok {
						cp.Ordinal = &ord
					}
					if def, ok := p.DefaultValue(); ok {
						cp.Default = def.String()
					}
					entry.Parameters = append(entry.Parameters, cp)
				}
				entries = append(entries, entry)
			}
			encoder := yaml.NewEncoder(out)
			defer func() { _ = encoder.Close() }()
			return encoder.Encode(entries)
		},
	})
	if err != nil {
		return err
	}
	r.RegisterDefault(descriptor)
	return nil
}
