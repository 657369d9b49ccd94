// Package builtin provides the baked-in default command set. Every command
// is a descriptor plus a body closure, registered through the explicit
// loader table; the registry's default-commands toggle controls whether the
// set participates in lookup.
package builtin

import "conshell/internal/registry"

// Loader identifiers for the default command set.
const (
	EchoIdentifier     = "conshell/internal/commands/builtin.Echo"
	HelpIdentifier     = "conshell/internal/commands/builtin.Help"
	VersionIdentifier  = "conshell/internal/commands/builtin.Version"
	ExitIdentifier     = "conshell/internal/commands/builtin.Exit"
	DefaultsIdentifier = "conshell/internal/commands/builtin.Defaults"
	CatalogIdentifier  = "conshell/internal/commands/builtin.Catalog"
)

// ExitCommandName is checked by the interactive loop to terminate after the
// exit command runs.
const ExitCommandName = "exit"

// Identifiers lists the loader identifiers of the whole default set in a
// stable order.
func Identifiers() []string {
	return []string{
		EchoIdentifier,
		HelpIdentifier,
		VersionIdentifier,
		ExitIdentifier,
		DefaultsIdentifier,
		CatalogIdentifier,
	}
}

// Load ensures the whole default set is registered into the given registry.
func Load(r *registry.Registry) {
	r.EnsureLoaded(Identifiers()...)
}

func init() {
	registry.RegisterLoader(EchoIdentifier, loadEcho)
	registry.RegisterLoader(HelpIdentifier, loadHelp)
	registry.RegisterLoader(VersionIdentifier, loadVersion)
	registry.RegisterLoader(ExitIdentifier, loadExit)
	registry.RegisterLoader(DefaultsIdentifier, loadDefaults)
	registry.RegisterLoader(CatalogIdentifier, loadCatalog)
}
