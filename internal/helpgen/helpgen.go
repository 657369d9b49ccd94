// Package helpgen renders command descriptors into help text. Render
// produces the fixed plain-text layout that the help command's consumers
// assert byte-for-byte; RenderStyled is a terminal-friendly convenience on
// top of the same content.
package helpgen

import (
	"strconv"
	"strings"

	"conshell/pkg/contypes"
)

const (
	descriptionIndent = "    "
	parameterIndent   = "    "
	parameterDetail   = "        "
)

// Render produces the fixed-format help text for one descriptor:
//
//	name:
//	    description, one indented line per existing line break
//	Parameters:
//	    <marker> <name> (<Type>|<default>)
//	        parameter description
//
// The marker is the parameter's declared ordinal plus one, and a dash for
// named-only parameters. It reflects the declaration, not the parameter's
// position in the rendered list: a command declaring ordinals 0 and 5
// shows markers 1 and 6. Parameters appear in declaration order;
// description lines are never re-wrapped.
func Render(d *contypes.CommandDescriptor) string {
	var b strings.Builder

	b.WriteString(d.Name())
	b.WriteString(":\n")
	for _, line := range strings.Split(d.Description(), "\n") {
		b.WriteString(descriptionIndent)
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteString("Parameters:\n")
	for _, p := range d.Parameters() {
		marker := "-"
		if ord, ok := p.Ordinal(); ok {
			marker = strconv.Itoa(ord + 1)
		}
		typeLabel := p.Type().Name()
		if def, ok := p.DefaultValue(); ok {
			typeLabel += "|" + def.String()
		}

		b.WriteString(parameterIndent)
		b.WriteString(marker)
		b.WriteByte(' ')
		b.WriteString(p.Name())
		b.WriteString(" (")
		b.WriteString(typeLabel)
		b.WriteString(")\n")
		for _, line := range strings.Split(p.Description(), "\n") {
			b.WriteString(parameterDetail)
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	return b.String()
}
