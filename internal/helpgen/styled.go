package helpgen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"conshell/pkg/contypes"
)

// RenderStyled renders a descriptor as ANSI-styled terminal output by
// passing a markdown rendition of the help content through glamour. On
// terminals without color support, or when glamour fails, it falls back to
// the plain fixed-format layout.
func RenderStyled(d *contypes.CommandDescriptor) string {
	if termenv.ColorProfile() == termenv.Ascii {
		return Render(d)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return Render(d)
	}

	styled, err := renderer.Render(markdown(d))
	if err != nil {
		return Render(d)
	}
	return styled
}

// markdown renders the same content as Render, as a markdown document.
func markdown(d *contypes.CommandDescriptor) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s\n\n", d.Name())
	b.WriteString(d.Description())
	b.WriteString("\n\n### Parameters\n\n")

	for _, p := range d.Parameters() {
		marker := "named"
		if ord, ok := p.Ordinal(); ok {
			marker = fmt.Sprintf("position %d", ord+1)
		}
		typeLabel := p.Type().Name()
		if def, ok := p.DefaultValue(); ok {
			typeLabel += fmt.Sprintf(", default `%s`", def.String())
		}
		fmt.Fprintf(&b, "- **%s** (%s; %s): %s\n", p.Name(), typeLabel, marker, p.Description())
	}

	return b.String()
}
