// Package shell provides the interactive loop of conshell: it reads one
// line, dispatches it, executes the command, prints the outcome, and blocks
// for the next line. There is no overlap between commands.
package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/ishell/v2"

	"conshell/internal/commands/builtin"
	"conshell/internal/dispatch"
	"conshell/internal/logger"
	"conshell/internal/registry"
)

// Shell couples a dispatcher with the interactive front end.
type Shell struct {
	dispatcher *dispatch.Dispatcher
	prompt     string
}

// New creates a shell over the given registry with the default command set
// loaded.
func New(reg *registry.Registry, prompt string) *Shell {
	builtin.Load(reg)
	return &Shell{
		dispatcher: dispatch.New(reg),
		prompt:     prompt,
	}
}

// HandleLine processes one raw input line against the output sink and
// reports whether the loop should stop. Blank lines and comment lines
// (starting with %%) are skipped. Dispatch failures are printed with their
// taxonomy message; body failures surface as a failed execution result.
func (s *Shell) HandleLine(line string, out io.Writer) (exit bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "%%") {
		return false
	}

	cmd, err := s.dispatcher.Dispatch(line)
	if err != nil {
		fmt.Fprintf(out, "error: %s\n", err)
		return false
	}

	// Sensitive commands keep their raw line out of the logs.
	if !cmd.DeleteInput() {
		logger.Debug("Executing input", "input", line)
	}

	result := s.dispatcher.Execute(cmd, out)
	if !result.Success {
		fmt.Fprintf(out, "command %s failed\n", cmd.Descriptor().Name())
	}
	return cmd.Descriptor().Name() == builtin.ExitCommandName
}

// Run starts the interactive loop and blocks until the exit command runs or
// input ends.
func (s *Shell) Run() {
	sh := ishell.New()
	sh.SetPrompt(s.prompt)

	// The engine's own commands replace the ishell builtins.
	sh.DeleteCmd("exit")
	sh.DeleteCmd("help")

	sh.NotFound(func(c *ishell.Context) {
		raw := strings.Join(c.RawArgs, " ")
		var b strings.Builder
		if s.HandleLine(raw, &b) {
			defer sh.Stop()
		}
		if b.Len() > 0 {
			c.Print(b.String())
		}
	})

	sh.Run()
}
