// Package main provides the conshell CLI application entry point: an
// interactive command shell backed by the parsing and dispatch engine.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"conshell/internal/commands/builtin"
	"conshell/internal/config"
	"conshell/internal/dispatch"
	"conshell/internal/logger"
	"conshell/internal/registry"
	"conshell/internal/shell"
	"conshell/internal/version"
)

var (
	logLevel   string
	logFile    string
	testMode   bool
	noDefaults bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "conshell",
	Short: "conshell - command parsing and dispatch shell",
	Long: `conshell is an interactive command shell built on a parsing and dispatch
engine: lines are tokenized with quoting and escapes, bound to declared
parameters positionally or by name, and executed against registered commands.`,
	Run: runShell,
}

// shellCmd is the explicit version of the default behavior.
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start interactive shell mode",
	Run:   runShell,
}

// execCmd dispatches a single command line and exits.
var execCmd = &cobra.Command{
	Use:   "exec <line...>",
	Short: "Dispatch a single command line in batch mode",
	Args:  cobra.MinimumNArgs(1),
	Run:   runExec,
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.Get().String())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&testMode, "test-mode", false, "Run in deterministic test mode")
	rootCmd.PersistentFlags().BoolVar(&noDefaults, "no-defaults", false, "Start with the default command set disabled")

	for _, flag := range []string{"log-level", "log-file", "test-mode"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", flag, err)
			os.Exit(1)
		}
	}

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if err := logger.Configure(logLevel, logFile, testMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

func newRegistry(cfg *config.Config) *registry.Registry {
	reg := registry.GetGlobalRegistry()
	logger.Debug("Command loaders available", "identifiers", registry.LoaderIdentifiers())
	builtin.Load(reg)
	if noDefaults || !cfg.DefaultCommands {
		reg.SetDefaultCommandsEnabled(false)
	}
	return reg
}

func runShell(_ *cobra.Command, _ []string) {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}

	logger.Info("Starting conshell", "version", version.GetBaseVersion())
	reg := newRegistry(cfg)

	sh := shell.New(reg, cfg.Prompt)
	fmt.Printf("conshell v%s - type \"help\" for commands, \"exit\" to quit.\n", version.GetBaseVersion())
	sh.Run()
}

func runExec(_ *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}

	reg := newRegistry(cfg)
	dispatcher := dispatch.New(reg)

	line := strings.Join(args, " ")
	cmd, err := dispatcher.Dispatch(line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}

	result := dispatcher.Execute(cmd, os.Stdout)
	if !result.Success {
		os.Exit(1)
	}
}
