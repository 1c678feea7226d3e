package cmd

import (
	"os"

	"casetree/internal/tms"
	"casetree/pkg/logging"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeNotFound indicates the requested project was not present in the input.
	ExitCodeNotFound = 2
)

// rootCmd represents the base command for the casetree application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "casetree",
	Short: "Hierarchy-aware reports over test-management data",
	Long: `casetree resolves a project's flat suite list into its tree,
aggregates test cases by suite or root suite, and renders the result
as console text, tables, JSON or YAML. It reads project dumps exported
from the test-management service.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(logging.ParseLevel(flagLogLevel), cmd.ErrOrStderr())
	},
}

var (
	flagInput    string
	flagProject  string
	flagFormat   string
	flagLogLevel string
	flagConfig   string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagInput, "input", "i", "", "Path to a project dump file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to the configuration directory (default: ~/.config/casetree)")
	rootCmd.PersistentFlags().StringVarP(&flagProject, "project", "p", "", "Project key (defaults to the one declared in the dump)")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "console", "Output format: console, table, json, yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newTreeCmd())
	rootCmd.AddCommand(newCasesCmd())
	rootCmd.AddCommand(newPathCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// It is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "casetree version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	if tms.IsProjectNotFound(err) {
		return ExitCodeNotFound
	}
	return ExitCodeError
}
