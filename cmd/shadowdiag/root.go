// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for shadowdiag.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"shadowdiag/internal/config"
	"shadowdiag/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// Verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// pkgFlag overrides the target package import name
	pkgFlag string
	// uvFlag overrides the uv command line
	uvFlag string
	// pythonFlag overrides the interpreter command line used for diagnosis
	pythonFlag string
	// keepFlag retains the throwaway reproduction project on disk
	keepFlag bool
	// diagnoseFlag switches the bare invocation from reproduce to diagnose
	diagnoseFlag bool

	// cfg is the loaded configuration; defaults when loading failed.
	cfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands.
	// Bare invocation runs the reproduction, matching the issue-report workflow
	// where the tool is pointed at a suspect environment and just run.
	rootCmd = &cobra.Command{
		Use:   "shadowdiag",
		Short: "Reproduce and diagnose Python module shadowing",
		Long: TitleStyle.Render("shadowdiag") + SubtitleStyle.Render(" - Reproduce and diagnose Python module shadowing") + `

A local file or directory that shares the import name of an installed
package shadows it: the interpreter resolves the import to the local
artifact first, and attribute access on the real package fails. The
symptom looks like a broken install, but no package manager is at fault.

shadowdiag demonstrates the failure in a throwaway uv project
(reproduce) and inspects an existing environment for shadow artifacts
(diagnose). The diagnose exit status is the number of issues found.

` + SubtitleStyle.Render("Examples:") + `
  shadowdiag                       Run the full reproduction
  shadowdiag --package numpy       Reproduce with a different package
  shadowdiag --diagnose            Diagnose the current directory
  shadowdiag diagnose              Same, as an explicit subcommand
  shadowdiag reproduce --keep      Reproduce and keep the project`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if diagnoseFlag {
				return runDiagnose(cmd)
			}
			return runReproduce(cmd)
		},
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/shadowdiag/config.cue)")
	rootCmd.PersistentFlags().StringVar(&pkgFlag, "package", "", "target package import name (default \"cffi\")")
	rootCmd.PersistentFlags().StringVar(&uvFlag, "uv", "", "uv command line (overrides UV_BINARY and config)")
	rootCmd.PersistentFlags().StringVar(&pythonFlag, "python", "", "interpreter command line for diagnosis (overrides config)")

	// Root-only flags
	rootCmd.Flags().BoolVar(&diagnoseFlag, "diagnose", false, "diagnose the current environment instead of reproducing")
	rootCmd.Flags().BoolVar(&keepFlag, "keep", false, "keep the temporary reproduction project on disk")

	// Add subcommands
	rootCmd.AddCommand(reproduceCmd)
	rootCmd.AddCommand(diagnoseCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	// Set custom config file path if provided via --config flag
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	loaded, err := config.Load()
	if err != nil {
		// Always surface config loading errors; the run continues on defaults.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		renderIssueCard(os.Stderr, issue.ConfigLoadFailedId)
	}
	if loaded != nil {
		cfg = loaded
	}

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// targetPackage resolves the target package (flag > config) and validates it.
func targetPackage() (string, error) {
	resolved := *cfg
	if pkgFlag != "" {
		resolved.Package = pkgFlag
	}
	if ok, errs := resolved.IsValid(); !ok {
		return "", issue.NewErrorContext().
			WithOperation("validate target package").
			WithResource(resolved.Package).
			WithSuggestion("Use the import name, not the distribution name (underscores, not dashes)").
			Wrap(errors.Join(errs...)).
			BuildError()
	}
	return resolved.Package, nil
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
