package cli

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/rileyhilliard/gradtop/internal/errors"
	"github.com/spf13/cobra"
)

// Global flags
var (
	configFlag  string
	debugFlag   bool
	logFileFlag string
)

var rootCmd = &cobra.Command{
	Use:   "gradtop",
	Short: "Live terminal chart for training metrics",
	Long: `gradtop draws a live chart of a scalar metric, like a training loss,
in your terminal while the computation producing it keeps running.

The chart shows the most recent samples (30 by default) and redraws every
16ms. Press any key to close it.

Examples:
  gradtop demo
  python train.py | gradtop pipe
  gradtop config set chart.value_title "Train loss"`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default: .gradtop.yaml, then ~/.config/gradtop/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "include debug messages in the log file")
	rootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "write diagnostics to this file (the terminal is busy with the chart)")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError renders err for the terminal, adding a hint for typos.
func formatError(err error) string {
	if isUnknownCommandError(err) {
		msg := err.Error()
		if name := extractUnknownCommand(err); name != "" {
			msg = fmt.Sprintf("'%s' isn't a gradtop command", name)
		}
		return errors.New(errors.ErrInput, msg, "Run 'gradtop --help' to see what's available.").Error()
	}

	var e *errors.Error
	if stderrors.As(err, &e) {
		return e.Error()
	}
	return fmt.Sprintf("✗ %s\n", err)
}

// isUnknownCommandError reports whether cobra rejected the command line.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag") || strings.HasPrefix(msg, "unknown shorthand flag")
}

// extractUnknownCommand pulls the command name out of cobra's
// `unknown command "foo" for "gradtop"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	if !strings.HasPrefix(msg, "unknown command") {
		return ""
	}
	start := strings.Index(msg, `"`)
	if start == -1 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end == -1 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
