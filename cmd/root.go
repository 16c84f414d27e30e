package cmd

import (
	"fmt"
	"os"

	"ctxpack/pkg/clipboard"
	"ctxpack/pkg/console"
	"ctxpack/pkg/logging"
	"ctxpack/pkg/pack"
	"ctxpack/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	debug   bool
	noPause bool

	logger = zap.NewNop()

	// newCopier is swapped out in tests so they never touch the real clipboard.
	newCopier = func() clipboard.Copier { return clipboard.System{} }

	// stdinIsTerminal gates the final Enter prompt.
	stdinIsTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

// RootCmd packs the working directory when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "ctxpack",
	Short: "ctxpack packs project sources into one file for AI assistants",
	Long: `ctxpack walks the current directory, concatenates every .cs, .xaml, .config
and .xml file (skipping obj, bin, .git, .vs, packages and Properties folders)
after the optional _AI_RULES.md document, writes the result to
_context_for_ai.txt and copies it to the clipboard when one is available.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(debug, "ctxpack", version.Get().Version)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		reporter := console.NewReporter(cmd.OutOrStdout())
		summary, err := pack.New(pack.DefaultConfig(root), newCopier(), reporter, logger).Run()
		if err != nil {
			return err
		}
		reporter.Summary(summary)

		if noPause || !stdinIsTerminal() {
			return nil
		}
		if err := console.WaitForEnter(cmd.OutOrStdout(), cmd.InOrStdin()); err != nil {
			logger.Debug("Failed to read acknowledgment", zap.Error(err))
		}
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	RootCmd.Flags().BoolVar(&noPause, "no-pause", false, "Exit without waiting for Enter")
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// Logger returns the logger built for the last command, or a no-op logger
// when none was built.
func Logger() *zap.Logger {
	return logger
}
