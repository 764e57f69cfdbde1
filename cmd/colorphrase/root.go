// Package colorphrase implements the colorphrase command line.
package colorphrase

import (
	"fmt"

	"github.com/arthur-debert/colorphrase/internal/version"
	"github.com/arthur-debert/colorphrase/pkg/colorphrase"
	"github.com/arthur-debert/colorphrase/pkg/errors"
	"github.com/arthur-debert/colorphrase/pkg/help"
	"github.com/arthur-debert/colorphrase/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// reportedError is returned when failures were already rendered to the
// output and only the exit status is left to set.
type reportedError struct {
	failed, total int
}

func (e *reportedError) Error() string {
	return fmt.Sprintf(MsgErrPatternsFailed, e.failed, e.total)
}

// IsReported reports whether err only signals failures the command has
// already printed.
func IsReported(err error) bool {
	var reported *reportedError
	return errors.As(err, &reported)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity  int
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:     "colorphrase",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			colorphrase.SetLogger(logging.GetLogger("colorphrase"))
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidArgument, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// topics are embedded, so this only fails on a broken build
	topics, err := help.Initialize(rootCmd, help.Options{Renderer: help.NewGlamourRenderer()})
	if err != nil {
		log.Error().Err(err).Msg("Help topics unavailable")
		topics = nil
	}

	rootCmd.AddCommand(newFormatCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newSyntaxCmd(topics))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}
