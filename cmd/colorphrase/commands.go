package colorphrase

import (
	"fmt"

	"github.com/arthur-debert/colorphrase/internal/version"
	"github.com/arthur-debert/colorphrase/pkg/colorphrase"
	"github.com/arthur-debert/colorphrase/pkg/config"
	"github.com/arthur-debert/colorphrase/pkg/errors"
	"github.com/arthur-debert/colorphrase/pkg/help"
	"github.com/arthur-debert/colorphrase/pkg/logging"
	"github.com/arthur-debert/colorphrase/pkg/paths"
	"github.com/arthur-debert/colorphrase/pkg/ui/display"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "format [pattern...]",
		Short:   MsgFormatShort,
		Long:    MsgFormatLong,
		Example: MsgFormatExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logging.LogOperationStart(logging.GetLogger("cmd.format"), "format")()

			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			patterns, err := readPatterns(cmd, args)
			if err != nil {
				return err
			}
			out, errOut, err := s.renderers(cmd)
			if err != nil {
				return err
			}

			log.Info().
				Int("patterns", len(patterns)).
				Str("separator", s.phrase.Separator.String()).
				Str("format", s.format.String()).
				Msg("Formatting patterns")

			failed := 0
			for _, pattern := range patterns {
				styled, err := colorphrase.From(pattern).WithConfig(s.phrase).Format()
				if err != nil {
					failed++
					if rerr := errOut.RenderError(err); rerr != nil {
						return rerr
					}
					continue
				}
				if err := out.RenderResult(display.FormatResult{Pattern: pattern, Styled: styled}); err != nil {
					return err
				}
			}

			if failed > 0 {
				return &reportedError{failed: failed, total: len(patterns)}
			}
			return nil
		},
	}

	addPhraseFlags(cmd)
	addColorFlags(cmd)
	cmd.Flags().String("file", "", MsgFlagFile)

	return cmd
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check [pattern...]",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			patterns, err := readPatterns(cmd, args)
			if err != nil {
				return err
			}
			out, _, err := s.renderers(cmd)
			if err != nil {
				return err
			}

			failed := 0
			for _, pattern := range patterns {
				_, err := colorphrase.From(pattern).WithConfig(s.phrase).Segments()
				if err != nil {
					failed++
				}
				if rerr := out.RenderResult(display.NewCheckResult(pattern, err)); rerr != nil {
					return rerr
				}
			}

			if failed > 0 {
				return &reportedError{failed: failed, total: len(patterns)}
			}
			return nil
		},
	}

	addPhraseFlags(cmd)
	cmd.Flags().String("file", "", MsgFlagFile)

	return cmd
}

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tokens <pattern>...",
		Short:   MsgTokensShort,
		Long:    MsgTokensLong,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			out, errOut, err := s.renderers(cmd)
			if err != nil {
				return err
			}

			failed := 0
			for _, pattern := range args {
				segments, err := colorphrase.From(pattern).WithConfig(s.phrase).Segments()
				if err != nil {
					failed++
					if rerr := errOut.RenderError(err); rerr != nil {
						return rerr
					}
					continue
				}
				result := display.TokensResult{
					Pattern:   pattern,
					Separator: s.phrase.Separator.String(),
					Segments:  segments,
				}
				if err := out.RenderResult(result); err != nil {
					return err
				}
			}

			if failed > 0 {
				return &reportedError{failed: failed, total: len(args)}
			}
			return nil
		},
	}

	addPhraseFlags(cmd)

	return cmd
}

func newSyntaxCmd(topics *help.TopicManager) *cobra.Command {
	return &cobra.Command{
		Use:     "syntax",
		Short:   MsgSyntaxShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if topics == nil {
				return errors.Newf(errors.ErrInternal, MsgErrTopicMissing, "syntax")
			}
			shown, err := topics.Show(cmd.OutOrStdout(), "syntax")
			if err != nil {
				return err
			}
			if !shown {
				return errors.Newf(errors.ErrInternal, MsgErrTopicMissing, "syntax")
			}
			return nil
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.RunE != nil {
				return helpCmd.RunE(helpCmd, []string{"topics"})
			}
			return errors.Newf(errors.ErrInternal, MsgErrTopicMissing, "topics")
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.genconfig")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			content, err := config.Generate(cfg)
			if err != nil {
				return err
			}
			if commented, _ := cmd.Flags().GetBool("commented"); commented {
				content = config.CommentOut(content)
			}

			if write, _ := cmd.Flags().GetBool("write"); !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			target, _ := cmd.Root().PersistentFlags().GetString("config")
			if target == "" {
				target = paths.New().ConfigFile()
			}
			if err := config.Write(target, content); err != nil {
				return err
			}
			logger.Info().Str("path", target).Msg("Written config file")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten+"\n", target)
			return err
		},
	}

	cmd.Flags().BoolP("write", "w", false, MsgFlagWrite)
	cmd.Flags().Bool("commented", false, MsgFlagCommented)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
