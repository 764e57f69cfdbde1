package colorphrase

import (
	"github.com/arthur-debert/colorphrase/pkg/colorphrase"
	"github.com/arthur-debert/colorphrase/pkg/config"
	"github.com/arthur-debert/colorphrase/pkg/ui"
	"github.com/spf13/cobra"
)

// settings is what a command needs to format patterns: the configuration
// file merged with the command line flags.
type settings struct {
	cfg    *config.Config
	phrase colorphrase.Config
	format ui.Format
	ruler  bool
}

// addPhraseFlags registers the flags that select separator and palette
func addPhraseFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("separator", "s", "", MsgFlagSeparator)
	cmd.Flags().StringP("palette", "p", "", MsgFlagPalette)
	cmd.Flags().StringP("format", "f", "", MsgFlagFormat)

	_ = cmd.RegisterFlagCompletionFunc("palette", paletteCompletion)
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return ui.FormatNames, cobra.ShellCompDirectiveNoFileComp
	})
}

// addColorFlags registers the flags only the format command uses
func addColorFlags(cmd *cobra.Command) {
	cmd.Flags().String("inner", "", MsgFlagInner)
	cmd.Flags().String("outer", "", MsgFlagOuter)
	cmd.Flags().Bool("ruler", false, MsgFlagRuler)
}

// loadConfig reads the configuration, honoring the global --config flag
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Root().PersistentFlags().GetString("config")
	return config.Load(path)
}

// resolveSettings merges the configuration with the flags set on cmd.
// Flags a command does not define are left at the configured values.
func resolveSettings(cmd *cobra.Command) (*settings, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	palette, _ := cmd.Flags().GetString("palette")
	phrase, err := cfg.Resolve(palette)
	if err != nil {
		return nil, err
	}

	if spec, _ := cmd.Flags().GetString("separator"); cmd.Flags().Changed("separator") {
		sep, err := colorphrase.ParseSeparator(spec)
		if err != nil {
			return nil, err
		}
		phrase.Separator = sep
	}
	if err := colorFlag(cmd, "inner", &phrase.Inner); err != nil {
		return nil, err
	}
	if err := colorFlag(cmd, "outer", &phrase.Outer); err != nil {
		return nil, err
	}

	formatName := cfg.Format
	if cmd.Flags().Changed("format") {
		formatName, _ = cmd.Flags().GetString("format")
	}
	format, err := ui.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}

	ruler := cfg.Ruler
	if cmd.Flags().Changed("ruler") {
		ruler, _ = cmd.Flags().GetBool("ruler")
	}

	return &settings{cfg: cfg, phrase: phrase, format: format, ruler: ruler}, nil
}

// colorFlag parses a color flag into dst when the flag was given
func colorFlag(cmd *cobra.Command, name string, dst *colorphrase.Color) error {
	if cmd.Flags().Lookup(name) == nil || !cmd.Flags().Changed(name) {
		return nil
	}
	value, _ := cmd.Flags().GetString(name)
	c, err := colorphrase.ParseColor(value)
	if err != nil {
		return err
	}
	*dst = c
	return nil
}

// renderers returns one renderer for results on stdout and one for errors
// on stderr. JSON keeps both on stdout so the stream stays parseable.
func (s *settings) renderers(cmd *cobra.Command) (out ui.Renderer, errOut ui.Renderer, err error) {
	opts := ui.Options{Ruler: s.ruler}
	out, err = ui.NewRenderer(s.format, cmd.OutOrStdout(), opts)
	if err != nil {
		return nil, nil, err
	}
	if s.format == ui.FormatJSON {
		return out, out, nil
	}
	errOut, err = ui.NewRenderer(s.format, cmd.ErrOrStderr(), opts)
	if err != nil {
		return nil, nil, err
	}
	return out, errOut, nil
}

func paletteCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return cfg.PaletteNames(), cobra.ShellCompDirectiveNoFileComp
}
