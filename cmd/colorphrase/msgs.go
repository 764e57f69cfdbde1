package colorphrase

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Color the delimited parts of a phrase"
	MsgFormatShort     = "Format patterns and print the colored text"
	MsgCheckShort      = "Check that patterns are well formed"
	MsgTokensShort     = "Show the segments of a pattern"
	MsgSyntaxShort     = "Describe the pattern syntax"
	MsgTopicsShort     = "List the help topics"
	MsgGenConfigShort  = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfigWritten = "Wrote configuration to %s"
	MsgVersionFormat = "colorphrase %s (commit %s, built %s)\n"

	// Error messages
	MsgErrNoCommand      = "no command specified"
	MsgErrPatternsFailed = "%d of %d patterns failed"
	MsgErrTopicMissing   = "help topic %q not found"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Read configuration from this file"
	MsgFlagSeparator = "Delimiters, one or two characters (overrides the palette)"
	MsgFlagPalette   = "Palette to use (default from the configuration)"
	MsgFlagInner     = "Color of highlighted text, e.g. #E6454A (overrides the palette)"
	MsgFlagOuter     = "Color of the surrounding text (overrides the palette)"
	MsgFlagFormat    = "Output format: auto, term, text or json"
	MsgFlagRuler     = "Mark highlighted text with carets on the next line (text output)"
	MsgFlagFile      = "Read patterns from a file, one per line"
	MsgFlagWrite     = "Write the configuration file instead of printing it"
	MsgFlagCommented = "Comment out every value"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/format-long.txt
	msgFormatLongRaw string
	MsgFormatLong    = strings.TrimSpace(msgFormatLongRaw)

	//go:embed msgs/format-example.txt
	msgFormatExampleRaw string
	MsgFormatExample    = strings.TrimRight(msgFormatExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/tokens-long.txt
	msgTokensLongRaw string
	MsgTokensLong    = strings.TrimSpace(msgTokensLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
