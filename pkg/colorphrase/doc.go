/*
Package colorphrase colors the delimited parts of a phrase.

A pattern marks highlighted text with a pair of delimiters, "{" and "}" by
default. Formatting strips the delimiters and returns the text together with
color ranges: text between delimiters gets the inner color, everything else
the outer color. A doubled left delimiter ("{{") stands for a literal one.

	text, err := colorphrase.From("I'm<Chinese>,I love <China>").
		WithSeparator("<>").
		InnerColor(0xFFE6454A).
		OuterColor(0xFF666666).
		Format()

# Pipeline

Format runs three stages once and caches the result:
  - Validate checks that the delimiters balance
  - Tokenize splits the pattern into plain, literal and bracketed segments
  - Layout rewrites a copy of the pattern segment by segment and records ranges

Each stage is exported so tools can inspect a pattern without formatting it.

# Errors

All failures are *errors.Error values from pkg/errors, with codes
INVALID_ARGUMENT, MALFORMED_PATTERN, UNTERMINATED_BRACKET and
EMPTY_BRACKETED_CONTENT. Pattern errors record the rune offset of the
problem.

# Offsets

Every offset and length in this package counts runes, not bytes.
*/
package colorphrase
