package colorphrase

import (
	"bufio"
	"io"
	"os"

	"github.com/arthur-debert/colorphrase/pkg/errors"
	"github.com/spf13/cobra"
)

// readPatterns collects the patterns a command works on: the arguments,
// the lines of --file, or the lines of stdin when there are no arguments
// or the only argument is "-".
func readPatterns(cmd *cobra.Command, args []string) ([]string, error) {
	if cmd.Flags().Lookup("file") != nil && cmd.Flags().Changed("file") {
		path, _ := cmd.Flags().GetString("file")
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot open pattern file %s", path).
				WithDetail(errors.DetailPath, path)
		}
		defer func() { _ = f.Close() }()
		patterns, err := readLines(f)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read pattern file %s", path).
				WithDetail(errors.DetailPath, path)
		}
		return append(patterns, args...), nil
	}

	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		patterns, err := readLines(cmd.InOrStdin())
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read patterns from stdin")
		}
		return patterns, nil
	}

	return args, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
