package tokenize

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/blenbot/RustyChunker-for-gpt4/cmd/chunker/shared"
)

// newCountCmd creates the count subcommand.
func newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count [text]",
		Short: "Count the tokens in text without printing them",
		Long: `Count how many tokens text encodes to, without printing the
token ranks themselves. If no text is given as an argument, reads from
stdin.`,
		Example: `  # Count tokens in a string
  chunker --vocab o200k.txt tokenize count "Hello, world!"`,
		RunE: runCount,
	}
}

func runCount(_ *cobra.Command, args []string) error {
	eng, err := shared.LoadEngine()
	if err != nil {
		return err
	}

	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(raw)
	}

	count, err := eng.Count(text)
	if err != nil {
		return fmt.Errorf("count: %w", err)
	}

	fmt.Printf("%s tokens (%s bytes)\n", humanize.Comma(int64(count)), humanize.Comma(int64(len(text))))
	return nil
}
