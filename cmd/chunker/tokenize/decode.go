package tokenize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blenbot/RustyChunker-for-gpt4/cmd/chunker/shared"
)

// newDecodeCmd creates the decode subcommand.
func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [rank...]",
		Short: "Decode token ranks to text",
		Long: `Decode a list of token ranks back into text using the loaded
vocabulary.`,
		Example: `  # Decode a sequence of ranks
  chunker --vocab o200k.txt tokenize decode 100 2450 13`,
		Args: cobra.MinimumNArgs(1),
		RunE: runDecode,
	}
}

func runDecode(_ *cobra.Command, args []string) error {
	eng, err := shared.LoadEngine()
	if err != nil {
		return err
	}

	ranks := make([]uint32, len(args))
	for i, a := range args {
		n, err := strconv.ParseUint(strings.TrimSpace(a), 10, 32)
		if err != nil {
			return fmt.Errorf("invalid rank %q: %w", a, err)
		}
		ranks[i] = uint32(n)
	}

	text, err := eng.Decode(ranks)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	fmt.Println(text)
	return nil
}
