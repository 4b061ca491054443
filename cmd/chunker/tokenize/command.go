// Package tokenize provides the tokenize command for the chunker CLI.
package tokenize

import (
	"github.com/spf13/cobra"
)

// Command returns the tokenize command tree for the chunker CLI: encode,
// decode, and count subcommands over the vocabulary loaded from the
// root command's --vocab flag.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize",
		Short: "BPE tokenizer operations",
		Long: `Perform byte-pair-encoding operations against the loaded
o200k_base-family vocabulary.

Available commands:
  encode - Encode text to token ranks
  decode - Decode token ranks to text
  count  - Count the tokens in text without printing them`,
		Example: `  # Encode text
  chunker --vocab o200k.txt tokenize encode "Hello, world!"

  # Decode ranks
  chunker --vocab o200k.txt tokenize decode 100 2450 13

  # Count tokens
  chunker --vocab o200k.txt tokenize count "Hello, world!"`,
	}

	cmd.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
		newCountCmd(),
	)

	return cmd
}
