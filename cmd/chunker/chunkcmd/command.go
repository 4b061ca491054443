// Package chunkcmd provides the chunk command for the chunker CLI.
package chunkcmd

import (
	"github.com/spf13/cobra"
)

// Command returns the chunk command for the chunker CLI: split a text
// file into semantic, overlap-stitched chunks.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chunk [file]",
		Short: "Split a text file into semantic chunks",
		Long: `Preprocess, segment, merge, and overlap a text file into
ChunkRecords, against the vocabulary loaded from --vocab.

If no file is given, reads from stdin.`,
		Example: `  # Chunk a file with the default 256-token budget
  chunker --vocab o200k.txt chunk document.txt

  # Use a smaller budget and more overlap
  chunker --vocab o200k.txt chunk --target-tokens 100 --overlap-tokens 10 document.txt

  # Emit JSON records instead of the human-readable summary
  chunker --vocab o200k.txt chunk --output json document.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runChunk,
	}

	cmd.Flags().IntVar(&targetTokens, "target-tokens", 256, "per-chunk token budget")
	cmd.Flags().IntVar(&overlapTokens, "overlap-tokens", 16, "tokens of trailing context carried into each next chunk")
	cmd.Flags().StringVarP(&output, "output", "o", "summary", "output format: summary, json")
	cmd.Flags().StringVar(&source, "source", "", "source label echoed on every record (defaults to the file path)")

	return cmd
}
