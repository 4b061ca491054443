package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blenbot/RustyChunker-for-gpt4/cmd/chunker/chunkcmd"
	"github.com/blenbot/RustyChunker-for-gpt4/cmd/chunker/shared"
	"github.com/blenbot/RustyChunker-for-gpt4/cmd/chunker/tokenize"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "chunker",
	Short: "An o200k-compatible tokenizer and semantic chunker CLI",
	Long: `Chunker is a CLI tool for tokenizing and semantically chunking text
against an o200k_base-family BPE vocabulary.

Common operations available:
  tokenize encode - Convert text to token IDs
  tokenize decode - Convert token IDs back to text
  tokenize count  - Count tokens in text
  chunk           - Split a file into semantic, overlap-stitched chunks
  bench           - Drive many pages through one shared pipeline concurrently`,
	Example: `  # Encode text
  chunker --vocab o200k.txt tokenize encode "Hello, world!"

  # Chunk a file
  chunker --vocab o200k.txt chunk document.txt`,
	SilenceUsage: true,
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("chunker version %s\n", version)
		if commit != "none" {
			fmt.Printf("  commit:     %s\n", commit)
		}
		if buildDate != "unknown" {
			fmt.Printf("  built:      %s\n", buildDate)
		}
		if goVersion != "unknown" {
			fmt.Printf("  go version: %s\n", goVersion)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&shared.VocabPath, "vocab", "", "path to an o200k_base-format vocabulary file (required)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tokenize.Command())
	rootCmd.AddCommand(chunkcmd.Command())
}
