package tokenize

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blenbot/RustyChunker-for-gpt4/cmd/chunker/shared"
)

var (
	encOutput string
	encCount  bool
)

// newEncodeCmd creates the encode subcommand.
func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode text to token ranks",
		Long: `Encode text into token ranks using the loaded vocabulary.

If no text is provided as an argument, reads from stdin.

The output format can be:
  - space:   Space-separated token ranks (default)
  - newline: One rank per line
  - json:    JSON array of token ranks`,
		Example: `  # Encode a simple string
  chunker --vocab o200k.txt tokenize encode "Hello, world!"

  # Encode from stdin
  echo "Hello, world!" | chunker --vocab o200k.txt tokenize encode

  # Output as JSON
  chunker --vocab o200k.txt tokenize encode --output json "Hello"`,
		RunE: runEncode,
	}

	cmd.Flags().StringVarP(&encOutput, "output", "o", "space", "Output format: space, newline, json")
	cmd.Flags().BoolVar(&encCount, "count", false, "Show token count with output")

	return cmd
}

func runEncode(_ *cobra.Command, args []string) error {
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

	ranks, err := eng.EncodeOrdinary(text)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	switch encOutput {
	case "json":
		output := map[string]any{"tokens": ranks}
		if encCount {
			output["count"] = len(ranks)
		}
		data, err := json.Marshal(output)
		if err != nil {
			return fmt.Errorf("marshal output: %w", err)
		}
		fmt.Println(string(data))
	case "newline":
		if encCount {
			fmt.Printf("count: %d\n", len(ranks))
		}
		for _, r := range ranks {
			fmt.Println(r)
		}
	case "space":
		if encCount {
			fmt.Printf("count: %d\n", len(ranks))
			fmt.Print("tokens: ")
		}
		for i, r := range ranks {
			if i > 0 {
				fmt.Print(" ")
			}
			fmt.Print(r)
		}
		fmt.Println()
	default:
		return fmt.Errorf("unknown output format: %s", encOutput)
	}

	return nil
}
