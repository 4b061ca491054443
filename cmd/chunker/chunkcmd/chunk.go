package chunkcmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/blenbot/RustyChunker-for-gpt4/chunk"
	"github.com/blenbot/RustyChunker-for-gpt4/cmd/chunker/shared"
)

var (
	targetTokens  int
	overlapTokens int
	output        string
	source        string
)

func runChunk(_ *cobra.Command, args []string) error {
	eng, err := shared.LoadEngine()
	if err != nil {
		return err
	}

	path := "-"
	var raw []byte
	if len(args) == 1 {
		path = args[0]
		raw, err = os.ReadFile(path)
	} else {
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	label := source
	if label == "" {
		label = path
	}

	pipeline := chunk.New(eng,
		chunk.WithTargetTokens(targetTokens),
		chunk.WithOverlapTokens(overlapTokens),
	)

	records, err := pipeline.ChunkPage(0, string(raw), label)
	if err != nil {
		return fmt.Errorf("chunk: %w", err)
	}

	switch output {
	case "json":
		data, err := json.Marshal(records)
		if err != nil {
			return fmt.Errorf("marshal records: %w", err)
		}
		fmt.Println(string(data))
	case "summary":
		fmt.Printf("%s input, %s chunks\n", humanize.Bytes(uint64(len(raw))), humanize.Comma(int64(len(records))))
		for _, r := range records {
			fmt.Printf("  [%d] %s tokens: %s\n", r.ChunkID, humanize.Comma(int64(r.TokenCount)), preview(r.Text))
		}
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}

	return nil
}

func preview(text string) string {
	const maxLen = 80
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen] + "..."
}
