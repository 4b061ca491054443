package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/blenbot/RustyChunker-for-gpt4/bpe"
	"github.com/blenbot/RustyChunker-for-gpt4/chunk"
	"github.com/blenbot/RustyChunker-for-gpt4/vocab"
)

func main() {
	var (
		vocabPath     = flag.String("vocab", "", "path to an o200k_base-format vocabulary file")
		text          = flag.String("text", "", "text to chunk")
		interactive   = flag.Bool("i", false, "interactive mode")
		targetTokens  = flag.Int("target-tokens", 256, "per-chunk token budget")
		overlapTokens = flag.Int("overlap-tokens", 16, "tokens of trailing overlap between chunks")
		verbose       = flag.Bool("v", false, "verbose output")
	)
	flag.Parse()

	if *vocabPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -vocab is required")
		flag.Usage()
		os.Exit(1)
	}

	v, err := vocab.LoadFile(*vocabPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading vocabulary: %v\n", err)
		os.Exit(1)
	}

	pipeline := newPipeline(v, *targetTokens, *overlapTokens)

	if *verbose {
		fmt.Printf("Vocabulary loaded. %d entries.\n", v.Len())
	}

	if *interactive {
		runInteractive(pipeline, *verbose)
		return
	}

	if *text != "" {
		printRecords(pipeline, *text, "inline")
		return
	}

	flag.Usage()
}

func newPipeline(v *vocab.Vocabulary, targetTokens, overlapTokens int) *chunk.Pipeline {
	return chunk.New(
		bpe.New(v),
		chunk.WithTargetTokens(targetTokens),
		chunk.WithOverlapTokens(overlapTokens),
	)
}

func runInteractive(pipeline *chunk.Pipeline, verbose bool) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Chunker Interactive Mode")
	fmt.Println("Type 'quit' to exit")
	fmt.Println()

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "quit" || line == "exit" {
			break
		}
		printRecords(pipeline, line, "stdin")
	}
}

func printRecords(pipeline *chunk.Pipeline, text, source string) {
	records, err := pipeline.ChunkPage(0, text, source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error chunking text: %v\n", err)
		return
	}
	if len(records) == 0 {
		fmt.Println("(empty)")
		return
	}
	for _, r := range records {
		fmt.Printf("[%d] (%d tokens) %s\n", r.ChunkID, r.TokenCount, strings.TrimSpace(r.Text))
	}
}
